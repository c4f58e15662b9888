package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hillfarm/workforce-backend-go/internal/handler/http/middleware"
	"github.com/hillfarm/workforce-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	workerHandler WorkerHandler,
	scheduleHandler ScheduleHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/workers", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", workerHandler.List)
					r.Post("/", workerHandler.Create)
					r.Get("/{id}", workerHandler.Get)
					r.Put("/{id}/wage", workerHandler.UpdateWage)
					r.Delete("/{id}", workerHandler.Deactivate)
					r.Get("/{id}/wage-history", workerHandler.WageHistory)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/resolve", scheduleHandler.Resolve)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", scheduleHandler.Get)
					r.Put("/", scheduleHandler.Upsert)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/mark", attendanceHandler.Mark)
				r.Get("/me", attendanceHandler.GetMyAttendance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.List)
					r.Get("/{id}", attendanceHandler.Get)
					r.Post("/{id}/verify", attendanceHandler.Verify)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/me", func(r chi.Router) {
					r.Get("/salary", payrollHandler.GetMySalary)
					r.Get("/salary/history", payrollHandler.GetMySalaryHistory)
				})

				r.Route("/workers/{staffID}", func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/calculate", payrollHandler.Calculate)
					r.Post("/payments", payrollHandler.AppendEntry)
					r.Get("/payments", payrollHandler.ListEntries)
					r.Get("/salary", payrollHandler.GetSalary)
				})
			})
		})
	})

	return r
}
