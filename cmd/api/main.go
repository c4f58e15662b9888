package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/hillfarm/workforce-backend-go/internal/config"
	appHTTP "github.com/hillfarm/workforce-backend-go/internal/handler/http"
	"github.com/hillfarm/workforce-backend-go/internal/pkg/database"
	"github.com/hillfarm/workforce-backend-go/internal/pkg/jwt"
	"github.com/hillfarm/workforce-backend-go/internal/pkg/notify"
	"github.com/hillfarm/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hillfarm/workforce-backend-go/internal/service/attendance"
	payrollService "github.com/hillfarm/workforce-backend-go/internal/service/payroll"
	scheduleService "github.com/hillfarm/workforce-backend-go/internal/service/schedule"
	workerService "github.com/hillfarm/workforce-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "workforce-backend"),
	)

	workerRepo := postgresql.NewWorkerRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	notifier := notify.NewLogNotifier(logger)

	workerSvc := workerService.NewWorkerService(workerRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, cfg.Attendance)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, scheduleSvc, cfg.Attendance)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, workerRepo, attendanceRepo, notifier, logger)

	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		workerHandler,
		scheduleHandler,
		attendanceHandler,
		payrollHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr), slog.String("env", cfg.App.Env))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
	}
}
