package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hillfarm/workforce-backend-go/internal/domain/schedule"
	"github.com/hillfarm/workforce-backend-go/internal/handler/http/middleware"
	"github.com/hillfarm/workforce-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// Upsert implements ScheduleHandler.
func (h *scheduleHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if creator, ok := middleware.StaffID(r.Context()); ok {
		req.CreatedBy = creator
	}

	resp, err := h.scheduleService.UpsertSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule saved", resp)
}

// Get implements ScheduleHandler.
func (h *scheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	date := time.Now()
	if v := q.Get("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	group := schedule.WorkGroup(q.Get("group"))
	if group != schedule.WorkGroupLab && group != schedule.WorkGroupField {
		response.BadRequest(w, "group must be one of: lab, field", nil)
		return
	}

	resp, err := h.scheduleService.GetSchedule(r.Context(), date, group)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Resolve implements ScheduleHandler. Defaults to the caller's own shift
// for today; staff_id and date can be overridden by query.
func (h *scheduleHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := schedule.ResolveShiftRequest{
		StaffID: q.Get("staff_id"),
		Group:   q.Get("group"),
		Date:    q.Get("date"),
	}
	if req.StaffID == "" {
		if staffID, ok := middleware.StaffID(r.Context()); ok {
			req.StaffID = staffID
		}
	}
	if req.Group == "" {
		if group, ok := middleware.Group(r.Context()); ok {
			req.Group = group
		}
	}

	resp, err := h.scheduleService.ResolveShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
