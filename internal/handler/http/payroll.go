package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hillfarm/workforce-backend-go/internal/domain/payroll"
	"github.com/hillfarm/workforce-backend-go/internal/handler/http/middleware"
	"github.com/hillfarm/workforce-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	AppendEntry(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	GetSalary(w http.ResponseWriter, r *http.Request)
	GetMySalary(w http.ResponseWriter, r *http.Request)
	GetMySalaryHistory(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Calculate implements PayrollHandler.
func (h *payrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.StaffID = chi.URLParam(r, "staffID")

	resp, err := h.payrollService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary calculated", resp)
}

// AppendEntry implements PayrollHandler.
func (h *payrollHandlerImpl) AppendEntry(w http.ResponseWriter, r *http.Request) {
	var req payroll.AppendEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.StaffID = chi.URLParam(r, "staffID")
	if creator, ok := middleware.StaffID(r.Context()); ok {
		req.CreatedBy = creator
	}

	resp, err := h.payrollService.AppendEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Entry recorded", resp)
}

// ListEntries implements PayrollHandler.
func (h *payrollHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	year, _ := strconv.Atoi(q.Get("year"))
	month, _ := strconv.Atoi(q.Get("month"))

	filter := payroll.ListEntriesFilter{
		StaffID: chi.URLParam(r, "staffID"),
		Year:    year,
		Month:   month,
		Type:    q.Get("type"),
		Page:    page,
		Limit:   limit,
	}

	resp, err := h.payrollService.ListEntries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Entries, listMeta(resp.Page, resp.Limit, resp.TotalCount))
}

// GetSalary implements PayrollHandler.
func (h *payrollHandlerImpl) GetSalary(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	year, month, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	resp, err := h.payrollService.GetSalaryView(r.Context(), staffID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMySalary implements PayrollHandler.
func (h *payrollHandlerImpl) GetMySalary(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.StaffID(r.Context())
	if !ok {
		response.Unauthorized(w, "staff_id claim is missing")
		return
	}

	year, month, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	resp, err := h.payrollService.GetSalaryView(r.Context(), staffID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMySalaryHistory implements PayrollHandler.
func (h *payrollHandlerImpl) GetMySalaryHistory(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.StaffID(r.Context())
	if !ok {
		response.Unauthorized(w, "staff_id claim is missing")
		return
	}

	months, _ := strconv.Atoi(r.URL.Query().Get("months"))
	if months <= 0 {
		months = 12
	}

	resp, err := h.payrollService.GetSalaryHistory(r.Context(), staffID, months)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func periodFromQuery(r *http.Request) (int, int, bool) {
	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
