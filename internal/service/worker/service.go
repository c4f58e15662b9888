package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hillfarm/workforce-backend-go/internal/domain/worker"
)

type WorkerServiceImpl struct {
	worker.WorkerRepository

	// now is replaceable in tests
	now func() time.Time
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{
		WorkerRepository: workerRepo,
		now:              time.Now,
	}
}

// CreateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.WorkerRepository.Create(ctx, worker.Worker{
		StaffID:           req.StaffID,
		Name:              req.Name,
		Group:             req.Group,
		WageType:          worker.WageType(req.WageType),
		WageCategory:      worker.WageCategory(req.WageCategory),
		DailyWage:         req.DailyWage,
		MonthlySalary:     req.MonthlySalary,
		HourlyRate:        req.HourlyRate,
		OvertimeRate:      req.OvertimeRate,
		PieceRate:         req.PieceRate,
		Benefits:          req.Benefits,
		AttendanceBonus:   req.AttendanceBonus,
		ProductivityBonus: req.ProductivityBonus,
		PerformanceBonus:  req.PerformanceBonus,
		IsActive:          true,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(created), nil
}

// GetWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return toWorkerResponse(w), nil
}

// ListWorkers implements worker.WorkerService.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, filter worker.ListWorkersFilter) (worker.ListWorkersResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	workers, total, err := s.WorkerRepository.List(ctx, filter)
	if err != nil {
		return worker.ListWorkersResponse{}, fmt.Errorf("failed to list workers: %w", err)
	}

	resp := worker.ListWorkersResponse{
		Workers:    make([]worker.WorkerResponse, 0, len(workers)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, w := range workers {
		resp.Workers = append(resp.Workers, toWorkerResponse(w))
	}

	return resp, nil
}

// UpdateWage implements worker.WorkerService. Every applied change is
// snapshotted into the wage history before the worker row mutates.
func (s *WorkerServiceImpl) UpdateWage(ctx context.Context, req worker.UpdateWageRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.WorkerRepository.GetByID(ctx, req.WorkerID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	previous := map[string]decimal.Decimal{}
	next := map[string]decimal.Decimal{}

	apply := func(field string, dst *decimal.Decimal, v *decimal.Decimal) {
		if v == nil || dst.Equal(*v) {
			return
		}
		previous[field] = *dst
		next[field] = *v
		*dst = *v
	}

	apply("daily_wage", &w.DailyWage, req.DailyWage)
	apply("monthly_salary", &w.MonthlySalary, req.MonthlySalary)
	apply("hourly_rate", &w.HourlyRate, req.HourlyRate)
	apply("overtime_rate", &w.OvertimeRate, req.OvertimeRate)
	apply("piece_rate", &w.PieceRate, req.PieceRate)
	apply("attendance_bonus", &w.AttendanceBonus, req.AttendanceBonus)
	apply("productivity_bonus", &w.ProductivityBonus, req.ProductivityBonus)
	apply("performance_bonus", &w.PerformanceBonus, req.PerformanceBonus)

	changeType := "wage_adjustment"
	if req.WageType != nil && *req.WageType != string(w.WageType) {
		w.WageType = worker.WageType(*req.WageType)
		changeType = "wage_type_change"
	}
	if req.WageCategory != nil {
		w.WageCategory = worker.WageCategory(*req.WageCategory)
	}
	if req.Benefits != nil {
		apply("transport_allowance", &w.Benefits.TransportAllowance, &req.Benefits.TransportAllowance)
		apply("food_allowance", &w.Benefits.FoodAllowance, &req.Benefits.FoodAllowance)
		apply("housing_allowance", &w.Benefits.HousingAllowance, &req.Benefits.HousingAllowance)
		apply("other_allowances", &w.Benefits.OtherAllowances, &req.Benefits.OtherAllowances)
		w.Benefits.ProvidentFund = req.Benefits.ProvidentFund
		w.Benefits.HealthInsurance = req.Benefits.HealthInsurance
	}

	if len(next) == 0 && changeType == "wage_adjustment" && req.WageCategory == nil && req.Benefits == nil {
		return worker.WorkerResponse{}, worker.ErrNoWageChanges
	}

	effectiveDate := s.now()
	if req.EffectiveDate != "" {
		if parsed, err := time.Parse("2006-01-02", req.EffectiveDate); err == nil {
			effectiveDate = parsed
		}
	}

	history := worker.WageHistory{
		WorkerID:       w.ID,
		ChangeType:     changeType,
		PreviousValues: previous,
		NewValues:      next,
		EffectiveDate:  effectiveDate,
		Reason:         req.Reason,
		CreatedBy:      req.UpdatedBy,
	}
	if err := s.WorkerRepository.UpdateWithHistory(ctx, w, history); err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(w), nil
}

// DeactivateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) DeactivateWorker(ctx context.Context, id string) error {
	return s.WorkerRepository.SoftDelete(ctx, id)
}

// GetWageHistory implements worker.WorkerService.
func (s *WorkerServiceImpl) GetWageHistory(ctx context.Context, workerID string) ([]worker.WageHistoryResponse, error) {
	if _, err := s.WorkerRepository.GetByID(ctx, workerID); err != nil {
		return nil, err
	}

	histories, err := s.WorkerRepository.ListWageHistory(ctx, workerID)
	if err != nil {
		return nil, err
	}

	resp := make([]worker.WageHistoryResponse, 0, len(histories))
	for _, h := range histories {
		resp = append(resp, worker.WageHistoryResponse{
			ID:             h.ID,
			WorkerID:       h.WorkerID,
			ChangeType:     h.ChangeType,
			PreviousValues: h.PreviousValues,
			NewValues:      h.NewValues,
			EffectiveDate:  h.EffectiveDate.Format("2006-01-02"),
			Reason:         h.Reason,
			CreatedBy:      h.CreatedBy,
			CreatedAt:      h.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp, nil
}

func toWorkerResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:                w.ID,
		StaffID:           w.StaffID,
		Name:              w.Name,
		Group:             w.Group,
		WageType:          string(w.WageType),
		WageCategory:      string(w.WageCategory),
		DailyWage:         w.DailyWage,
		MonthlySalary:     w.MonthlySalary,
		HourlyRate:        w.HourlyRate,
		OvertimeRate:      w.OvertimeRate,
		PieceRate:         w.PieceRate,
		Benefits:          w.Benefits,
		AttendanceBonus:   w.AttendanceBonus,
		ProductivityBonus: w.ProductivityBonus,
		PerformanceBonus:  w.PerformanceBonus,
		IsActive:          w.IsActive,
		CreatedAt:         w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         w.UpdatedAt.Format(time.RFC3339),
	}
}
