package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hillfarm/workforce-backend-go/internal/domain/worker"
	"github.com/hillfarm/workforce-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

const workerColumns = `
	id, staff_id, name, work_group, wage_type, wage_category,
	daily_wage, monthly_salary, hourly_rate, overtime_rate, piece_rate,
	benefits, attendance_bonus, productivity_bonus, performance_bonus,
	is_active, is_deleted, deleted_at, created_at, updated_at
`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	var benefits []byte

	err := row.Scan(
		&w.ID, &w.StaffID, &w.Name, &w.Group, &w.WageType, &w.WageCategory,
		&w.DailyWage, &w.MonthlySalary, &w.HourlyRate, &w.OvertimeRate, &w.PieceRate,
		&benefits, &w.AttendanceBonus, &w.ProductivityBonus, &w.PerformanceBonus,
		&w.IsActive, &w.IsDeleted, &w.DeletedAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return worker.Worker{}, err
	}

	if len(benefits) > 0 {
		if err := json.Unmarshal(benefits, &w.Benefits); err != nil {
			return worker.Worker{}, fmt.Errorf("failed to decode benefits: %w", err)
		}
	}

	return w, nil
}

// Create implements worker.WorkerRepository.
func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	benefits, err := json.Marshal(w.Benefits)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to encode benefits: %w", err)
	}

	if w.ID == "" {
		w.ID = uuid.NewString()
	}

	query := `
		INSERT INTO workers (
			id, staff_id, name, work_group, wage_type, wage_category,
			daily_wage, monthly_salary, hourly_rate, overtime_rate, piece_rate,
			benefits, attendance_bonus, productivity_bonus, performance_bonus,
			is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		w.ID, w.StaffID, w.Name, w.Group, w.WageType, w.WageCategory,
		w.DailyWage, w.MonthlySalary, w.HourlyRate, w.OvertimeRate, w.PieceRate,
		benefits, w.AttendanceBonus, w.ProductivityBonus, w.PerformanceBonus,
		w.IsActive,
	).Scan(&w.CreatedAt, &w.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return worker.Worker{}, worker.ErrWorkerAlreadyExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers
		WHERE id = $1 AND is_deleted = FALSE
	`

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// GetByStaffID implements worker.WorkerRepository.
func (r *workerRepository) GetByStaffID(ctx context.Context, staffID string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers
		WHERE staff_id = $1 AND is_deleted = FALSE
	`

	w, err := scanWorker(q.QueryRow(ctx, query, staffID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by staff id: %w", err)
	}

	return w, nil
}

// UpdateWithHistory implements worker.WorkerRepository. The worker row
// and its wage history snapshot commit or roll back together.
func (r *workerRepository) UpdateWithHistory(ctx context.Context, w worker.Worker, h worker.WageHistory) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		if err := r.update(ctx, w); err != nil {
			return err
		}
		return r.appendWageHistory(ctx, h)
	})
}

func (r *workerRepository) update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	benefits, err := json.Marshal(w.Benefits)
	if err != nil {
		return fmt.Errorf("failed to encode benefits: %w", err)
	}

	query := `
		UPDATE workers SET
			name = $2, work_group = $3, wage_type = $4, wage_category = $5,
			daily_wage = $6, monthly_salary = $7, hourly_rate = $8,
			overtime_rate = $9, piece_rate = $10, benefits = $11,
			attendance_bonus = $12, productivity_bonus = $13, performance_bonus = $14,
			is_active = $15, updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
	`

	tag, err := q.Exec(ctx, query,
		w.ID, w.Name, w.Group, w.WageType, w.WageCategory,
		w.DailyWage, w.MonthlySalary, w.HourlyRate, w.OvertimeRate, w.PieceRate,
		benefits, w.AttendanceBonus, w.ProductivityBonus, w.PerformanceBonus,
		w.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// List implements worker.WorkerRepository.
func (r *workerRepository) List(ctx context.Context, filter worker.ListWorkersFilter) ([]worker.Worker, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "WHERE is_deleted = FALSE"
	args := []any{}
	argIdx := 1

	if filter.Group != "" {
		baseWhere += fmt.Sprintf(" AND work_group = $%d", argIdx)
		args = append(args, filter.Group)
		argIdx++
	}
	if filter.WageType != "" {
		baseWhere += fmt.Sprintf(" AND wage_type = $%d", argIdx)
		args = append(args, filter.WageType)
		argIdx++
	}
	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM workers " + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count workers: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM workers
		%s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, workerColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate workers: %w", err)
	}

	return workers, total, nil
}

// SoftDelete implements worker.WorkerRepository.
func (r *workerRepository) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers SET
			is_deleted = TRUE, is_active = FALSE,
			deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to soft delete worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

func (r *workerRepository) appendWageHistory(ctx context.Context, h worker.WageHistory) error {
	q := GetQuerier(ctx, r.db)

	prev, err := json.Marshal(h.PreviousValues)
	if err != nil {
		return fmt.Errorf("failed to encode previous values: %w", err)
	}
	next, err := json.Marshal(h.NewValues)
	if err != nil {
		return fmt.Errorf("failed to encode new values: %w", err)
	}

	if h.ID == "" {
		h.ID = uuid.NewString()
	}

	query := `
		INSERT INTO wage_histories (
			id, worker_id, change_type, previous_values, new_values,
			effective_date, reason, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = q.Exec(ctx, query,
		h.ID, h.WorkerID, h.ChangeType, prev, next,
		h.EffectiveDate, h.Reason, h.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to append wage history: %w", err)
	}

	return nil
}

// ListWageHistory implements worker.WorkerRepository.
func (r *workerRepository) ListWageHistory(ctx context.Context, workerID string) ([]worker.WageHistory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, change_type, previous_values, new_values,
			   effective_date, reason, created_by, created_at
		FROM wage_histories
		WHERE worker_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wage history: %w", err)
	}
	defer rows.Close()

	var histories []worker.WageHistory
	for rows.Next() {
		var h worker.WageHistory
		var prev, next []byte

		err := rows.Scan(
			&h.ID, &h.WorkerID, &h.ChangeType, &prev, &next,
			&h.EffectiveDate, &h.Reason, &h.CreatedBy, &h.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wage history: %w", err)
		}

		if err := json.Unmarshal(prev, &h.PreviousValues); err != nil {
			return nil, fmt.Errorf("failed to decode previous values: %w", err)
		}
		if err := json.Unmarshal(next, &h.NewValues); err != nil {
			return nil, fmt.Errorf("failed to decode new values: %w", err)
		}

		histories = append(histories, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wage history: %w", err)
	}

	return histories, nil
}
