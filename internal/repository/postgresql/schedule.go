package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hillfarm/workforce-backend-go/internal/domain/schedule"
	"github.com/hillfarm/workforce-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Upsert implements schedule.ScheduleRepository.
func (r *scheduleRepository) Upsert(ctx context.Context, s schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
	q := GetQuerier(ctx, r.db)

	assignments, err := json.Marshal(s.Assignments)
	if err != nil {
		return schedule.WeeklySchedule{}, fmt.Errorf("failed to encode assignments: %w", err)
	}

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query := `
		INSERT INTO weekly_schedules (
			id, week_start, work_group,
			morning_start, morning_end, evening_start, evening_end,
			assignments, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (week_start, work_group) DO UPDATE SET
			morning_start = EXCLUDED.morning_start,
			morning_end = EXCLUDED.morning_end,
			evening_start = EXCLUDED.evening_start,
			evening_end = EXCLUDED.evening_end,
			assignments = EXCLUDED.assignments,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		s.ID, s.WeekStart, s.Group,
		s.MorningStart, s.MorningEnd, s.EveningStart, s.EveningEnd,
		assignments, s.CreatedBy,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return schedule.WeeklySchedule{}, fmt.Errorf("failed to upsert schedule: %w", err)
	}

	return s, nil
}

// GetByWeekAndGroup implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByWeekAndGroup(ctx context.Context, weekStart time.Time, group schedule.WorkGroup) (*schedule.WeeklySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, week_start, work_group,
			   morning_start, morning_end, evening_start, evening_end,
			   assignments, created_by, created_at, updated_at
		FROM weekly_schedules
		WHERE week_start = $1 AND work_group = $2
	`

	s, err := scanSchedule(q.QueryRow(ctx, query, weekStart, group))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	return &s, nil
}

// ListByWeek implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListByWeek(ctx context.Context, weekStart time.Time) ([]schedule.WeeklySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, week_start, work_group,
			   morning_start, morning_end, evening_start, evening_end,
			   assignments, created_by, created_at, updated_at
		FROM weekly_schedules
		WHERE week_start = $1
		ORDER BY work_group ASC
	`

	rows, err := q.Query(ctx, query, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WeeklySchedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedules: %w", err)
	}

	return schedules, nil
}

func scanSchedule(row pgx.Row) (schedule.WeeklySchedule, error) {
	var s schedule.WeeklySchedule
	var assignments []byte

	err := row.Scan(
		&s.ID, &s.WeekStart, &s.Group,
		&s.MorningStart, &s.MorningEnd, &s.EveningStart, &s.EveningEnd,
		&assignments, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return schedule.WeeklySchedule{}, err
	}

	if len(assignments) > 0 {
		if err := json.Unmarshal(assignments, &s.Assignments); err != nil {
			return schedule.WeeklySchedule{}, fmt.Errorf("failed to decode assignments: %w", err)
		}
	}

	return s, nil
}
