package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hillfarm/workforce-backend-go/internal/domain/attendance"
	"github.com/hillfarm/workforce-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, staff_id, work_group, date,
	shift_type, shift_start, shift_end, fallback,
	check_in_at, check_out_at, is_late,
	check_in_latitude, check_in_longitude, check_in_accuracy,
	check_out_latitude, check_out_longitude, check_out_accuracy,
	check_in_photo_url, check_out_photo_url,
	status, rejection_reason, verified_by, verified_at,
	created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	var inLat, inLon, inAcc *float64
	var outLat, outLon, outAcc *float64

	err := row.Scan(
		&a.ID, &a.StaffID, &a.Group, &a.Date,
		&a.ShiftType, &a.ShiftStart, &a.ShiftEnd, &a.Fallback,
		&a.CheckInAt, &a.CheckOutAt, &a.IsLate,
		&inLat, &inLon, &inAcc,
		&outLat, &outLon, &outAcc,
		&a.CheckInPhotoURL, &a.CheckOutPhotoURL,
		&a.Status, &a.RejectionReason, &a.VerifiedBy, &a.VerifiedAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if inLat != nil && inLon != nil {
		loc := attendance.Location{Latitude: *inLat, Longitude: *inLon}
		if inAcc != nil {
			loc.Accuracy = *inAcc
		}
		a.CheckInLocation = &loc
	}
	if outLat != nil && outLon != nil {
		loc := attendance.Location{Latitude: *outLat, Longitude: *outLon}
		if outAcc != nil {
			loc.Accuracy = *outAcc
		}
		a.CheckOutLocation = &loc
	}

	return a, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	var inLat, inLon, inAcc *float64
	if a.CheckInLocation != nil {
		inLat = &a.CheckInLocation.Latitude
		inLon = &a.CheckInLocation.Longitude
		inAcc = &a.CheckInLocation.Accuracy
	}

	query := `
		INSERT INTO attendances (
			id, staff_id, work_group, date,
			shift_type, shift_start, shift_end, fallback,
			check_in_at, is_late,
			check_in_latitude, check_in_longitude, check_in_accuracy,
			check_in_photo_url, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.StaffID, a.Group, a.Date,
		a.ShiftType, a.ShiftStart, a.ShiftEnd, a.Fallback,
		a.CheckInAt, a.IsLate,
		inLat, inLon, inAcc,
		a.CheckInPhotoURL, a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE id = $1
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

// GetByStaffAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE staff_id = $1 AND date = $2
		LIMIT 1
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}

	return &a, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	var outLat, outLon, outAcc *float64
	if a.CheckOutLocation != nil {
		outLat = &a.CheckOutLocation.Latitude
		outLon = &a.CheckOutLocation.Longitude
		outAcc = &a.CheckOutLocation.Accuracy
	}

	query := `
		UPDATE attendances SET
			check_out_at = $2, is_late = $3,
			check_out_latitude = $4, check_out_longitude = $5, check_out_accuracy = $6,
			check_out_photo_url = $7,
			status = $8, rejection_reason = $9, verified_by = $10, verified_at = $11,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		a.ID, a.CheckOutAt, a.IsLate,
		outLat, outLon, outAcc,
		a.CheckOutPhotoURL,
		a.Status, a.RejectionReason, a.VerifiedBy, a.VerifiedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.StaffID != "" {
		baseWhere += fmt.Sprintf(" AND staff_id = $%d", argIdx)
		args = append(args, filter.StaffID)
		argIdx++
	}
	if filter.Group != "" {
		baseWhere += fmt.Sprintf(" AND work_group = $%d", argIdx)
		args = append(args, filter.Group)
		argIdx++
	}
	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, filter.DateTo)
		argIdx++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendances " + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
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
		FROM attendances
		%s
		ORDER BY date DESC, check_in_at DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, total, nil
}

// ListByStaffAndPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByStaffAndPeriod(ctx context.Context, staffID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE staff_id = $1
		  AND date >= $2
		  AND date < $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for period: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, nil
}
