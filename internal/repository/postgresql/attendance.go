package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/attendance"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/database"
)

const attendanceColumns = `a.id, a.staff_id, a.admin_id, a.date,
	   a.check_in_at, a.check_out_at,
	   a.check_in_latitude, a.check_in_longitude,
	   a.check_out_latitude, a.check_out_longitude,
	   a.notes, a.status, a.worked_minutes, a.created_at, a.updated_at`

type attendanceRepository struct {
	db *database.DB
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.StaffID, &att.AdminID, &att.Date,
		&att.CheckInAt, &att.CheckOutAt,
		&att.CheckInLatitude, &att.CheckInLongitude,
		&att.CheckOutLatitude, &att.CheckOutLongitude,
		&att.Notes, &att.Status, &att.WorkedMinutes, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			staff_id, admin_id, date, check_in_at,
			check_in_latitude, check_in_longitude, notes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.StaffID,
		att.AdminID,
		att.Date,
		att.CheckInAt,
		att.CheckInLatitude,
		att.CheckInLongitude,
		att.Notes,
		att.Status,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string, adminID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.id = $1 AND a.admin_id = $2
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetOpenSession implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenSession(ctx context.Context, staffID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.staff_id = $1 AND a.status = $2
		ORDER BY a.check_in_at DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, staffID, attendance.StatusOpen))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out_at = $1,
			check_out_latitude = $2,
			check_out_longitude = $3,
			status = $4,
			worked_minutes = $5,
			updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		att.CheckOutAt,
		att.CheckOutLatitude,
		att.CheckOutLongitude,
		att.Status,
		att.WorkedMinutes,
		att.ID,
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
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter, adminID string) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := `WHERE a.admin_id = $1`
	args := []any{adminID}
	argIdx := 2

	if filter.StaffID != "" {
		baseWhere += fmt.Sprintf(" AND a.staff_id = $%d", argIdx)
		args = append(args, filter.StaffID)
		argIdx++
	}
	if filter.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, filter.DateTo)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances a ` + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `, u.username
		FROM attendances a
		JOIN users u ON u.id = a.staff_id
		` + baseWhere + `
		ORDER BY a.check_in_at DESC
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.StaffID, &att.AdminID, &att.Date,
			&att.CheckInAt, &att.CheckOutAt,
			&att.CheckInLatitude, &att.CheckInLongitude,
			&att.CheckOutLatitude, &att.CheckOutLongitude,
			&att.Notes, &att.Status, &att.WorkedMinutes, &att.CreatedAt, &att.UpdatedAt,
			&att.StaffName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, total, rows.Err()
}

// ListByStaff implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByStaff(ctx context.Context, staffID string, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := `WHERE a.staff_id = $1`
	args := []any{staffID}
	argIdx := 2

	if filter.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, filter.DateTo)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances a ` + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		` + baseWhere + `
		ORDER BY a.check_in_at DESC
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, total, rows.Err()
}

// ListStaleOpen implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListStaleOpen(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.status = $1 AND a.check_in_at < $2
	`

	rows, err := q.Query(ctx, query, attendance.StatusOpen, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale open sessions: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
