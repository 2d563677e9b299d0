package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// storeErr tags an unexpected database failure so handlers can report the
// store as unavailable while keeping the cause in the message.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, attendance.ErrStoreUnavailable)
}

const attendanceColumns = `
	id, employee_id, work_date, check_in_time, check_out_time,
	total_hours, status, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.WorkDate, &att.CheckIn, &att.CheckOut,
		&att.TotalHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// FindOpenRecord implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindOpenRecord(ctx context.Context, employeeID string, workDate time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND work_date = $2
		  AND check_out_time IS NULL
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("failed to find open record", err)
	}

	return &att, nil
}

// FindLatestOpenRecord implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindLatestOpenRecord(ctx context.Context, employeeID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND check_out_time IS NULL
		ORDER BY check_in_time DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("failed to find latest open record", err)
	}

	return &att, nil
}

// Insert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Insert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	record.ID = uuid.NewString()

	query := `
		INSERT INTO attendance_records (
			id, employee_id, work_date, check_in_time, status
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.WorkDate,
		record.CheckIn,
		record.Status,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		// The partial unique index on (employee_id, work_date) for open
		// records is what actually enforces one open record per day.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, storeErr("failed to insert attendance record", err)
	}

	return record, nil
}

// UpdateCheckout implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateCheckout(ctx context.Context, recordID string, checkOut time.Time, totalHours float64, status attendance.Status) (bool, error) {
	q := GetQuerier(ctx, a.db)

	// check_out_time IS NULL makes the close compare-and-set: a record that
	// was closed concurrently matches zero rows.
	query := `
		UPDATE attendance_records
		SET check_out_time = $2,
			total_hours = $3,
			status = $4,
			updated_at = NOW()
		WHERE id = $1
		  AND check_out_time IS NULL
	`

	tag, err := q.Exec(ctx, query, recordID, checkOut, totalHours, status)
	if err != nil {
		return false, storeErr("failed to update checkout", err)
	}

	return tag.RowsAffected() == 1, nil
}

// ListRecent implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRecent(ctx context.Context, employeeID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.work_date, ar.check_in_time, ar.check_out_time,
			   ar.total_hours, ar.status, ar.created_at, ar.updated_at,
			   e.full_name
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.employee_id = $1
		ORDER BY ar.check_in_time DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, storeErr("failed to list recent records", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.WorkDate, &att.CheckIn, &att.CheckOut,
			&att.TotalHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, storeErr("failed to scan attendance record", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to iterate attendance records", err)
	}

	return records, nil
}

// ListRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND work_date BETWEEN $2 AND $3
		ORDER BY work_date ASC, check_in_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, storeErr("failed to list records in range", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, storeErr("failed to scan attendance record", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to iterate attendance records", err)
	}

	return records, nil
}
