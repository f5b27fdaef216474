package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/wartung/internal/db"
	"github.com/alexanderramin/wartung/internal/domain"
)

const taskColumns = `id, contact_person, location, phone, email, scheduled_date,
		maintenance_status, scheduling_status, confirmation_status, technician_id, notes`

// SQLiteTaskRepo implements TaskRepo using a SQLite database. Scheduled dates
// are read as midnight in loc.
type SQLiteTaskRepo struct {
	db  db.DBTX
	loc *time.Location
}

func NewSQLiteTaskRepo(conn db.DBTX, loc *time.Location) *SQLiteTaskRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &SQLiteTaskRepo{db: conn, loc: loc}
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]domain.MaintenanceTask, error) {
	query := `SELECT ` + taskColumns + ` FROM maintenance_tasks ORDER BY scheduled_date, id`
	return r.queryTasks(ctx, query)
}

func (r *SQLiteTaskRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.MaintenanceTask, error) {
	query := `SELECT ` + taskColumns + ` FROM maintenance_tasks
		WHERE scheduled_date >= ? AND scheduled_date <= ?
		ORDER BY scheduled_date, id`
	return r.queryTasks(ctx, query, from.Format(dateLayout), to.Format(dateLayout))
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.MaintenanceTask, error) {
	query := `SELECT ` + taskColumns + ` FROM maintenance_tasks WHERE id = ?`
	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) Replace(ctx context.Context, t *domain.MaintenanceTask) error {
	query := `UPDATE maintenance_tasks SET contact_person = ?, location = ?, phone = ?, email = ?,
		scheduled_date = ?, maintenance_status = ?, scheduling_status = ?, confirmation_status = ?,
		technician_id = ?, notes = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.ContactPerson,
		t.Location,
		t.Phone,
		t.Email,
		t.ScheduledDate.Format(dateLayout),
		string(t.Status),
		string(t.SchedulingStatus),
		string(t.ConfirmationStatus),
		stringToNullable(t.TechnicianID),
		t.Notes,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Upsert(ctx context.Context, t *domain.MaintenanceTask) error {
	query := `INSERT INTO maintenance_tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			contact_person = excluded.contact_person,
			location = excluded.location,
			phone = excluded.phone,
			email = excluded.email,
			scheduled_date = excluded.scheduled_date,
			maintenance_status = excluded.maintenance_status,
			scheduling_status = excluded.scheduling_status,
			confirmation_status = excluded.confirmation_status,
			technician_id = excluded.technician_id,
			notes = excluded.notes`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ContactPerson,
		t.Location,
		t.Phone,
		t.Email,
		t.ScheduledDate.Format(dateLayout),
		string(t.Status),
		string(t.SchedulingStatus),
		string(t.ConfirmationStatus),
		stringToNullable(t.TechnicianID),
		t.Notes,
	)
	if err != nil {
		return fmt.Errorf("upserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]domain.MaintenanceTask, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.MaintenanceTask
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) scanTask(row rowScanner) (*domain.MaintenanceTask, error) {
	var t domain.MaintenanceTask
	var dateStr, status, scheduling, confirmation string
	var techID sql.NullString

	err := row.Scan(
		&t.ID, &t.ContactPerson, &t.Location, &t.Phone, &t.Email,
		&dateStr, &status, &scheduling, &confirmation,
		&techID, &t.Notes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.ScheduledDate, err = parseDate(dateStr, r.loc)
	if err != nil {
		return nil, fmt.Errorf("parsing scheduled_date: %w", err)
	}
	t.Status = domain.MaintenanceStatus(status)
	t.SchedulingStatus = domain.SchedulingStatus(scheduling)
	t.ConfirmationStatus = domain.ConfirmationStatus(confirmation)
	t.TechnicianID = nullableString(techID)
	return &t, nil
}
