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

const ticketColumns = `id, title, contact_person, location, phone, email, priority, created_at, description`

// SQLiteTicketRepo implements TicketRepo using a SQLite database.
type SQLiteTicketRepo struct {
	db db.DBTX
}

func NewSQLiteTicketRepo(conn db.DBTX) *SQLiteTicketRepo {
	return &SQLiteTicketRepo{db: conn}
}

// List returns tickets by id; display order comes from domain.SortTickets.
func (r *SQLiteTicketRepo) List(ctx context.Context) ([]domain.ServiceTicket, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+ticketColumns+` FROM service_tickets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing tickets: %w", err)
	}
	defer rows.Close()

	var tickets []domain.ServiceTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tickets: %w", err)
	}
	return tickets, nil
}

func (r *SQLiteTicketRepo) GetByID(ctx context.Context, id string) (*domain.ServiceTicket, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+ticketColumns+` FROM service_tickets WHERE id = ?`, id)
	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ticket %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTicketRepo) Upsert(ctx context.Context, t *domain.ServiceTicket) error {
	query := `INSERT INTO service_tickets (` + ticketColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			contact_person = excluded.contact_person,
			location = excluded.location,
			phone = excluded.phone,
			email = excluded.email,
			priority = excluded.priority,
			created_at = excluded.created_at,
			description = excluded.description`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.ContactPerson,
		t.Location,
		t.Phone,
		t.Email,
		string(t.Priority),
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.Description,
	)
	if err != nil {
		return fmt.Errorf("upserting ticket: %w", err)
	}
	return nil
}

func scanTicket(row rowScanner) (*domain.ServiceTicket, error) {
	var t domain.ServiceTicket
	var priority, createdAt string
	err := row.Scan(&t.ID, &t.Title, &t.ContactPerson, &t.Location, &t.Phone, &t.Email,
		&priority, &createdAt, &t.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning ticket: %w", err)
	}
	t.Priority = domain.Priority(priority)
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &t, nil
}
