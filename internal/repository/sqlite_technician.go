package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wartung/internal/db"
	"github.com/alexanderramin/wartung/internal/domain"
)

// SQLiteTechnicianRepo implements TechnicianRepo using a SQLite database.
type SQLiteTechnicianRepo struct {
	db db.DBTX
}

func NewSQLiteTechnicianRepo(conn db.DBTX) *SQLiteTechnicianRepo {
	return &SQLiteTechnicianRepo{db: conn}
}

func (r *SQLiteTechnicianRepo) List(ctx context.Context) ([]domain.Technician, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, initials, color
		FROM technicians ORDER BY sort_order, name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing technicians: %w", err)
	}
	defer rows.Close()

	var techs []domain.Technician
	for rows.Next() {
		var t domain.Technician
		if err := rows.Scan(&t.ID, &t.Name, &t.Initials, &t.Color); err != nil {
			return nil, fmt.Errorf("scanning technician row: %w", err)
		}
		if t.Initials == "" {
			t.Initials = domain.Initials(t.Name)
		}
		techs = append(techs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating technicians: %w", err)
	}
	return techs, nil
}

func (r *SQLiteTechnicianRepo) Upsert(ctx context.Context, t *domain.Technician, sortOrder int) error {
	query := `INSERT INTO technicians (id, name, initials, color, sort_order)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			initials = excluded.initials,
			color = excluded.color,
			sort_order = excluded.sort_order`
	if _, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.Initials, t.Color, sortOrder); err != nil {
		return fmt.Errorf("upserting technician: %w", err)
	}
	return nil
}
