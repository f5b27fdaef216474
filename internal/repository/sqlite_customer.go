package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/wartung/internal/db"
	"github.com/alexanderramin/wartung/internal/domain"
)

// SQLiteCustomerRepo implements CustomerRepo on the legacy owner table.
type SQLiteCustomerRepo struct {
	db db.DBTX
}

func NewSQLiteCustomerRepo(conn db.DBTX) *SQLiteCustomerRepo {
	return &SQLiteCustomerRepo{db: conn}
}

func (r *SQLiteCustomerRepo) Query(ctx context.Context, q domain.CustomerQuery) ([]domain.Customer, int, error) {
	countSQL, countArgs := BuildCustomerCountQuery(q)
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting customers: %w", err)
	}

	pageSQL, pageArgs := BuildCustomerPageQuery(q)
	customers, err := r.queryCustomers(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *SQLiteCustomerRepo) Localities(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT Ort FROM Tblanl_eigentuemer
		WHERE Ort IS NOT NULL AND TRIM(Ort) <> ''
		ORDER BY Ort COLLATE `+db.GermanCollation)
	if err != nil {
		return nil, fmt.Errorf("listing localities: %w", err)
	}
	defer rows.Close()

	localities := []string{}
	for rows.Next() {
		var ort string
		if err := rows.Scan(&ort); err != nil {
			return nil, fmt.Errorf("scanning locality: %w", err)
		}
		localities = append(localities, ort)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating localities: %w", err)
	}
	return localities, nil
}

func (r *SQLiteCustomerRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Tblanl_eigentuemer`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting customers: %w", err)
	}
	return n, nil
}

func (r *SQLiteCustomerRepo) ListAll(ctx context.Context) ([]domain.Customer, error) {
	return r.queryCustomers(ctx, `SELECT `+customerColumns+` FROM Tblanl_eigentuemer ORDER BY AnlID`)
}

// Upsert inserts c, or replaces the row with the same AnlID. A zero ID lets
// the store assign one and writes it back to c.
func (r *SQLiteCustomerRepo) Upsert(ctx context.Context, c *domain.Customer) error {
	var id any
	if c.ID != 0 {
		id = c.ID
	}
	query := `INSERT OR REPLACE INTO Tblanl_eigentuemer (` + customerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		id,
		stringToNullable(c.OwnerNumber),
		c.Surname,
		c.FirstName,
		stringToNullable(c.Company),
		stringToNullable(c.Title),
		stringToNullable(c.Salutation),
		stringToNullable(c.Street),
		stringToNullable(c.HouseNumber),
		stringToNullable(c.PostalCode),
		stringToNullable(c.City),
		stringToNullable(c.District),
		stringToNullable(c.Phone),
		stringToNullable(c.BusinessPhone),
		stringToNullable(c.Mobile),
		stringToNullable(c.Email),
		stringToNullable(c.Notes),
	)
	if err != nil {
		return fmt.Errorf("upserting customer: %w", err)
	}
	if c.ID == 0 {
		if c.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("reading customer id: %w", err)
		}
	}
	return nil
}

func (r *SQLiteCustomerRepo) queryCustomers(ctx context.Context, query string, args ...any) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customers: %w", err)
	}
	return customers, nil
}

func scanCustomer(row rowScanner) (domain.Customer, error) {
	var c domain.Customer
	var owner, company, title, salutation, street, houseNo, plz, ort, district,
		phone, businessPhone, mobile, email, notes sql.NullString

	err := row.Scan(
		&c.ID, &owner, &c.Surname, &c.FirstName, &company, &title, &salutation,
		&street, &houseNo, &plz, &ort, &district, &phone, &businessPhone, &mobile, &email, &notes,
	)
	if err != nil {
		return c, fmt.Errorf("scanning customer: %w", err)
	}

	c.OwnerNumber = nullableString(owner)
	c.Company = nullableString(company)
	c.Title = nullableString(title)
	c.Salutation = nullableString(salutation)
	c.Street = nullableString(street)
	c.HouseNumber = nullableString(houseNo)
	c.PostalCode = nullableString(plz)
	c.City = nullableString(ort)
	c.District = nullableString(district)
	c.Phone = nullableString(phone)
	c.BusinessPhone = nullableString(businessPhone)
	c.Mobile = nullableString(mobile)
	c.Email = nullableString(email)
	c.Notes = nullableString(notes)
	return c, nil
}
