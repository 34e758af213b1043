package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/contactbook/internal/model"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

var _ model.ContactStore = (*ContactRepository)(nil)

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type ContactRepository struct {
	db querier
}

func NewContactRepository(db *Connection) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

const contactColumns = `id, name, email, phone, created_at, updated_at`

func (r *ContactRepository) Create(ctx context.Context, fields model.ContactFields) (model.Contact, error) {
	query := `INSERT INTO contacts (name, email, phone)
			  VALUES ($1, $2, $3)
			  RETURNING ` + contactColumns

	contact, err := scanContact(r.db.QueryRow(ctx, query, fields.Name, fields.Email, fields.Phone))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Contact{}, model.ErrEmailTaken
		}
		return model.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

func (r *ContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]model.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id model.ContactID) (model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	contact, err := scanContact(r.db.QueryRow(ctx, query, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Contact{}, model.ErrNotFound
		}
		return model.Contact{}, fmt.Errorf("failed to get contact by id: %w", err)
	}

	return contact, nil
}

func (r *ContactRepository) Update(ctx context.Context, id model.ContactID, fields model.ContactFields) (model.Contact, error) {
	query := `UPDATE contacts SET name = $2, email = $3, phone = $4, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + contactColumns

	contact, err := scanContact(r.db.QueryRow(ctx, query, int64(id), fields.Name, fields.Email, fields.Phone))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return model.Contact{}, model.ErrNotFound
		case isUniqueViolation(err):
			return model.Contact{}, model.ErrEmailTaken
		default:
			return model.Contact{}, fmt.Errorf("failed to update contact: %w", err)
		}
	}

	return contact, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id model.ContactID) error {
	const query = `DELETE FROM contacts WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, int64(id))
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanContact(row pgx.Row) (model.Contact, error) {
	var (
		contact model.Contact
		id      int64
	)
	err := row.Scan(&id, &contact.Name, &contact.Email, &contact.Phone, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return model.Contact{}, err
	}
	contact.ID = model.ContactID(id)
	return contact, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
