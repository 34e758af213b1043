package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/contactbook/internal/model"
)

// fakeRow scans a fixed contact row or returns err.
type fakeRow struct {
	contact model.Contact
	err     error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != 6 {
		return fmt.Errorf("unexpected column count %d", len(dest))
	}
	*dest[0].(*int64) = int64(r.contact.ID)
	*dest[1].(*string) = r.contact.Name
	*dest[2].(*string) = r.contact.Email
	*dest[3].(*string) = r.contact.Phone
	*dest[4].(*time.Time) = r.contact.CreatedAt
	*dest[5].(*time.Time) = r.contact.UpdatedAt
	return nil
}

// fakeRows iterates over a slice of contacts.
type fakeRows struct {
	contacts []model.Contact
	pos      int
	err      error
	closed   bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.contacts) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return fakeRow{contact: r.contacts[r.pos-1]}.Scan(dest...)
}

type fakeQuerier struct {
	row      pgx.Row
	rows     *fakeRows
	queryErr error
	tag      pgconn.CommandTag
	execErr  error

	lastSQL  string
	lastArgs []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.lastSQL, q.lastArgs = sql, args
	return q.row
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.lastSQL, q.lastArgs = sql, args
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return q.rows, nil
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.lastSQL, q.lastArgs = sql, args
	return q.tag, q.execErr
}

var uniqueErr = &pgconn.PgError{Code: uniqueViolation, ConstraintName: "contacts_email_key"}

func TestNewContactRepository(t *testing.T) {
	db := &Connection{}
	repo := NewContactRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestContactRepository_Create(t *testing.T) {
	t.Parallel()

	stored := model.Contact{ID: 1, Name: "A", Email: "a@x.com", Phone: "5551234567", CreatedAt: time.Now()}

	tests := []struct {
		name    string
		row     pgx.Row
		want    model.Contact
		wantErr error
	}{
		{name: "success", row: fakeRow{contact: stored}, want: stored},
		{name: "duplicate email", row: fakeRow{err: uniqueErr}, wantErr: model.ErrEmailTaken},
		{name: "wrapped duplicate email", row: fakeRow{err: fmt.Errorf("insert: %w", uniqueErr)}, wantErr: model.ErrEmailTaken},
		{name: "other error", row: fakeRow{err: errors.New("conn reset")}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q := &fakeQuerier{row: tt.row}
			repo := &ContactRepository{db: q}

			got, err := repo.Create(context.Background(), stored.Fields())

			assert.Equal(t, []any{"A", "a@x.com", "5551234567"}, q.lastArgs)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.want.ID == 0:
				assert.ErrorContains(t, err, "failed to create contact")
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestContactRepository_List(t *testing.T) {
	t.Parallel()

	t.Run("returns rows in order", func(t *testing.T) {
		rows := &fakeRows{contacts: []model.Contact{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}}
		repo := &ContactRepository{db: &fakeQuerier{rows: rows}}

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, model.ContactID(1), got[0].ID)
		assert.Equal(t, model.ContactID(2), got[1].ID)
		assert.True(t, rows.closed)
	})

	t.Run("empty table gives empty slice", func(t *testing.T) {
		repo := &ContactRepository{db: &fakeQuerier{rows: &fakeRows{}}}

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		repo := &ContactRepository{db: &fakeQuerier{queryErr: errors.New("boom")}}

		_, err := repo.List(context.Background())
		assert.ErrorContains(t, err, "failed to list contacts")
	})

	t.Run("rows error", func(t *testing.T) {
		repo := &ContactRepository{db: &fakeQuerier{rows: &fakeRows{err: errors.New("boom")}}}

		_, err := repo.List(context.Background())
		assert.ErrorContains(t, err, "failed to iterate contacts")
	})
}

func TestContactRepository_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{contact: model.Contact{ID: 3, Name: "C"}}}
		repo := &ContactRepository{db: q}

		got, err := repo.GetByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "C", got.Name)
		assert.Equal(t, []any{int64(3)}, q.lastArgs)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &ContactRepository{db: &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}}

		_, err := repo.GetByID(context.Background(), 3)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestContactRepository_Update(t *testing.T) {
	t.Parallel()

	fields := model.ContactFields{Name: "A", Email: "a@x.com", Phone: "5559999999"}

	tests := []struct {
		name    string
		row     pgx.Row
		wantErr error
	}{
		{name: "success", row: fakeRow{contact: model.Contact{ID: 1, Name: "A", Email: "a@x.com", Phone: "5559999999"}}},
		{name: "missing id", row: fakeRow{err: pgx.ErrNoRows}, wantErr: model.ErrNotFound},
		{name: "duplicate email", row: fakeRow{err: uniqueErr}, wantErr: model.ErrEmailTaken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q := &fakeQuerier{row: tt.row}
			repo := &ContactRepository{db: q}

			got, err := repo.Update(context.Background(), 1, fields)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, fields, got.Fields())
			assert.Equal(t, []any{int64(1), "A", "a@x.com", "5559999999"}, q.lastArgs)
		})
	}
}

func TestContactRepository_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tag     pgconn.CommandTag
		execErr error
		wantErr error
	}{
		{name: "deleted", tag: pgconn.NewCommandTag("DELETE 1")},
		{name: "missing", tag: pgconn.NewCommandTag("DELETE 0"), wantErr: model.ErrNotFound},
		{name: "exec error", execErr: errors.New("boom")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &ContactRepository{db: &fakeQuerier{tag: tt.tag, execErr: tt.execErr}}

			err := repo.Delete(context.Background(), 1)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.execErr != nil:
				assert.ErrorContains(t, err, "failed to delete contact")
			default:
				assert.NoError(t, err)
			}
		})
	}
}
