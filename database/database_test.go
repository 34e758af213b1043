package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReady(t *testing.T) {
	t.Parallel()

	query := regexp.QuoteMeta(schemaVersionQuery)

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr string
	}{
		{
			name: "schema up to date",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing()
				mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(SchemaVersion))
			},
		},
		{
			name: "schema ahead",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing()
				mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(SchemaVersion + 1))
			},
		},
		{
			name: "schema behind",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing()
				mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(0)))
			},
			wantErr: "is behind",
		},
		{
			name: "ping fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing().WillReturnError(errors.New("connection refused"))
			},
			wantErr: "failed to ping database",
		},
		{
			name: "version table missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing()
				mock.ExpectQuery(query).WillReturnError(errors.New(`relation "goose_db_version" does not exist`))
			},
			wantErr: "failed to read schema version",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			err = Ready(context.Background(), db)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMigrations_Embedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	assert.Len(t, entries, int(SchemaVersion))
}
