package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/apperrors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContact(t *testing.T) {
	cols := []string{"id", "name", "last_name", "email", "phone_number", "role"}
	id := uuid.New()

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr func(error) bool
	}{
		{
			name: "found",
			rows: sqlmock.NewRows(cols).AddRow(id.String(), "Luis", "Vargas", "luis@example.com", "8888-7777", "driver"),
		},
		{
			name:    "unknown user",
			rows:    sqlmock.NewRows(cols),
			wantErr: apperrors.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer mockDB.Close()
			repo := NewContactRepository(sqlx.NewDb(mockDB, "sqlmock"))
			mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).WithArgs(id).WillReturnRows(tt.rows)

			// Act
			got, err := repo.GetContact(context.Background(), id)

			// Assert
			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "8888-7777", got.PhoneNumber)
				assert.Equal(t, "Luis Vargas", got.FullName())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
