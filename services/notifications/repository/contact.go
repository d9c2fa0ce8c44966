package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/apperrors"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	nrpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/newrelic"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ContactRepo struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// GetContact returns the identity and phone number of a user
func (r *ContactRepo) GetContact(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	query := `SELECT id, name, last_name, email, COALESCE(phone_number, '') AS phone_number, role FROM users WHERE id = $1`

	err := nrpkg.WithDatastoreSegment(ctx, "users", "SELECT", func() error {
		return r.db.GetContext(ctx, &profile, query, userID)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("user", userID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return &profile, nil
}
