package offer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines offer data access interface
type Repository interface {
	Create(ctx context.Context, offer *Offer) error
	GetByID(ctx context.Context, id uuid.UUID) (*Offer, error)
	ListActive(ctx context.Context) ([]*Offer, error)
	ListAll(ctx context.Context) ([]*Offer, error)
	Update(ctx context.Context, id uuid.UUID, patch *UpdateOfferRequest) (*Offer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new offer repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, offer *Offer) error {
	query := `
		INSERT INTO adgem_offers (
			id, external_id, title, description, real_value, currency,
			countries, device_types, category, external_url, requirements,
			is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		offer.ID,
		offer.ExternalID,
		offer.Title,
		offer.Description,
		offer.TrueValue,
		offer.Currency,
		offer.Countries,
		offer.DeviceTypes,
		offer.Category,
		offer.ExternalURL,
		offer.Requirements,
		offer.IsActive,
		offer.CreatedAt,
		offer.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Offer, error) {
	query := `SELECT * FROM adgem_offers WHERE id = $1`
	var offer Offer
	err := r.db.GetContext(ctx, &offer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &offer, nil
}

func (r *repository) ListActive(ctx context.Context) ([]*Offer, error) {
	query := `
		SELECT * FROM adgem_offers
		WHERE is_active = true
		ORDER BY created_at DESC
	`
	var offers []*Offer
	err := r.db.SelectContext(ctx, &offers, query)
	return offers, err
}

func (r *repository) ListAll(ctx context.Context) ([]*Offer, error) {
	query := `SELECT * FROM adgem_offers ORDER BY created_at DESC`
	var offers []*Offer
	err := r.db.SelectContext(ctx, &offers, query)
	return offers, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, patch *UpdateOfferRequest) (*Offer, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if patch.Title != nil {
		addSet("title", *patch.Title)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.TrueValue != nil {
		addSet("real_value", *patch.TrueValue)
	}
	if patch.Category != nil {
		addSet("category", *patch.Category)
	}
	if patch.ExternalURL != nil {
		addSet("external_url", *patch.ExternalURL)
	}
	if patch.IsActive != nil {
		addSet("is_active", *patch.IsActive)
	}

	addSet("updated_at", time.Now())

	query := fmt.Sprintf(`
		UPDATE adgem_offers SET %s
		WHERE id = $%d
		RETURNING *
	`, strings.Join(sets, ", "), argPos)
	args = append(args, id)

	var offer Offer
	err := r.db.GetContext(ctx, &offer, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &offer, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM adgem_offers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrOfferNotFound
	}
	return nil
}
