package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rkondo/realrent/internal/models"
	"github.com/shopspring/decimal"
)

// ==========================
// PropertyRepo
// ==========================
type PropertyRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewPropertyRepo(db *sql.DB) *PropertyRepo {
	return &PropertyRepo{DB: db}
}

// PropertyInput carries the optional property fields for Create. Unset fields
// stay NULL in the row; nothing is substituted with defaults.
type PropertyInput struct {
	MansionName   *string
	Address       *string
	Layout        *string
	Area          decimal.NullDecimal
	Rent          *int
	TimeToStation *int
	RealRent      decimal.NullDecimal
}

// DeleteConfirmation identifies the single row a Delete removed.
type DeleteConfirmation struct {
	ID          int     `json:"id"`
	MansionName *string `json:"mansion_name"`
}

const propertyColumns = "id, user_id, mansion_name, address, layout, area, rent, time_to_station, real_rent, created_at, updated_at"

func scanProperty(row interface{ Scan(dest ...any) error }, p *models.Property) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.MansionName, &p.Address, &p.Layout,
		&p.Area, &p.Rent, &p.TimeToStation, &p.RealRent,
		&p.CreatedAt, &p.UpdatedAt,
	)
}

// ==========================
// Create Property
// ==========================

// Create inserts a property for the given owner and returns the stored row.
// An unknown owner id surfaces as ErrUnknownOwner.
func (r *PropertyRepo) Create(ctx context.Context, userID int, in PropertyInput) (*models.Property, error) {
	query := `
		INSERT INTO properties (user_id, mansion_name, address, layout, area, rent, time_to_station, real_rent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + propertyColumns

	p := &models.Property{}

	err := scanProperty(r.DB.QueryRowContext(ctx, query,
		userID, in.MansionName, in.Address, in.Layout,
		in.Area, in.Rent, in.TimeToStation, in.RealRent,
	), p)

	if err != nil {
		if e, ok := err.(*pq.Error); ok && string(e.Code) == pgForeignKeyViolation {
			return nil, ErrUnknownOwner
		}
		return nil, fmt.Errorf("create property: %w", err)
	}

	return p, nil
}

// ==========================
// List Properties By Owner
// ==========================

// ListByUser returns the owner's properties, newest first. No properties is
// an empty slice, not an error.
func (r *PropertyRepo) ListByUser(ctx context.Context, userID int) ([]models.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		var p models.Property
		if err := scanProperty(rows, &p); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, p)
	}

	return properties, rows.Err()
}

// ==========================
// Delete Property
// ==========================

// Delete removes the property only when both the id and the owner match.
// Zero matched rows becomes ErrNotFoundOrForbidden without saying which
// condition failed.
func (r *PropertyRepo) Delete(ctx context.Context, propertyID, userID int) (*DeleteConfirmation, error) {
	query := `
		DELETE FROM properties
		WHERE id = $1 AND user_id = $2
		RETURNING id, mansion_name
	`

	conf := &DeleteConfirmation{}

	err := r.DB.QueryRowContext(ctx, query, propertyID, userID).
		Scan(&conf.ID, &conf.MansionName)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFoundOrForbidden
		}
		return nil, fmt.Errorf("delete property: %w", err)
	}

	return conf, nil
}
