package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property is a rental-property note owned by one user. Every column except
// user_id is nullable, so optional fields are pointers (or NullDecimal for
// the NUMERIC columns) and serialize as null when unset.
type Property struct {
	ID            int                 `json:"id"`
	UserID        int                 `json:"user_id"`
	MansionName   *string             `json:"mansion_name"`
	Address       *string             `json:"address"`
	Layout        *string             `json:"layout"`
	Area          decimal.NullDecimal `json:"area"`
	Rent          *int                `json:"rent"`
	TimeToStation *int                `json:"time_to_station"`
	RealRent      decimal.NullDecimal `json:"real_rent"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}
