package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem represents a bookable menu (course) with a per-person price
type MenuItem struct {
	ID              uuid.UUID
	Name            string
	Description     *string
	DurationMinutes int
	Price           decimal.Decimal
	ImageURL        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks required fields
func (m *MenuItem) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMenuItem)
	}
	if len(m.Name) > MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidMenuItem)
	}
	if m.Description != nil && len(*m.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidMenuItem)
	}
	if m.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidMenuItem)
	}
	if m.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidMenuItem)
	}
	return nil
}
