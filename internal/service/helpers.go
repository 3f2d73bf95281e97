package service

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"bowls-club-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	timestampLayout = "2006-01-02T15:04:05Z07:00"
	dateLayout      = "2006-01-02"
)

// NewValidator returns a validator that understands decimal amounts, so tags
// such as gte=0 apply to decimal.Decimal fields.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// lookupErr maps a missing row to notFound and wraps anything else
func lookupErr(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// homeLabel is our side's name in fixtures: the club profile's short name,
// or fallback when no profile has been created yet.
func homeLabel(clubs repository.OwnClubRepositoryInterface, fallback string) string {
	if clubs == nil {
		return fallback
	}
	club, err := clubs.Get()
	if err != nil || club.ShortName == "" {
		return fallback
	}
	return club.ShortName
}

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
