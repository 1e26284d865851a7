package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRequest nueva tasa de cambio (so'm por unidad).
type CurrencyRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

func (r CurrencyRequest) Missing() []string {
	return missing(map[string]bool{"amount": r.Amount == nil})
}

type CurrencyResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// VariantRequest plan de cuotas: recargo en % y duración en meses.
type VariantRequest struct {
	Percent  *decimal.Decimal `json:"percent"`
	Duration *int             `json:"duration"`
}

func (r VariantRequest) Missing() []string {
	return missing(map[string]bool{"percent": r.Percent == nil, "duration": r.Duration == nil})
}

type VariantResponse struct {
	ID        string          `json:"id"`
	Percent   decimal.Decimal `json:"percent"`
	Duration  int             `json:"duration"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
