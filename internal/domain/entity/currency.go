package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency tasa de conversión (registro de solo inserción). La tasa vigente es la última creada.
type Currency struct {
	ID        string
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Variant plan de cuotas: recargo Percent (%) a pagar en Duration meses.
// El plan activo es el último creado.
type Variant struct {
	ID        string
	Percent   decimal.Decimal
	Duration  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
