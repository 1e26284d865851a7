package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricingQueries_OrdenanPorInsercion(t *testing.T) {
	for name, q := range map[string]string{
		"currency latest": currencyLatestSQL,
		"variant active":  variantActiveSQL,
	} {
		order := q[strings.Index(q, "ORDER BY"):]
		assert.Equal(t, "ORDER BY seq DESC LIMIT 1", order, name)
		assert.NotContains(t, order, "created_at", name)
	}
}
