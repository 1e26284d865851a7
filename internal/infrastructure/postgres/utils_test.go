package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalog-api/internal/domain"
)

func TestMapWriteError(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: code})
	}
	assert.ErrorIs(t, mapWriteError(wrap("23505")), domain.ErrDuplicate)
	assert.ErrorIs(t, mapWriteError(wrap("23503")), domain.ErrInvalidInput)
	assert.ErrorIs(t, mapWriteError(wrap("23514")), domain.ErrInvalidInput)
	assert.ErrorIs(t, mapWriteError(wrap("22P02")), domain.ErrInvalidInput)
	assert.NoError(t, mapWriteError(nil))

	other := errors.New("conexión perdida")
	assert.Equal(t, other, mapWriteError(other))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%kitob%", likePattern("kitob"))
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
}

func TestWhereBuilder(t *testing.T) {
	var w whereBuilder
	assert.Equal(t, "", w.sql())

	w.add("p.is_active")
	w.add("b.title ILIKE ?", "%x%")
	w.add("(p.title ILIKE ? OR p.description ILIKE ?)", "%a%", "%a%")
	limit := w.next(20)

	assert.Equal(t, " WHERE p.is_active AND b.title ILIKE $1 AND (p.title ILIKE $2 OR p.description ILIKE $3)", w.sql())
	assert.Equal(t, "$4", limit)
	assert.Len(t, w.args, 4)
}

func TestItoa(t *testing.T) {
	assert.Equal(t, "7", itoa(7))
	assert.Equal(t, "12", itoa(12))
	assert.Equal(t, "105", itoa(105))
}
