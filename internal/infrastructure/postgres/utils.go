package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/catalog-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation 23503: la referencia (marca, color, categoría...) no existe.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// isCheckViolation 23514: valor fuera de los CHECK del esquema (ej. rate 0..5).
func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514"
	}
	return false
}

// isInvalidText 22P02: id que no es un UUID válido.
func isInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "22P02"
	}
	return false
}

// mapWriteError traduce errores de constraint a errores de dominio.
func mapWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err), isCheckViolation(err), isInvalidText(err):
		return domain.ErrInvalidInput
	}
	return err
}

// writeErr aplica mapWriteError y, si el error no es de constraint, lo envuelve con op.
func writeErr(op string, err error) error {
	if mapped := mapWriteError(err); mapped != err {
		return mapped
	}
	return fmt.Errorf("%s: %w", op, err)
}

// notFoundOnInvalid un id que no es UUID equivale a un recurso inexistente.
func notFoundOnInvalid(op string, err error) error {
	if isInvalidText(err) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
