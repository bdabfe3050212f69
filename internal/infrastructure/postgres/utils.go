package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
	codeForeignKey      = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// isConstraintViolation CHECK o FK rechazados por la base.
func isConstraintViolation(err error) bool {
	code := pgCode(err)
	return code == codeCheckViolation || code == codeForeignKey
}

// isUUID evita enviar a la base ids que la columna UUID rechazaría con error de sintaxis.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
