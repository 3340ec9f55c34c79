package repository

import (
	"resume-builder/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/pkg/errors"
)

// wrap maps a missing row to domain.ErrNotFound and annotates the rest.
func wrap(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return errors.Wrap(err, msg)
}
