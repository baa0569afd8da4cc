package repositories

import (
	dnderr "github.com/KirkDiggler/crucible-engine/internal/errors"
)

type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

const (
	ErrRecord RepositoryError = "record error"
)

// NewRecordNotFoundError reports a missing record as a not-found error
func NewRecordNotFoundError(id string) error {
	return dnderr.WrapWithCode(ErrRecord, dnderr.CodeNotFound, "not found: "+id).
		WithMeta("id", id)
}
