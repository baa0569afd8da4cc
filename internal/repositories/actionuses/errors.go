package actionuses

import (
	"fmt"

	"github.com/KirkDiggler/crucible-engine/internal/repositories"
)

type ActionUseError struct {
	Err error
}

func (e *ActionUseError) Error() string {
	return fmt.Sprintf("action use %v", e.Err)
}

func (e *ActionUseError) Unwrap() error {
	return e.Err
}

func NewActionUseNotFoundError(id string) error {
	return &ActionUseError{
		Err: repositories.NewRecordNotFoundError(id),
	}
}
