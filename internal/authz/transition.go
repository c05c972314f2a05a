package authz

import (
	"fmt"

	"github.com/shenikar/outage_tracker/internal/models"
)

// TransitionError - отклоненный переход статуса с причиной для пользователя
type TransitionError struct {
	From   models.Status
	To     models.Status
	Reason string
}

func (e *TransitionError) Error() string {
	return e.Reason
}

// ValidateTransition решает, допустим ли переход статуса для роли.
// Повторная установка текущего статуса - идемпотентный no-op.
// Строгий порядок переходов намеренно не навязывается: любая роль, кроме
// репортера, может установить любой статус из перечисления.
func ValidateTransition(role models.Role, current, proposed models.Status) error {
	if proposed == current {
		return nil
	}
	if !proposed.Valid() {
		return &TransitionError{
			From:   current,
			To:     proposed,
			Reason: fmt.Sprintf("invalid status %q", string(proposed)),
		}
	}
	if role == models.RoleReporter && proposed != models.StatusCancelled {
		return &TransitionError{
			From:   current,
			To:     proposed,
			Reason: "reporters may only cancel",
		}
	}
	return nil
}
