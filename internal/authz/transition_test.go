package authz

import (
	"testing"

	"github.com/shenikar/outage_tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []models.Status{
	models.StatusReported,
	models.StatusInvestigating,
	models.StatusInProgress,
	models.StatusResolved,
	models.StatusCancelled,
}

var allRoles = []models.Role{
	models.RoleAdmin,
	models.RoleTeamLead,
	models.RoleTeamMember,
	models.RoleReporter,
}

func TestValidateTransition_PrivilegedRolesUnrestricted(t *testing.T) {
	// Порядок переходов не навязывается: любая роль, кроме репортера,
	// может установить любой статус из перечисления
	for _, role := range []models.Role{models.RoleAdmin, models.RoleTeamLead, models.RoleTeamMember} {
		for _, from := range allStatuses {
			for _, to := range allStatuses {
				assert.NoError(t, ValidateTransition(role, from, to),
					"%s: %s -> %s", role, from, to)
			}
		}
	}
}

func TestValidateTransition_ReporterMayOnlyCancel(t *testing.T) {
	for _, from := range allStatuses {
		err := ValidateTransition(models.RoleReporter, from, models.StatusCancelled)
		assert.NoError(t, err, "reporter %s -> cancelled", from)
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if to == models.StatusCancelled || to == from {
				continue
			}
			err := ValidateTransition(models.RoleReporter, from, to)
			require.Error(t, err, "reporter %s -> %s", from, to)

			var te *TransitionError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, "reporters may only cancel", te.Reason)
		}
	}
}

func TestValidateTransition_Idempotent(t *testing.T) {
	// Повторная установка текущего статуса - no-op для любой роли
	for _, role := range allRoles {
		for _, s := range allStatuses {
			assert.NoError(t, ValidateTransition(role, s, s), "%s: %s -> %s", role, s, s)
		}
	}
}

func TestValidateTransition_UnknownStatus(t *testing.T) {
	err := ValidateTransition(models.RoleAdmin, models.StatusReported, models.Status("archived"))

	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.Reason, "invalid status")
}
