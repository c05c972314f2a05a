package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/outage_tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(role models.Role) *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: string(role) + "@example.com",
		Role:  role,
	}
}

func newLocation(reportedBy, assignedTo *models.User) *models.Location {
	return &models.Location{
		ID:         uuid.New(),
		Name:       "Substation 12",
		Status:     models.StatusReported,
		Priority:   models.PriorityMedium,
		ReportedBy: reportedBy,
		AssignedTo: assignedTo,
	}
}

func TestClassify(t *testing.T) {
	reporter := newUser(models.RoleReporter)
	member := newUser(models.RoleTeamMember)
	other := newUser(models.RoleTeamMember)

	loc := newLocation(reporter, member)

	assert.Equal(t, RelationshipReporter, Classify(reporter, loc))
	assert.Equal(t, RelationshipAssignee, Classify(member, loc))
	assert.Equal(t, RelationshipNeither, Classify(other, loc))
}

func TestClassify_ReporterWinsOverAssignee(t *testing.T) {
	// Пользователь одновременно репортер и исполнитель - побеждает репортер
	user := newUser(models.RoleReporter)
	loc := newLocation(user, user)

	assert.Equal(t, RelationshipReporter, Classify(user, loc))
}

func TestResolve_CanEdit(t *testing.T) {
	reporter := newUser(models.RoleReporter)
	assignee := newUser(models.RoleTeamMember)
	loc := newLocation(reporter, assignee)

	tests := []struct {
		name    string
		user    *models.User
		canEdit bool
	}{
		{"admin always", newUser(models.RoleAdmin), true},
		{"team lead always", newUser(models.RoleTeamLead), true},
		{"assigned team member", assignee, true},
		{"unrelated team member", newUser(models.RoleTeamMember), false},
		{"own reporter", reporter, true},
		{"unrelated reporter", newUser(models.RoleReporter), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Resolve(tt.user, loc)
			assert.Equal(t, tt.canEdit, p.CanEdit)
			assert.Equal(t, tt.canEdit, p.CanView)
		})
	}
}

func TestResolve_FieldAllowList(t *testing.T) {
	reporter := newUser(models.RoleReporter)
	assignee := newUser(models.RoleTeamMember)
	loc := newLocation(reporter, assignee)

	tests := []struct {
		name    string
		user    *models.User
		allowed []Field
		denied  []Field
	}{
		{
			name:    "admin",
			user:    newUser(models.RoleAdmin),
			allowed: []Field{FieldReporterEmail, FieldReporterPhone, FieldStatus, FieldAssignedTo, FieldPriority},
		},
		{
			name:    "team lead",
			user:    newUser(models.RoleTeamLead),
			allowed: []Field{FieldReporterEmail, FieldReporterPhone, FieldStatus, FieldAssignedTo, FieldPriority},
		},
		{
			name:    "assigned team member",
			user:    assignee,
			allowed: []Field{FieldReporterEmail, FieldReporterPhone, FieldStatus, FieldAssignedTo},
			denied:  []Field{FieldPriority},
		},
		{
			name:    "own reporter",
			user:    reporter,
			allowed: []Field{FieldReporterEmail, FieldReporterPhone, FieldStatus},
			denied:  []Field{FieldAssignedTo, FieldPriority},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Resolve(tt.user, loc)
			require.True(t, p.CanEdit)
			for _, f := range tt.allowed {
				assert.True(t, p.FieldAllowed(f), "field %s should be allowed", f)
			}
			for _, f := range tt.denied {
				assert.False(t, p.FieldAllowed(f), "field %s should be denied", f)
			}
		})
	}
}

func TestResolve_NoFieldsWithoutEdit(t *testing.T) {
	loc := newLocation(newUser(models.RoleReporter), nil)
	p := Resolve(newUser(models.RoleTeamMember), loc)

	assert.False(t, p.CanEdit)
	assert.False(t, p.FieldAllowed(FieldStatus))
	assert.False(t, p.FieldAllowed(FieldReporterEmail))
}

func TestValidateAssignee(t *testing.T) {
	admin := newUser(models.RoleAdmin)
	lead := newUser(models.RoleTeamLead)
	member := newUser(models.RoleTeamMember)
	reporter := newUser(models.RoleReporter)

	tests := []struct {
		name    string
		actor   *models.User
		target  *models.User
		wantErr bool
	}{
		{"admin assigns team member", admin, member, false},
		{"admin assigns team lead", admin, lead, false},
		{"admin assigns admin", admin, newUser(models.RoleAdmin), false},
		{"admin assigns reporter", admin, reporter, true},
		{"lead assigns team member", lead, member, false},
		{"lead assigns lead", lead, newUser(models.RoleTeamLead), true},
		{"lead assigns reporter", lead, reporter, true},
		{"member assigns self", member, member, false},
		{"member assigns other member", member, newUser(models.RoleTeamMember), true},
		{"reporter assigns anyone", reporter, member, true},
		{"unassign is always allowed", admin, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssignee(tt.actor, tt.target)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanCreate(t *testing.T) {
	assert.True(t, CanCreate(models.RoleReporter))
	assert.False(t, CanCreate(models.RoleAdmin))
	assert.False(t, CanCreate(models.RoleTeamLead))
	assert.False(t, CanCreate(models.RoleTeamMember))
}
