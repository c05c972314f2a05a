// Package authz содержит движок авторизации и переходов статусов:
// чистые функции без I/O, безопасные для конкурентного вызова.
package authz

import (
	"fmt"

	"github.com/shenikar/outage_tracker/internal/models"
)

// Relationship - отношение пользователя к конкретному отключению
type Relationship string

const (
	RelationshipReporter Relationship = "reporter"
	RelationshipAssignee Relationship = "assignee"
	RelationshipNeither  Relationship = "neither"
)

// Field - имя поля отключения, на запись которого выдается разрешение
type Field string

const (
	FieldReporterEmail Field = "reporter_email"
	FieldReporterPhone Field = "reporter_phone"
	FieldStatus        Field = "status"
	FieldAssignedTo    Field = "assigned_to"
	FieldPriority      Field = "priority"
)

// Classify определяет отношение пользователя к отключению.
// Если пользователь одновременно репортер и исполнитель (модель данных этого
// не запрещает), побеждает репортер - см. решение в DESIGN.md.
func Classify(user *models.User, loc *models.Location) Relationship {
	if loc.ReportedBy != nil && loc.ReportedBy.ID == user.ID {
		return RelationshipReporter
	}
	if loc.AssignedTo != nil && loc.AssignedTo.ID == user.ID {
		return RelationshipAssignee
	}
	return RelationshipNeither
}

// Permissions - декларативный дескриптор прав пользователя на отключение
type Permissions struct {
	CanView bool
	CanEdit bool
	fields  map[Field]bool
}

// FieldAllowed сообщает, разрешена ли запись в поле
func (p Permissions) FieldAllowed(f Field) bool {
	return p.fields[f]
}

// Resolve вычисляет права пользователя на отключение по роли и отношению.
// Поля вне разрешенного набора вызывающий молча отбрасывает из запроса,
// а отказ в просмотре/редактировании трактует как "не найдено".
func Resolve(user *models.User, loc *models.Location) Permissions {
	rel := Classify(user, loc)

	var allowed bool
	switch user.Role {
	case models.RoleAdmin, models.RoleTeamLead:
		allowed = true
	case models.RoleTeamMember:
		allowed = rel == RelationshipAssignee
	case models.RoleReporter:
		allowed = rel == RelationshipReporter
	}

	p := Permissions{CanView: allowed, CanEdit: allowed}
	if !p.CanEdit {
		return p
	}

	p.fields = map[Field]bool{
		FieldReporterEmail: true,
		FieldReporterPhone: true,
		FieldStatus:        true,
	}
	switch user.Role {
	case models.RoleAdmin, models.RoleTeamLead:
		p.fields[FieldAssignedTo] = true
		p.fields[FieldPriority] = true
	case models.RoleTeamMember:
		p.fields[FieldAssignedTo] = true
	}
	return p
}

// ValidateAssignee проверяет, что цель назначения допустима для роли актора.
// nil означает снятие назначения и разрешено всегда, когда само поле доступно.
func ValidateAssignee(actor *models.User, target *models.User) error {
	if target == nil {
		return nil
	}
	switch actor.Role {
	case models.RoleAdmin:
		if target.Role == models.RoleReporter {
			return fmt.Errorf("assignee must be admin, team_lead, or team_member")
		}
	case models.RoleTeamLead:
		if target.Role != models.RoleTeamMember {
			return fmt.Errorf("team leads may only assign team members")
		}
	case models.RoleTeamMember:
		if target.ID != actor.ID {
			return fmt.Errorf("team members may only assign themselves")
		}
	default:
		return fmt.Errorf("role %s may not assign locations", actor.Role)
	}
	return nil
}

// CanCreate сообщает, может ли роль регистрировать новые отключения.
// Ограничение сохранено как в источнике: только репортеры.
func CanCreate(role models.Role) bool {
	return role == models.RoleReporter
}
