package models

import (
	"time"

	"github.com/google/uuid"
)

// UpdateType определяет измерение изменения, зафиксированное записью аудита
type UpdateType string

const (
	UpdateTypeStatusChange   UpdateType = "status_change"
	UpdateTypeAssignment     UpdateType = "assignment"
	UpdateTypePriorityChange UpdateType = "priority_change"
	UpdateTypeGeneral        UpdateType = "general_update"
)

// LocationUpdate - неизменяемая запись аудита об одном изменении отключения.
// Создается ровно один раз на каждое принятое изменение и никогда не редактируется.
type LocationUpdate struct {
	ID             uuid.UUID  `json:"id"`
	LocationID     uuid.UUID  `json:"location_id"`
	UpdatedBy      *User      `json:"updated_by,omitempty"`
	UpdateType     UpdateType `json:"update_type"`
	PreviousStatus Status     `json:"previous_status,omitempty"`
	NewStatus      Status     `json:"new_status,omitempty"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
}
