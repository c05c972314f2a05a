package models

import (
	"time"

	"github.com/google/uuid"
)

// Status описывает этап жизненного цикла отключения
type Status string

const (
	StatusReported      Status = "reported"
	StatusInvestigating Status = "investigating"
	StatusInProgress    Status = "in_progress"
	StatusResolved      Status = "resolved"
	StatusCancelled     Status = "cancelled"
)

// Valid проверяет, что статус входит в допустимый набор
func (s Status) Valid() bool {
	switch s {
	case StatusReported, StatusInvestigating, StatusInProgress, StatusResolved, StatusCancelled:
		return true
	}
	return false
}

// Terminal сообщает, есть ли у статуса исходящие переходы
func (s Status) Terminal() bool {
	return s == StatusResolved || s == StatusCancelled
}

// Priority определяет срочность устранения отключения
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Valid проверяет, что приоритет входит в допустимый набор
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Location представляет зарегистрированное отключение электроэнергии
type Location struct {
	ID                         uuid.UUID  `json:"id"`
	Name                       string     `json:"name"`
	Address                    string     `json:"address"`
	City                       string     `json:"city"`
	State                      string     `json:"state"`
	ZipCode                    string     `json:"zip_code"`
	Latitude                   *float64   `json:"latitude,omitempty"`
	Longitude                  *float64   `json:"longitude,omitempty"`
	Status                     Status     `json:"status"`
	Priority                   Priority   `json:"priority"`
	Description                string     `json:"description"`
	EstimatedCustomersAffected *int       `json:"estimated_customers_affected,omitempty"`
	AssignedTo                 *User      `json:"assigned_to,omitempty"`
	ReportedBy                 *User      `json:"reported_by,omitempty"`
	ReporterEmail              string     `json:"reporter_email,omitempty"`
	ReporterPhone              string     `json:"reporter_phone,omitempty"`
	CreatedAt                  time.Time  `json:"created_at"`
	UpdatedAt                  time.Time  `json:"updated_at"`
	ReportedAt                 time.Time  `json:"reported_at"`
	EstimatedRestoration       *time.Time `json:"estimated_restoration,omitempty"`
	ActualRestoration          *time.Time `json:"actual_restoration,omitempty"`
}

// IsAssigned сообщает, назначен ли исполнитель
func (l *Location) IsAssigned() bool {
	return l.AssignedTo != nil
}
