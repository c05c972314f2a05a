package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/outage_tracker/internal/models"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Role        string `json:"role,omitempty" validate:"omitempty,oneof=admin team_lead team_member reporter"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse DTO для ответа аутентификации
// @Description DTO для ответа аутентификации
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Role        string    `json:"role"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateLocationRequest DTO для регистрации отключения. Доменные правила
// проверяются в сервисе, который собирает ошибки по каждому полю.
// @Description DTO для регистрации отключения
type CreateLocationRequest struct {
	Name                       string   `json:"name"`
	Address                    string   `json:"address"`
	City                       string   `json:"city"`
	State                      string   `json:"state"`
	ZipCode                    string   `json:"zip_code"`
	Latitude                   *float64 `json:"latitude,omitempty"`
	Longitude                  *float64 `json:"longitude,omitempty"`
	Priority                   string   `json:"priority,omitempty"`
	Description                string   `json:"description"`
	EstimatedCustomersAffected *int     `json:"estimated_customers_affected,omitempty"`
	ReporterEmail              string   `json:"reporter_email"`
	ReporterPhone              string   `json:"reporter_phone"`
}

// UpdateLocationRequest DTO для частичного обновления отключения.
// nil-поле отсутствует в запросе и не оценивается, пустая строка в
// assigned_to снимает назначение.
// @Description DTO для частичного обновления отключения
type UpdateLocationRequest struct {
	Status        *string `json:"status,omitempty"`
	AssignedTo    *string `json:"assigned_to,omitempty"`
	Priority      *string `json:"priority,omitempty"`
	ReporterEmail *string `json:"reporter_email,omitempty"`
	ReporterPhone *string `json:"reporter_phone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// UpdateLocationResponse DTO для ответа на частичное обновление: обновленное
// отключение вместе с записями истории, созданными этим запросом
// @Description DTO для ответа на частичное обновление
type UpdateLocationResponse struct {
	Location *LocationResponse `json:"location"`
	Updates  []*UpdateResponse `json:"updates"`
}

// NoteRequest DTO для добавления комментария в историю
// @Description DTO для добавления комментария в историю
type NoteRequest struct {
	Notes string `json:"notes"`
}

// LocationResponse DTO для ответа с информацией об отключении
// @Description DTO для ответа с информацией об отключении
type LocationResponse struct {
	ID                         uuid.UUID     `json:"id"`
	Name                       string        `json:"name"`
	Address                    string        `json:"address"`
	City                       string        `json:"city"`
	State                      string        `json:"state"`
	ZipCode                    string        `json:"zip_code"`
	Latitude                   *float64      `json:"latitude,omitempty"`
	Longitude                  *float64      `json:"longitude,omitempty"`
	Status                     string        `json:"status"`
	Priority                   string        `json:"priority"`
	Description                string        `json:"description"`
	EstimatedCustomersAffected *int          `json:"estimated_customers_affected,omitempty"`
	AssignedTo                 *UserResponse `json:"assigned_to,omitempty"`
	ReportedBy                 *UserResponse `json:"reported_by,omitempty"`
	ReporterEmail              string        `json:"reporter_email,omitempty"`
	ReporterPhone              string        `json:"reporter_phone,omitempty"`
	ReportedAt                 time.Time     `json:"reported_at"`
	CreatedAt                  time.Time     `json:"created_at"`
	UpdatedAt                  time.Time     `json:"updated_at"`
	EstimatedRestoration       *time.Time    `json:"estimated_restoration,omitempty"`
	ActualRestoration          *time.Time    `json:"actual_restoration,omitempty"`
}

// UpdateResponse DTO для записи истории отключения
// @Description DTO для записи истории отключения
type UpdateResponse struct {
	ID             uuid.UUID     `json:"id"`
	LocationID     uuid.UUID     `json:"location_id"`
	UpdatedBy      *UserResponse `json:"updated_by,omitempty"`
	UpdateType     string        `json:"update_type"`
	PreviousStatus string        `json:"previous_status,omitempty"`
	NewStatus      string        `json:"new_status,omitempty"`
	Notes          string        `json:"notes"`
	CreatedAt      time.Time     `json:"created_at"`
}

// StatsResponse DTO для агрегатов дашборда
// @Description DTO для агрегатов дашборда
type StatsResponse struct {
	Total      int                     `json:"total"`
	ByStatus   map[models.Status]int   `json:"by_status"`
	ByPriority map[models.Priority]int `json:"by_priority"`
}
