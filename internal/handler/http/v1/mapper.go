package v1

import (
	"github.com/shenikar/outage_tracker/internal/models"
	"github.com/shenikar/outage_tracker/internal/service"
)

// DTOToLocationModel преобразует DTO создания в доменную модель.
// Статус, репортер и назначение выставляет сервис, а не запрос.
func DTOToLocationModel(dto CreateLocationRequest) *models.Location {
	return &models.Location{
		Name:                       dto.Name,
		Address:                    dto.Address,
		City:                       dto.City,
		State:                      dto.State,
		ZipCode:                    dto.ZipCode,
		Latitude:                   dto.Latitude,
		Longitude:                  dto.Longitude,
		Priority:                   models.Priority(dto.Priority),
		Description:                dto.Description,
		EstimatedCustomersAffected: dto.EstimatedCustomersAffected,
		ReporterEmail:              dto.ReporterEmail,
		ReporterPhone:              dto.ReporterPhone,
	}
}

// DTOToLocationChanges преобразует DTO частичного обновления в набор
// изменений сервиса, сохраняя разницу между отсутствующим и пустым полем
func DTOToLocationChanges(dto UpdateLocationRequest) service.LocationChanges {
	changes := service.LocationChanges{
		ReporterEmail: dto.ReporterEmail,
		ReporterPhone: dto.ReporterPhone,
		AssignedTo:    dto.AssignedTo,
		Notes:         dto.Notes,
	}
	if dto.Status != nil {
		status := models.Status(*dto.Status)
		changes.Status = &status
	}
	if dto.Priority != nil {
		priority := models.Priority(*dto.Priority)
		changes.Priority = &priority
	}
	return changes
}

// ModelToUserResponse преобразует доменную модель пользователя в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	if model == nil {
		return nil
	}
	return &UserResponse{
		ID:          model.ID,
		Email:       model.Email,
		FirstName:   model.FirstName,
		LastName:    model.LastName,
		Role:        string(model.Role),
		PhoneNumber: model.PhoneNumber,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToUserResponses преобразует слайс моделей в слайс DTO
func ModelsToUserResponses(users []*models.User) []*UserResponse {
	responses := make([]*UserResponse, len(users))
	for i, user := range users {
		responses[i] = ModelToUserResponse(user)
	}
	return responses
}

// ModelToLocationResponse преобразует доменную модель в DTO для ответа
func ModelToLocationResponse(model *models.Location) *LocationResponse {
	return &LocationResponse{
		ID:                         model.ID,
		Name:                       model.Name,
		Address:                    model.Address,
		City:                       model.City,
		State:                      model.State,
		ZipCode:                    model.ZipCode,
		Latitude:                   model.Latitude,
		Longitude:                  model.Longitude,
		Status:                     string(model.Status),
		Priority:                   string(model.Priority),
		Description:                model.Description,
		EstimatedCustomersAffected: model.EstimatedCustomersAffected,
		AssignedTo:                 ModelToUserResponse(model.AssignedTo),
		ReportedBy:                 ModelToUserResponse(model.ReportedBy),
		ReporterEmail:              model.ReporterEmail,
		ReporterPhone:              model.ReporterPhone,
		ReportedAt:                 model.ReportedAt,
		CreatedAt:                  model.CreatedAt,
		UpdatedAt:                  model.UpdatedAt,
		EstimatedRestoration:       model.EstimatedRestoration,
		ActualRestoration:          model.ActualRestoration,
	}
}

// ModelsToLocationResponses преобразует слайс моделей в слайс DTO
func ModelsToLocationResponses(locations []*models.Location) []*LocationResponse {
	responses := make([]*LocationResponse, len(locations))
	for i, loc := range locations {
		responses[i] = ModelToLocationResponse(loc)
	}
	return responses
}

// ModelToUpdateResponse преобразует запись истории в DTO для ответа
func ModelToUpdateResponse(model *models.LocationUpdate) *UpdateResponse {
	return &UpdateResponse{
		ID:             model.ID,
		LocationID:     model.LocationID,
		UpdatedBy:      ModelToUserResponse(model.UpdatedBy),
		UpdateType:     string(model.UpdateType),
		PreviousStatus: string(model.PreviousStatus),
		NewStatus:      string(model.NewStatus),
		Notes:          model.Notes,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelsToUpdateResponses преобразует слайс записей истории в слайс DTO
func ModelsToUpdateResponses(updates []*models.LocationUpdate) []*UpdateResponse {
	responses := make([]*UpdateResponse, len(updates))
	for i, upd := range updates {
		responses[i] = ModelToUpdateResponse(upd)
	}
	return responses
}

// StatsToResponse преобразует агрегаты сервиса в DTO для ответа
func StatsToResponse(stats *service.LocationStats) *StatsResponse {
	return &StatsResponse{
		Total:      stats.Total,
		ByStatus:   stats.ByStatus,
		ByPriority: stats.ByPriority,
	}
}
