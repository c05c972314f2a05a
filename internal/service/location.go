package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/outage_tracker/internal/authz"
	"github.com/shenikar/outage_tracker/internal/errs"
	"github.com/shenikar/outage_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=location.go -destination=mocks/mock_location.go -package=mocks

// LocationFilter ограничивает выборку отключений областью видимости роли
type LocationFilter struct {
	AssignedToID   *uuid.UUID
	ReportedByID   *uuid.UUID
	AssignedRoleIn []models.Role
}

// LocationStats - агрегаты для дашборда
type LocationStats struct {
	Total      int                     `json:"total"`
	ByStatus   map[models.Status]int   `json:"by_status"`
	ByPriority map[models.Priority]int `json:"by_priority"`
}

// LocationChanges - частичное обновление отключения. nil-поле отсутствует в
// запросе и не оценивается. Пустая строка в AssignedTo снимает назначение.
type LocationChanges struct {
	ReporterEmail *string
	ReporterPhone *string
	Status        *models.Status
	AssignedTo    *string
	Priority      *models.Priority
	Notes         *string
}

// LocationRepository определяет контракт для работы с бд отключений
type LocationRepository interface {
	Create(ctx context.Context, loc *models.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error)
	Update(ctx context.Context, loc *models.Location) error
	List(ctx context.Context, filter LocationFilter, page, pageSize int) ([]*models.Location, error)
	StatusCounts(ctx context.Context, filter LocationFilter) (*LocationStats, error)
	GetLocationFromCache(ctx context.Context, id uuid.UUID) (*models.Location, error)
	SetLocationCache(ctx context.Context, loc *models.Location) error
	InvalidateLocationCache(ctx context.Context, id uuid.UUID) error
	GetStatsFromCache(ctx context.Context, key string) (*LocationStats, error)
	SetStatsCache(ctx context.Context, key string, stats *LocationStats) error
}

// UpdateRepository определяет контракт для append-only записей аудита
type UpdateRepository interface {
	Create(ctx context.Context, upd *models.LocationUpdate) error
	ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*models.LocationUpdate, error)
}

// LocationService определяет контракт для бизнес-логики отключений
type LocationService interface {
	CreateLocation(ctx context.Context, actor *models.User, loc *models.Location) error
	GetLocation(ctx context.Context, actor *models.User, id uuid.UUID) (*models.Location, error)
	ListLocations(ctx context.Context, actor *models.User, page, pageSize int) ([]*models.Location, error)
	UpdateLocation(ctx context.Context, actor *models.User, id uuid.UUID, changes LocationChanges) (*models.Location, []*models.LocationUpdate, error)
	AddNote(ctx context.Context, actor *models.User, id uuid.UUID, notes string) (*models.LocationUpdate, error)
	ListUpdates(ctx context.Context, actor *models.User, id uuid.UUID) ([]*models.LocationUpdate, error)
	GetStats(ctx context.Context, actor *models.User) (*LocationStats, error)
}

type locationService struct {
	repo    LocationRepository
	users   UserRepository
	updates UpdateRepository
	logger  *logrus.Logger
}

func NewLocationService(repo LocationRepository, users UserRepository, updates UpdateRepository, logger *logrus.Logger) LocationService {
	return &locationService{
		repo:    repo,
		users:   users,
		updates: updates,
		logger:  logger,
	}
}

// CreateLocation регистрирует новое отключение. Создавать могут только
// репортеры; репортер и статус "reported" фиксируются сервисом, а не запросом.
func (s *locationService) CreateLocation(ctx context.Context, actor *models.User, loc *models.Location) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "CreateLocation",
		"actor":   actor.ID,
	})
	log.Info("Attempting to create a new location")

	if !authz.CanCreate(actor.Role) {
		log.Warn("Non-reporter attempted to create a location")
		return errs.ErrForbidden
	}

	loc.State = strings.ToUpper(strings.TrimSpace(loc.State))
	if ve := authz.ValidateCreate(loc); len(ve) > 0 {
		log.WithField("fields", ve).Warn("Location creation failed validation")
		return ve
	}

	loc.Status = models.StatusReported
	if loc.Priority == "" {
		loc.Priority = models.PriorityMedium
	}
	loc.ReportedBy = actor
	loc.AssignedTo = nil
	loc.ReporterPhone = authz.NormalizePhone(loc.ReporterPhone)
	loc.ReporterEmail = strings.TrimSpace(loc.ReporterEmail)

	if err := s.repo.Create(ctx, loc); err != nil {
		log.WithError(err).Error("Failed to create location in repository")
		return fmt.Errorf("service: could not create location: %w", err)
	}

	log.WithField("location_id", loc.ID).Info("Location created successfully")
	return nil
}

// GetLocation получает отключение по ID с учетом прав просмотра.
// Отсутствие записи и отсутствие прав неразличимы для вызывающего.
func (s *locationService) GetLocation(ctx context.Context, actor *models.User, id uuid.UUID) (*models.Location, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "GetLocation",
		"location_id": id,
		"actor":       actor.ID,
	})
	log.Info("Fetching location by ID")

	loc, err := s.repo.GetLocationFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read location cache")
	}
	if loc == nil {
		loc, err = s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrLocationNotFound) {
				return nil, errs.ErrLocationNotFound
			}
			log.WithError(err).Error("Failed to get location from repository")
			return nil, fmt.Errorf("service: could not get location: %w", err)
		}
		if err := s.repo.SetLocationCache(ctx, loc); err != nil {
			log.WithError(err).Warn("Failed to write location cache")
		}
	}

	// Права проверяются и на попадании в кеш
	if !authz.Resolve(actor, loc).CanView {
		log.Warn("Viewer is not authorized, folding into not found")
		return nil, errs.ErrLocationNotFound
	}

	log.Info("Location fetched successfully")
	return loc, nil
}

// ListLocations возвращает отключения в области видимости роли с пагинацией
func (s *locationService) ListLocations(ctx context.Context, actor *models.User, page, pageSize int) ([]*models.Location, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "location",
		"method":    "ListLocations",
		"actor":     actor.ID,
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing locations")

	locations, err := s.repo.List(ctx, visibilityFilter(actor), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list locations from repository")
		return nil, fmt.Errorf("service: could not list locations: %w", err)
	}

	log.WithField("count", len(locations)).Info("Locations listed successfully")
	return locations, nil
}

// visibilityFilter повторяет область видимости ролей источника:
// админ видит все, тимлид - назначенное бригадам, остальные - только свое
func visibilityFilter(actor *models.User) LocationFilter {
	switch actor.Role {
	case models.RoleAdmin:
		return LocationFilter{}
	case models.RoleTeamLead:
		return LocationFilter{AssignedRoleIn: []models.Role{models.RoleTeamLead, models.RoleTeamMember}}
	case models.RoleTeamMember:
		return LocationFilter{AssignedToID: &actor.ID}
	default:
		return LocationFilter{ReportedByID: &actor.ID}
	}
}

// UpdateLocation применяет частичное обновление: поля вне allow-list роли
// молча отбрасываются, переход статуса и цель назначения проверяются, на
// каждое фактически изменившееся измерение создается своя запись аудита.
func (s *locationService) UpdateLocation(ctx context.Context, actor *models.User, id uuid.UUID, changes LocationChanges) (*models.Location, []*models.LocationUpdate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "UpdateLocation",
		"location_id": id,
		"actor":       actor.ID,
	})
	log.Info("Attempting to update location")

	// Валидатору нужен свежий снимок текущего статуса, поэтому кеш не используется
	loc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrLocationNotFound) {
			return nil, nil, errs.ErrLocationNotFound
		}
		log.WithError(err).Error("Failed to get location from repository")
		return nil, nil, fmt.Errorf("service: could not get location: %w", err)
	}

	perms := authz.Resolve(actor, loc)
	if !perms.CanEdit {
		log.Warn("Editor is not authorized, folding into not found")
		return nil, nil, errs.ErrLocationNotFound
	}

	// Поля вне allow-list роли отбрасываются до любой валидации
	if !perms.FieldAllowed(authz.FieldReporterEmail) {
		changes.ReporterEmail = nil
	}
	if !perms.FieldAllowed(authz.FieldReporterPhone) {
		changes.ReporterPhone = nil
	}
	if !perms.FieldAllowed(authz.FieldStatus) {
		changes.Status = nil
	}
	if !perms.FieldAllowed(authz.FieldAssignedTo) {
		changes.AssignedTo = nil
	}
	if !perms.FieldAllowed(authz.FieldPriority) {
		changes.Priority = nil
	}

	if changes.Status != nil {
		if err := authz.ValidateTransition(actor.Role, loc.Status, *changes.Status); err != nil {
			log.WithError(err).Warn("Status transition rejected")
			return nil, nil, err
		}
	}

	ve := authz.ValidateContact(changes.ReporterEmail, changes.ReporterPhone)

	var newAssignee *models.User
	if changes.AssignedTo != nil && *changes.AssignedTo != "" {
		newAssignee, err = s.lookupAssignee(ctx, actor, *changes.AssignedTo, ve)
		if err != nil {
			log.WithError(err).Error("Failed to look up assignee")
			return nil, nil, err
		}
	}

	if changes.Priority != nil && !changes.Priority.Valid() {
		ve["priority"] = "Invalid priority"
	}

	if len(ve) > 0 {
		log.WithField("fields", ve).Warn("Location update failed validation")
		return nil, nil, ve
	}

	emitted := s.applyChanges(loc, actor, changes, newAssignee)

	if err := s.repo.Update(ctx, loc); err != nil {
		log.WithError(err).Error("Failed to update location in repository")
		return nil, nil, fmt.Errorf("service: could not update location: %w", err)
	}

	for _, upd := range emitted {
		if err := s.updates.Create(ctx, upd); err != nil {
			log.WithError(err).Error("Failed to create location update record")
			return nil, nil, fmt.Errorf("service: could not create update record: %w", err)
		}
	}

	if err := s.repo.InvalidateLocationCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate location cache")
	}

	log.WithField("updates", len(emitted)).Info("Location updated successfully")
	return loc, emitted, nil
}

// lookupAssignee разбирает id цели назначения и проверяет ее допустимость.
// Ошибки поля складываются в ve, инфраструктурные возвращаются как error.
func (s *locationService) lookupAssignee(ctx context.Context, actor *models.User, rawID string, ve authz.ValidationErrors) (*models.User, error) {
	targetID, err := uuid.Parse(rawID)
	if err != nil {
		ve["assigned_to"] = "User not found"
		return nil, nil
	}
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			ve["assigned_to"] = "User not found"
			return nil, nil
		}
		return nil, fmt.Errorf("service: could not get assignee: %w", err)
	}
	if err := authz.ValidateAssignee(actor, target); err != nil {
		ve["assigned_to"] = err.Error()
		return nil, nil
	}
	return target, nil
}

// applyChanges переносит проверенные изменения в модель и формирует записи
// аудита - по одной на каждое реально изменившееся измерение
func (s *locationService) applyChanges(loc *models.Location, actor *models.User, changes LocationChanges, newAssignee *models.User) []*models.LocationUpdate {
	var notes string
	if changes.Notes != nil {
		notes = strings.TrimSpace(*changes.Notes)
	}

	emitted := make([]*models.LocationUpdate, 0, 3)

	if changes.ReporterEmail != nil {
		loc.ReporterEmail = strings.TrimSpace(*changes.ReporterEmail)
	}
	if changes.ReporterPhone != nil {
		loc.ReporterPhone = authz.NormalizePhone(*changes.ReporterPhone)
	}

	if changes.Status != nil && *changes.Status != loc.Status {
		prev := loc.Status
		loc.Status = *changes.Status
		if loc.Status == models.StatusResolved && loc.ActualRestoration == nil {
			now := time.Now().UTC()
			loc.ActualRestoration = &now
		}
		emitted = append(emitted, &models.LocationUpdate{
			LocationID:     loc.ID,
			UpdatedBy:      actor,
			UpdateType:     models.UpdateTypeStatusChange,
			PreviousStatus: prev,
			NewStatus:      loc.Status,
			Notes:          notes,
		})
	}

	if changes.AssignedTo != nil && assigneeChanged(loc.AssignedTo, newAssignee) {
		loc.AssignedTo = newAssignee
		note := "Location unassigned"
		if newAssignee != nil {
			note = fmt.Sprintf("Location assigned to %s", newAssignee.FullName())
		}
		emitted = append(emitted, &models.LocationUpdate{
			LocationID: loc.ID,
			UpdatedBy:  actor,
			UpdateType: models.UpdateTypeAssignment,
			Notes:      note,
		})
	}

	if changes.Priority != nil && *changes.Priority != loc.Priority {
		prev := loc.Priority
		loc.Priority = *changes.Priority
		emitted = append(emitted, &models.LocationUpdate{
			LocationID: loc.ID,
			UpdatedBy:  actor,
			UpdateType: models.UpdateTypePriorityChange,
			Notes:      fmt.Sprintf("Priority changed from %s to %s", prev, loc.Priority),
		})
	}

	return emitted
}

func assigneeChanged(current, proposed *models.User) bool {
	if current == nil && proposed == nil {
		return false
	}
	if current == nil || proposed == nil {
		return true
	}
	return current.ID != proposed.ID
}

// AddNote добавляет свободный комментарий в историю отключения
func (s *locationService) AddNote(ctx context.Context, actor *models.User, id uuid.UUID, notes string) (*models.LocationUpdate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "AddNote",
		"location_id": id,
		"actor":       actor.ID,
	})
	log.Info("Adding note to location history")

	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, authz.ValidationErrors{"notes": "Notes are required"}
	}

	if _, err := s.GetLocation(ctx, actor, id); err != nil {
		return nil, err
	}

	upd := &models.LocationUpdate{
		LocationID: id,
		UpdatedBy:  actor,
		UpdateType: models.UpdateTypeGeneral,
		Notes:      notes,
	}
	if err := s.updates.Create(ctx, upd); err != nil {
		log.WithError(err).Error("Failed to create note record")
		return nil, fmt.Errorf("service: could not create note: %w", err)
	}

	log.Info("Note added successfully")
	return upd, nil
}

// ListUpdates возвращает историю отключения с учетом прав просмотра
func (s *locationService) ListUpdates(ctx context.Context, actor *models.User, id uuid.UUID) ([]*models.LocationUpdate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "ListUpdates",
		"location_id": id,
		"actor":       actor.ID,
	})
	log.Info("Listing location updates")

	if _, err := s.GetLocation(ctx, actor, id); err != nil {
		return nil, err
	}

	updates, err := s.updates.ListByLocation(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to list updates from repository")
		return nil, fmt.Errorf("service: could not list updates: %w", err)
	}

	log.WithField("count", len(updates)).Info("Location updates listed successfully")
	return updates, nil
}

// GetStats возвращает агрегаты дашборда в области видимости роли
func (s *locationService) GetStats(ctx context.Context, actor *models.User) (*LocationStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "GetStats",
		"actor":   actor.ID,
	})
	log.Info("Fetching location stats")

	cacheKey := statsCacheKey(actor)
	stats, err := s.repo.GetStatsFromCache(ctx, cacheKey)
	if err != nil {
		log.WithError(err).Warn("Failed to read stats cache")
	}
	if stats != nil {
		return stats, nil
	}

	stats, err = s.repo.StatusCounts(ctx, visibilityFilter(actor))
	if err != nil {
		log.WithError(err).Error("Failed to get stats from repository")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	if err := s.repo.SetStatsCache(ctx, cacheKey, stats); err != nil {
		log.WithError(err).Warn("Failed to write stats cache")
	}

	log.WithField("total", stats.Total).Info("Location stats fetched successfully")
	return stats, nil
}

// statsCacheKey - ключ кеша статистики в границах видимости актора.
// У админов и тимлидов область общая для роли, у остальных - персональная.
func statsCacheKey(actor *models.User) string {
	switch actor.Role {
	case models.RoleAdmin:
		return "admin"
	case models.RoleTeamLead:
		return "team_lead"
	default:
		return fmt.Sprintf("%s:%s", actor.Role, actor.ID)
	}
}
