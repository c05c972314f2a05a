package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/outage_tracker/internal/authz"
	"github.com/shenikar/outage_tracker/internal/errs"
	"github.com/shenikar/outage_tracker/internal/models"
	"github.com/shenikar/outage_tracker/internal/service"
	"github.com/shenikar/outage_tracker/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestLocationService — вспомогательная функция для создания сервиса с моками.
func newTestLocationService(t *testing.T) (service.LocationService, *mocks.MockLocationRepository, *mocks.MockUserRepository, *mocks.MockUpdateRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockLocationRepository(ctrl)
	userMock := mocks.NewMockUserRepository(ctrl)
	updMock := mocks.NewMockUpdateRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewLocationService(repoMock, userMock, updMock, logger)
	return svc, repoMock, userMock, updMock
}

func testUser(role models.Role) *models.User {
	return &models.User{
		ID:        uuid.New(),
		Email:     string(role) + "@example.com",
		FirstName: "Test",
		LastName:  string(role),
		Role:      role,
		IsActive:  true,
	}
}

func testLocation(reportedBy, assignedTo *models.User) *models.Location {
	return &models.Location{
		ID:            uuid.New(),
		Name:          "Elm Street outage",
		Address:       "42 Elm Street",
		City:          "Springfield",
		State:         "IL",
		ZipCode:       "62701",
		Status:        models.StatusReported,
		Priority:      models.PriorityMedium,
		Description:   "Half the street lost power",
		ReportedBy:    reportedBy,
		AssignedTo:    assignedTo,
		ReporterEmail: "reporter@example.com",
		ReporterPhone: "5551234567",
	}
}

func statusPtr(s models.Status) *models.Status       { return &s }
func priorityPtr(p models.Priority) *models.Priority { return &p }
func stringPtr(s string) *string                     { return &s }

func TestUpdateLocation_ReporterCancelsOwn(t *testing.T) {
	// Подготовка
	svc, repoMock, _, updMock := newTestLocationService(t)
	ctx := context.Background()
	reporter := testUser(models.RoleReporter)
	loc := testLocation(reporter, nil)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, loc.ID).Return(loc, nil).Times(1)
	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	updMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateLocationCache(ctx, loc.ID).Return(nil).Times(1)

	// Действие
	updated, emitted, err := svc.UpdateLocation(ctx, reporter, loc.ID, service.LocationChanges{
		Status: statusPtr(models.StatusCancelled),
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
	require.Len(t, emitted, 1)
	assert.Equal(t, models.UpdateTypeStatusChange, emitted[0].UpdateType)
	assert.Equal(t, models.StatusReported, emitted[0].PreviousStatus)
	assert.Equal(t, models.StatusCancelled, emitted[0].NewStatus)
	assert.Equal(t, reporter, emitted[0].UpdatedBy)
}

func TestUpdateLocation_ReporterMayNotInvestigate(t *testing.T) {
	// Подготовка
	svc, repoMock, _, updMock := newTestLocationService(t)
	ctx := context.Background()
	reporter := testUser(models.RoleReporter)
	loc := testLocation(reporter, nil)

	// Ожидания: запись не должна происходить
	repoMock.EXPECT().GetByID(ctx, loc.ID).Return(loc, nil).Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	updMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, _, err := svc.UpdateLocation(ctx, reporter, loc.ID, service.LocationChanges{
		Status: statusPtr(models.StatusInvestigating),
	})

	// Проверки
	var te *authz.TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "reporters may only cancel", te.Reason)
}

func TestUpdateLocation_UnassignedTeamMemberGetsNotFound(t *testing.T) {
	// Подготовка: исполнитель назначен на другого
	svc, repoMock, _, updMock := newTestLocationService(t)
	ctx := context.Background()
	member := testUser(models.RoleTeamMember)
	loc := testLocation(testUser(models.RoleReporter), testUser(models.RoleTeamMember))

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, loc.ID).Return(loc, nil).Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	updMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, _, err := svc.UpdateLocation(ctx, member, loc.ID, service.LocationChanges{
		Priority: priorityPtr(models.PriorityCritical),
	})

	// Проверки: отказ в доступе неотличим от отсутствия записи
	assert.ErrorIs(t, err, errs.ErrLocationNotFound)
}

func TestUpdateLocation_AdminAssignsAndReprioritizes(t *testing.T) {
	// Подготовка
	svc, repoMock, userMock, updMock := newTestLocationService(t)
	ctx := context.Background()
	admin := testUser(models.RoleAdmin)
	member := testUser(models.RoleTeamMember)
	loc := testLocation(testUser(models.RoleReporter), nil)

	// Ожидания: по одной записи аудита на каждое изменившееся измерение
	repoMock.EXPECT().GetByID(ctx, loc.ID).Return(loc, nil).Times(1)
	userMock.EXPECT().GetByID(ctx, member.ID).Return(member, nil).Times(1)
	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	updMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)
	repoMock.EXPECT().InvalidateLocationCache(ctx, loc.ID).Return(nil).Times(1)

	// Действие
	updated, emitted, err := svc.UpdateLocation(ctx, admin, loc.ID, service.LocationChanges{
		AssignedTo: stringPtr(member.ID.String()),
		Priority:   priorityPtr(models.PriorityHigh),
	})

	// Проверки
	require.NoError(t, err)
	require.Len(t, emitted, 2)
	assert.Equal(t, models.UpdateTypeAssignment, emitted[0].UpdateType)
	assert.Equal(t, models.UpdateTypePriorityChange, emitted[1].UpdateType)
	assert.Equal(t, member.ID, updated.AssignedTo.ID)
	assert.Equal(t, models.PriorityHigh, updated.Priority)
}

func TestUpdateLocation_DisallowedFieldsSilentlyDropped(t *testing.T) {
	// Подготовка: репортер пытается менять приоритет и назначение
	svc, repoMock, _, updMock := newTestLocationService(t)
	ctx := context.Background()
	reporter := testUser(models.RoleReporter)
	member := testUser(models.RoleTeamMember)
	loc := testLocation(reporter, nil)

	// Ожидания: недоступные поля отброшены, остальное применяется без ошибки
	repoMock.EXPECT().GetByID(ctx, loc.ID).Return(loc, nil).Times(1)
	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateLocationCache(ctx, loc.ID).Return(nil).Times(1)
	updMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	updated, emitted, err := svc.UpdateLocation(ctx, reporter, loc.ID, service.LocationChanges{
		ReporterEmail: stringPtr("new@example.com"),
		Priority:      priorityPtr(models.PriorityCritical),
		AssignedTo:    stringPtr(member.ID.String()),
	})

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, emitted)
	assert.Equal(t, "new@example.com", updated.ReporterEmail)
	assert.Equal(t, models.PriorityMedium, updated.Priority)
	assert.Nil(t, updated.AssignedTo)
}

func TestUpdateLocation_SameStatusEmitsNoRecord(t *testing.T) {
	// Подготовка
	svc, repoMock, _, updMock := newTestLocationService(t)
	ctx := context.Background()
	admin := testUser(models.RoleAdmin)
	loc := testLocation(testUser(models.RoleReporter), nil)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, loc.ID).Return(loc, nil).Times(1)
	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateLocationCache(ctx, loc.ID).Return(nil).Times(1)
	updMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие: статус совпадает с текущим - идемпотентный no-op
	_, emitted, err := svc.UpdateLocation(ctx, admin, loc.ID, service.LocationChanges{
		Status: statusPtr(models.StatusReported),
	})

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, emitted)
}

func TestUpdateLocation_LeadMayNotAssignReporter(t *testing.T) {
	// Подготовка
	svc, repoMock, userMock, updMock := newTestLocationService(t)
	ctx := context.Background()
	lead := testUser(models.RoleTeamLead)
	reporter := testUser(models.RoleReporter)
	loc := testLocation(testUser(models.RoleReporter), nil)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, loc.ID).Return(loc, nil).Times(1)
	userMock.EXPECT().GetByID(ctx, reporter.ID).Return(reporter, nil).Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	updMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, _, err := svc.UpdateLocation(ctx, lead, loc.ID, service.LocationChanges{
		AssignedTo: stringPtr(reporter.ID.String()),
	})

	// Проверки: ошибка привязана к полю assigned_to
	var ve authz.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve, "assigned_to")
}

func TestUpdateLocation_InvalidContactCollected(t *testing.T) {
	// Подготовка
	svc, repoMock, _, updMock := newTestLocationService(t)
	ctx := context.Background()
	admin := testUser(models.RoleAdmin)
	loc := testLocation(testUser(models.RoleReporter), nil)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, loc.ID).Return(loc, nil).Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	updMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие: обе контактные ошибки должны вернуться вместе
	_, _, err := svc.UpdateLocation(ctx, admin, loc.ID, service.LocationChanges{
		ReporterEmail: stringPtr("bad-email"),
		ReporterPhone: stringPtr("123"),
	})

	// Проверки
	var ve authz.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve, "reporter_email")
	assert.Contains(t, ve, "reporter_phone")
}

func TestGetLocation_UnauthorizedViewerFoldsIntoNotFound(t *testing.T) {
	// Подготовка: чужой репортер
	svc, repoMock, _, _ := newTestLocationService(t)
	ctx := context.Background()
	stranger := testUser(models.RoleReporter)
	loc := testLocation(testUser(models.RoleReporter), nil)

	// Ожидания: запись найдена в кеше, но права проверяются и там
	repoMock.EXPECT().GetLocationFromCache(ctx, loc.ID).Return(loc, nil).Times(1)

	// Действие
	_, err := svc.GetLocation(ctx, stranger, loc.ID)

	// Проверки
	assert.ErrorIs(t, err, errs.ErrLocationNotFound)
}

func TestGetLocation_CacheMissReadsDB(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestLocationService(t)
	ctx := context.Background()
	admin := testUser(models.RoleAdmin)
	loc := testLocation(testUser(models.RoleReporter), nil)

	// Ожидания
	repoMock.EXPECT().GetLocationFromCache(ctx, loc.ID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, loc.ID).Return(loc, nil).Times(1)
	repoMock.EXPECT().SetLocationCache(ctx, loc).Return(nil).Times(1)

	// Действие
	got, err := svc.GetLocation(ctx, admin, loc.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, loc, got)
}

func TestCreateLocation_OnlyReporters(t *testing.T) {
	// Подготовка
	svc, _, _, _ := newTestLocationService(t)
	ctx := context.Background()

	for _, role := range []models.Role{models.RoleAdmin, models.RoleTeamLead, models.RoleTeamMember} {
		// Действие
		err := svc.CreateLocation(ctx, testUser(role), testLocation(nil, nil))

		// Проверки
		assert.ErrorIs(t, err, errs.ErrForbidden, "role %s", role)
	}
}

func TestCreateLocation_InvalidZipOnly(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestLocationService(t)
	ctx := context.Background()
	reporter := testUser(models.RoleReporter)
	loc := testLocation(nil, nil)
	loc.ZipCode = "1234"

	// Ожидания: ничего не пишется
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.CreateLocation(ctx, reporter, loc)

	// Проверки: ошибка только по zip_code
	var ve authz.ValidationErrors
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve, 1)
	assert.Contains(t, ve, "zip_code")
}

func TestCreateLocation_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestLocationService(t)
	ctx := context.Background()
	reporter := testUser(models.RoleReporter)
	loc := testLocation(nil, nil)
	loc.ReporterPhone = "(555) 123-4567"

	// Ожидания
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := svc.CreateLocation(ctx, reporter, loc)

	// Проверки: статус, репортер и нормализация телефона выставлены сервисом
	require.NoError(t, err)
	assert.Equal(t, models.StatusReported, loc.Status)
	assert.Equal(t, reporter, loc.ReportedBy)
	assert.Nil(t, loc.AssignedTo)
	assert.Equal(t, "5551234567", loc.ReporterPhone)
}

func TestAddNote_RequiresNotes(t *testing.T) {
	// Подготовка
	svc, _, _, _ := newTestLocationService(t)
	ctx := context.Background()

	// Действие
	_, err := svc.AddNote(ctx, testUser(models.RoleAdmin), uuid.New(), "   ")

	// Проверки
	var ve authz.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve, "notes")
}

func TestAddNote_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, _, updMock := newTestLocationService(t)
	ctx := context.Background()
	admin := testUser(models.RoleAdmin)
	loc := testLocation(testUser(models.RoleReporter), nil)

	// Ожидания
	repoMock.EXPECT().GetLocationFromCache(ctx, loc.ID).Return(loc, nil).Times(1)
	updMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	upd, err := svc.AddNote(ctx, admin, loc.ID, "Crew dispatched")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.UpdateTypeGeneral, upd.UpdateType)
	assert.Equal(t, "Crew dispatched", upd.Notes)
}

func TestListLocations_RoleScoping(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestLocationService(t)
	ctx := context.Background()
	member := testUser(models.RoleTeamMember)

	// Ожидания: фильтр ограничен назначениями самого исполнителя
	repoMock.EXPECT().
		List(ctx, service.LocationFilter{AssignedToID: &member.ID}, 1, 20).
		Return([]*models.Location{}, nil).
		Times(1)

	// Действие
	_, err := svc.ListLocations(ctx, member, 0, 0)

	// Проверки
	require.NoError(t, err)
}

func TestGetStats_CacheHit(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _ := newTestLocationService(t)
	ctx := context.Background()
	admin := testUser(models.RoleAdmin)
	cached := &service.LocationStats{Total: 7}

	// Ожидания: при попадании в кеш бд не трогаем
	repoMock.EXPECT().GetStatsFromCache(ctx, "admin").Return(cached, nil).Times(1)
	repoMock.EXPECT().StatusCounts(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	stats, err := svc.GetStats(ctx, admin)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached, stats)
}
