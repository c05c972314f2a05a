package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

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
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (service.AuthService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewAuthService(userMock, logger, "test-secret", time.Hour)
	return svc, userMock
}

func TestRegister_DefaultsToReporter(t *testing.T) {
	// Подготовка
	svc, userMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	userMock.EXPECT().GetByEmail(ctx, "new@example.com").Return(nil, errs.ErrUserNotFound).Times(1)
	userMock.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			return nil
		}).
		Times(1)

	// Действие
	user, token, err := svc.Register(ctx, service.RegisterInput{
		Email:     "new@example.com",
		Password:  "password123",
		FirstName: "New",
		LastName:  "User",
	})

	// Проверки: роль по умолчанию - репортер, пароль захеширован, токен выдан
	require.NoError(t, err)
	assert.Equal(t, models.RoleReporter, user.Role)
	assert.NotEmpty(t, token)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestRegister_EmailTaken(t *testing.T) {
	// Подготовка
	svc, userMock := newTestAuthService(t)
	ctx := context.Background()
	existing := testUser(models.RoleReporter)

	// Ожидания
	userMock.EXPECT().GetByEmail(ctx, existing.Email).Return(existing, nil).Times(1)
	userMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, _, err := svc.Register(ctx, service.RegisterInput{
		Email:    existing.Email,
		Password: "password123",
	})

	// Проверки
	assert.ErrorIs(t, err, errs.ErrEmailTaken)
}

func TestRegister_ValidationErrors(t *testing.T) {
	// Подготовка
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	// Действие: пустой email, короткий пароль и неизвестная роль - всё разом
	_, _, err := svc.Register(ctx, service.RegisterInput{
		Password: "short",
		Role:     models.Role("superuser"),
	})

	// Проверки
	var ve authz.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve, "email")
	assert.Contains(t, ve, "password")
	assert.Contains(t, ve, "role")
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	svc, userMock := newTestAuthService(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := testUser(models.RoleTeamLead)
	user.PasswordHash = string(hash)

	// Ожидания
	userMock.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil).Times(1)

	// Действие
	got, token, err := svc.Login(ctx, user.Email, "password123")

	// Проверки: токен разбирается обратно в те же claims
	require.NoError(t, err)
	assert.Equal(t, user, got)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleTeamLead, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Подготовка
	svc, userMock := newTestAuthService(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := testUser(models.RoleReporter)
	user.PasswordHash = string(hash)

	// Ожидания
	userMock.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil).Times(1)

	// Действие
	_, _, err = svc.Login(ctx, user.Email, "wrong-password")

	// Проверки
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	// Подготовка
	svc, userMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	userMock.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Times(1)

	// Действие
	_, _, err := svc.Login(ctx, "ghost@example.com", "password123")

	// Проверки: та же ошибка, что и при неверном пароле
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	// Подготовка
	svc, userMock := newTestAuthService(t)
	ctx := context.Background()
	user := testUser(models.RoleTeamMember)
	user.IsActive = false

	// Ожидания
	userMock.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil).Times(1)

	// Действие
	_, _, err := svc.Login(ctx, user.Email, "password123")

	// Проверки
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestParseToken_BadSignature(t *testing.T) {
	// Подготовка: токен подписан другим секретом
	svc, _ := newTestAuthService(t)

	ctrl := gomock.NewController(t)
	userMock := mocks.NewMockUserRepository(ctrl)
	userMock.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errs.ErrUserNotFound).Times(1)
	userMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	other := service.NewAuthService(userMock, logrus.New(), "other-secret", time.Hour)

	_, token, err := other.Register(context.Background(), service.RegisterInput{
		Email:    "foreign@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// Действие
	_, err = svc.ParseToken(token)

	// Проверки
	assert.Error(t, err)
}

func TestListUsers_RoleScoping(t *testing.T) {
	tests := []struct {
		name  string
		actor *models.User
		setup func(m *mocks.MockUserRepository, actor *models.User)
	}{
		{
			name:  "admin sees everyone",
			actor: testUser(models.RoleAdmin),
			setup: func(m *mocks.MockUserRepository, _ *models.User) {
				m.EXPECT().List(gomock.Any(), nil).Return([]*models.User{}, nil).Times(1)
			},
		},
		{
			name:  "team lead sees members and reporters",
			actor: testUser(models.RoleTeamLead),
			setup: func(m *mocks.MockUserRepository, _ *models.User) {
				m.EXPECT().
					List(gomock.Any(), []models.Role{models.RoleTeamMember, models.RoleReporter}).
					Return([]*models.User{}, nil).
					Times(1)
			},
		},
		{
			name:  "reporter sees only self",
			actor: testUser(models.RoleReporter),
			setup: func(m *mocks.MockUserRepository, actor *models.User) {
				m.EXPECT().GetByID(gomock.Any(), actor.ID).Return(actor, nil).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Подготовка
			svc, userMock := newTestAuthService(t)
			tt.setup(userMock, tt.actor)

			// Действие
			_, err := svc.ListUsers(context.Background(), tt.actor)

			// Проверки
			require.NoError(t, err)
		})
	}
}
