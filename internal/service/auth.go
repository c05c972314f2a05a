package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/outage_tracker/internal/authz"
	"github.com/shenikar/outage_tracker/internal/errs"
	"github.com/shenikar/outage_tracker/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mocks/mock_auth.go -package=mocks

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, roles []models.Role) ([]*models.User, error)
}

// RegisterInput - данные регистрации нового пользователя
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Role        models.Role
	PhoneNumber string
}

// Claims - полезная нагрузка JWT
type Claims struct {
	UserID uuid.UUID   `json:"uid"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthService определяет контракт аутентификации и справочника пользователей
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ParseToken(tokenStr string) (*Claims, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context, actor *models.User) ([]*models.User, error)
}

type authService struct {
	users    UserRepository
	logger   *logrus.Logger
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users UserRepository, logger *logrus.Logger, secret string, tokenTTL time.Duration) AuthService {
	return &authService{
		users:    users,
		logger:   logger,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Register создает пользователя и сразу выдает токен.
// Без явной роли регистрируется репортер.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   input.Email,
	})
	log.Info("Registering new user")

	ve := authz.ValidationErrors{}
	if input.Email == "" {
		ve["email"] = "Email address is required"
	}
	if len(input.Password) < 8 {
		ve["password"] = "Password must be at least 8 characters"
	}
	if input.Role == "" {
		input.Role = models.RoleReporter
	}
	if !input.Role.Valid() {
		ve["role"] = "Invalid role"
	}
	if len(ve) > 0 {
		log.WithField("fields", ve).Warn("Registration failed validation")
		return nil, "", ve
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		log.Warn("Email already registered")
		return nil, "", errs.ErrEmailTaken
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		log.WithError(err).Error("Failed to check email uniqueness")
		return nil, "", fmt.Errorf("service: could not check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return nil, "", fmt.Errorf("service: could not create user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, token, nil
}

// Login проверяет учетные данные и выдает токен
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})
	log.Info("Authenticating user")

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, "", errs.ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to get user from repository")
		return nil, "", fmt.Errorf("service: could not get user: %w", err)
	}

	if !user.IsActive {
		log.Warn("Inactive user attempted login")
		return nil, "", errs.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Invalid password")
		return nil, "", errs.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User authenticated successfully")
	return user, token, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// ParseToken проверяет подпись и срок действия токена
func (s *authService) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// GetUser возвращает пользователя по ID
func (s *authService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// ListUsers возвращает справочник пользователей в области видимости роли:
// админ видит всех, тимлид - исполнителей и репортеров, остальные - себя
func (s *authService) ListUsers(ctx context.Context, actor *models.User) ([]*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "ListUsers",
		"actor":   actor.ID,
	})
	log.Info("Listing users")

	switch actor.Role {
	case models.RoleAdmin:
		return s.users.List(ctx, nil)
	case models.RoleTeamLead:
		return s.users.List(ctx, []models.Role{models.RoleTeamMember, models.RoleReporter})
	default:
		self, err := s.GetUser(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		return []*models.User{self}, nil
	}
}
