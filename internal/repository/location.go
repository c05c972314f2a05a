package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/outage_tracker/internal/errs"
	"github.com/shenikar/outage_tracker/internal/models"
	"github.com/shenikar/outage_tracker/internal/service"
)

type LocationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewLocationRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.LocationRepository {
	return &LocationRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// locationColumns - общий список колонок с LEFT JOIN на исполнителя и репортера
const locationColumns = `
	l.id, l.name, l.address, l.city, l.state, l.zip_code,
	l.latitude, l.longitude, l.status, l.priority, l.description,
	l.estimated_customers_affected, l.reporter_email, l.reporter_phone,
	l.created_at, l.updated_at, l.reported_at,
	l.estimated_restoration, l.actual_restoration,
	a.id, a.email, a.first_name, a.last_name, a.role, a.phone_number, a.is_active,
	r.id, r.email, r.first_name, r.last_name, r.role, r.phone_number, r.is_active
`

const locationJoins = `
	FROM locations l
	LEFT JOIN users a ON a.id = l.assigned_to
	LEFT JOIN users r ON r.id = l.reported_by
`

// scanLocation разбирает строку с joined-колонками пользователей в модель
func scanLocation(row pgx.Row) (*models.Location, error) {
	loc := &models.Location{}
	var (
		aID, rID                             *uuid.UUID
		aEmail, aFirst, aLast, aRole, aPhone *string
		rEmail, rFirst, rLast, rRole, rPhone *string
		aActive, rActive                     *bool
	)

	err := row.Scan(
		&loc.ID, &loc.Name, &loc.Address, &loc.City, &loc.State, &loc.ZipCode,
		&loc.Latitude, &loc.Longitude, &loc.Status, &loc.Priority, &loc.Description,
		&loc.EstimatedCustomersAffected, &loc.ReporterEmail, &loc.ReporterPhone,
		&loc.CreatedAt, &loc.UpdatedAt, &loc.ReportedAt,
		&loc.EstimatedRestoration, &loc.ActualRestoration,
		&aID, &aEmail, &aFirst, &aLast, &aRole, &aPhone, &aActive,
		&rID, &rEmail, &rFirst, &rLast, &rRole, &rPhone, &rActive,
	)
	if err != nil {
		return nil, err
	}

	if aID != nil {
		loc.AssignedTo = &models.User{
			ID: *aID, Email: *aEmail, FirstName: *aFirst, LastName: *aLast,
			Role: models.Role(*aRole), PhoneNumber: *aPhone, IsActive: *aActive,
		}
	}
	if rID != nil {
		loc.ReportedBy = &models.User{
			ID: *rID, Email: *rEmail, FirstName: *rFirst, LastName: *rLast,
			Role: models.Role(*rRole), PhoneNumber: *rPhone, IsActive: *rActive,
		}
	}
	return loc, nil
}

// Create создает новую запись об отключении в бд
func (rp *LocationRepository) Create(ctx context.Context, loc *models.Location) error {
	query := `
		INSERT INTO locations (
			name, address, city, state, zip_code, latitude, longitude,
			status, priority, description, estimated_customers_affected,
			assigned_to, reported_by, reporter_email, reporter_phone
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at, reported_at;
	`
	var assignedID, reportedID *uuid.UUID
	if loc.AssignedTo != nil {
		assignedID = &loc.AssignedTo.ID
	}
	if loc.ReportedBy != nil {
		reportedID = &loc.ReportedBy.ID
	}

	err := rp.db.QueryRow(ctx, query,
		loc.Name,
		loc.Address,
		loc.City,
		loc.State,
		loc.ZipCode,
		loc.Latitude,
		loc.Longitude,
		loc.Status,
		loc.Priority,
		loc.Description,
		loc.EstimatedCustomersAffected,
		assignedID,
		reportedID,
		loc.ReporterEmail,
		loc.ReporterPhone,
	).Scan(&loc.ID, &loc.CreatedAt, &loc.UpdatedAt, &loc.ReportedAt)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

// GetByID возвращает отключение по его UUID
func (rp *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	query := `SELECT ` + locationColumns + locationJoins + ` WHERE l.id = $1;`

	loc, err := scanLocation(rp.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location by id: %w", err)
	}
	return loc, nil
}

// Update сохраняет изменяемые поля отключения
func (rp *LocationRepository) Update(ctx context.Context, loc *models.Location) error {
	query := `
		UPDATE locations SET
			status = $1,
			priority = $2,
			assigned_to = $3,
			reporter_email = $4,
			reporter_phone = $5,
			estimated_restoration = $6,
			actual_restoration = $7,
			updated_at = NOW()
		WHERE id = $8;
	`
	var assignedID *uuid.UUID
	if loc.AssignedTo != nil {
		assignedID = &loc.AssignedTo.ID
	}

	cmdTag, err := rp.db.Exec(ctx, query,
		loc.Status,
		loc.Priority,
		assignedID,
		loc.ReporterEmail,
		loc.ReporterPhone,
		loc.EstimatedRestoration,
		loc.ActualRestoration,
		loc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return errs.ErrLocationNotFound
	}
	return nil
}

// List возвращает отключения с учетом фильтра видимости роли и пагинации
func (rp *LocationRepository) List(ctx context.Context, filter service.LocationFilter, page, pageSize int) ([]*models.Location, error) {
	offset := (page - 1) * pageSize

	where, args := filterClause(filter)
	args = append(args, pageSize, offset)

	query := fmt.Sprintf(`SELECT %s %s %s ORDER BY l.created_at DESC LIMIT $%d OFFSET $%d;`,
		locationColumns, locationJoins, where, len(args)-1, len(args))

	rows, err := rp.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.Location, 0)
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return locations, nil
}

// StatusCounts возвращает агрегаты по статусам и приоритетам для дашборда
func (rp *LocationRepository) StatusCounts(ctx context.Context, filter service.LocationFilter) (*service.LocationStats, error) {
	where, args := filterClause(filter)

	query := fmt.Sprintf(`SELECT l.status, l.priority, COUNT(*) %s %s GROUP BY l.status, l.priority;`,
		locationJoins, where)

	rows, err := rp.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}
	defer rows.Close()

	stats := &service.LocationStats{
		ByStatus:   make(map[models.Status]int),
		ByPriority: make(map[models.Priority]int),
	}
	for rows.Next() {
		var (
			status   models.Status
			priority models.Priority
			count    int
		)
		if err := rows.Scan(&status, &priority, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats.Total += count
		stats.ByStatus[status] += count
		stats.ByPriority[priority] += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error stats iteration: %w", err)
	}
	return stats, nil
}

// filterClause собирает WHERE по фильтру видимости роли
func filterClause(filter service.LocationFilter) (string, []any) {
	switch {
	case filter.AssignedToID != nil:
		return "WHERE l.assigned_to = $1", []any{*filter.AssignedToID}
	case filter.ReportedByID != nil:
		return "WHERE l.reported_by = $1", []any{*filter.ReportedByID}
	case len(filter.AssignedRoleIn) > 0:
		roles := make([]string, 0, len(filter.AssignedRoleIn))
		for _, r := range filter.AssignedRoleIn {
			roles = append(roles, string(r))
		}
		return "WHERE a.role = ANY($1)", []any{roles}
	default:
		return "", nil
	}
}

// GetLocationFromCache пытается получить отключение из Redis
func (rp *LocationRepository) GetLocationFromCache(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	key := fmt.Sprintf("location:%s", id.String())
	val, err := rp.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get location from cache: %w", err)
	}

	loc := &models.Location{}
	if err := json.Unmarshal(val, loc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal location from cache: %w", err)
	}
	return loc, nil
}

// SetLocationCache сохраняет отключение в Redis
func (rp *LocationRepository) SetLocationCache(ctx context.Context, loc *models.Location) error {
	key := fmt.Sprintf("location:%s", loc.ID.String())
	val, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal location for cache: %w", err)
	}
	if err := rp.redisClient.Set(ctx, key, val, rp.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set location in cache: %w", err)
	}
	return nil
}

// InvalidateLocationCache удаляет отключение из Redis кэша
func (rp *LocationRepository) InvalidateLocationCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("location:%s", id.String())
	if err := rp.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate location cache: %w", err)
	}
	return nil
}

// GetStatsFromCache пытается получить агрегаты дашборда из Redis.
// Ключ включает область видимости роли, чтобы не отдавать чужие данные.
func (rp *LocationRepository) GetStatsFromCache(ctx context.Context, key string) (*service.LocationStats, error) {
	val, err := rp.redisClient.Get(ctx, "location_stats:"+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stats from cache: %w", err)
	}

	stats := &service.LocationStats{}
	if err := json.Unmarshal(val, stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats from cache: %w", err)
	}
	return stats, nil
}

// SetStatsCache сохраняет агрегаты дашборда в Redis
func (rp *LocationRepository) SetStatsCache(ctx context.Context, key string, stats *service.LocationStats) error {
	val, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats for cache: %w", err)
	}
	if err := rp.redisClient.Set(ctx, "location_stats:"+key, val, rp.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set stats in cache: %w", err)
	}
	return nil
}
