package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/outage_tracker/internal/models"
	"github.com/shenikar/outage_tracker/internal/service"
)

// UpdateRepository пишет и читает записи аудита. Таблица append-only:
// UPDATE и DELETE по ней не выполняются.
type UpdateRepository struct {
	db *pgxpool.Pool
}

func NewUpdateRepository(db *pgxpool.Pool) service.UpdateRepository {
	return &UpdateRepository{db: db}
}

// Create добавляет запись аудита
func (r *UpdateRepository) Create(ctx context.Context, upd *models.LocationUpdate) error {
	query := `
		INSERT INTO location_updates (location_id, updated_by, update_type, previous_status, new_status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`
	var updatedByID *uuid.UUID
	if upd.UpdatedBy != nil {
		updatedByID = &upd.UpdatedBy.ID
	}

	err := r.db.QueryRow(ctx, query,
		upd.LocationID,
		updatedByID,
		upd.UpdateType,
		upd.PreviousStatus,
		upd.NewStatus,
		upd.Notes,
	).Scan(&upd.ID, &upd.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create location update: %w", err)
	}
	return nil
}

// ListByLocation возвращает записи аудита отключения, новые первыми
func (r *UpdateRepository) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*models.LocationUpdate, error) {
	query := `
		SELECT
			u.id, u.location_id, u.update_type, u.previous_status, u.new_status,
			u.notes, u.created_at,
			b.id, b.email, b.first_name, b.last_name, b.role, b.phone_number, b.is_active
		FROM location_updates u
		LEFT JOIN users b ON b.id = u.updated_by
		WHERE u.location_id = $1
		ORDER BY u.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list location updates: %w", err)
	}
	defer rows.Close()

	updates := make([]*models.LocationUpdate, 0)
	for rows.Next() {
		upd := &models.LocationUpdate{}
		var (
			bID                                  *uuid.UUID
			bEmail, bFirst, bLast, bRole, bPhone *string
			bActive                              *bool
		)
		err := rows.Scan(
			&upd.ID, &upd.LocationID, &upd.UpdateType, &upd.PreviousStatus, &upd.NewStatus,
			&upd.Notes, &upd.CreatedAt,
			&bID, &bEmail, &bFirst, &bLast, &bRole, &bPhone, &bActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location update row: %w", err)
		}
		if bID != nil {
			upd.UpdatedBy = &models.User{
				ID: *bID, Email: *bEmail, FirstName: *bFirst, LastName: *bLast,
				Role: models.Role(*bRole), PhoneNumber: *bPhone, IsActive: *bActive,
			}
		}
		updates = append(updates, upd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error update list iteration: %w", err)
	}
	return updates, nil
}
