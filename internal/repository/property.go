package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/citysafe/emergency_location_system/internal/models"
	"github.com/citysafe/emergency_location_system/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Время жизни кеша карточки объекта
const propertyCacheTTL = 5 * time.Minute

type PropertyRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewPropertyRepository(db *pgxpool.Pool, redisClient *redis.Client) service.PropertyRepository {
	return &PropertyRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись об объекте недвижимости в бд
func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	query := `
		INSERT INTO properties (owner_name, owner_phone, address, construction_type, floors, has_gas_supply, floor_plan_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		property.OwnerName,
		property.OwnerPhone,
		property.Address,
		property.ConstructionType,
		property.Floors,
		property.HasGasSupply,
		property.FloorPlanURL,
		property.Status,
	).Scan(&property.ID, &property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// GetByID возвращает объект по его UUID
func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	property := &models.Property{}
	query := `
		SELECT id, owner_name, owner_phone, address, construction_type, floors, has_gas_supply, floor_plan_url, status, created_at, updated_at
		FROM properties
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&property.ID,
		&property.OwnerName,
		&property.OwnerPhone,
		&property.Address,
		&property.ConstructionType,
		&property.Floors,
		&property.HasGasSupply,
		&property.FloorPlanURL,
		&property.Status,
		&property.CreatedAt,
		&property.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property by id: %w", err)
	}
	return property, nil
}

// Update обновляет существующий объект
func (r *PropertyRepository) Update(ctx context.Context, property *models.Property) error {
	query := `
		UPDATE properties SET
			owner_name = $1,
			owner_phone = $2,
			address = $3,
			construction_type = $4,
			floors = $5,
			has_gas_supply = $6,
			floor_plan_url = $7,
			status = $8,
			updated_at = NOW()
		WHERE id = $9;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		property.OwnerName,
		property.OwnerPhone,
		property.Address,
		property.ConstructionType,
		property.Floors,
		property.HasGasSupply,
		property.FloorPlanURL,
		property.Status,
		property.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("property with id %s not found for update", property.ID)
	}
	return nil
}

// Archive (мягкое удаление) устанавливает статус 'archived' для объекта
func (r *PropertyRepository) Archive(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE properties SET
			status = 'archived',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to archive property: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("property with id %s not found for archive", id)
	}
	return nil
}

// ListProperties возвращает список объектов с пагинацией
func (r *PropertyRepository) ListProperties(ctx context.Context, page, pageSize int) ([]*models.Property, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT id, owner_name, owner_phone, address, construction_type, floors, has_gas_supply, floor_plan_url, status, created_at, updated_at
		FROM properties
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	properties := make([]*models.Property, 0)
	for rows.Next() {
		property := &models.Property{}
		err := rows.Scan(
			&property.ID,
			&property.OwnerName,
			&property.OwnerPhone,
			&property.Address,
			&property.ConstructionType,
			&property.Floors,
			&property.HasGasSupply,
			&property.FloorPlanURL,
			&property.Status,
			&property.CreatedAt,
			&property.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return properties, nil
}

// GetPropertyFromCache пытается получить объект из Redis
func (r *PropertyRepository) GetPropertyFromCache(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	key := fmt.Sprintf("property:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property from cache: %w", err)
	}

	property := &models.Property{}
	if err := json.Unmarshal(val, property); err != nil {
		return nil, fmt.Errorf("failed to unmarshal property from cache: %w", err)
	}
	return property, nil
}

// SetPropertyCache сохраняет объект в Redis
func (r *PropertyRepository) SetPropertyCache(ctx context.Context, property *models.Property) error {
	key := fmt.Sprintf("property:%s", property.ID.String())
	val, err := json.Marshal(property)
	if err != nil {
		return fmt.Errorf("failed to marshal property for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, propertyCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set property in cache: %w", err)
	}
	return nil
}

// InvalidatePropertyCache удаляет объект из Redis кэша
func (r *PropertyRepository) InvalidatePropertyCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("property:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate property cache: %w", err)
	}
	return nil
}
