package repository

import (
	"context"
	"fmt"

	"github.com/citysafe/emergency_location_system/internal/models"
	"github.com/citysafe/emergency_location_system/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HydrantRepository struct {
	db *pgxpool.Pool
}

func NewHydrantRepository(db *pgxpool.Pool) service.HydrantRepository {
	return &HydrantRepository{db: db}
}

// ListHydrants возвращает список гидрантов с пагинацией
func (r *HydrantRepository) ListHydrants(ctx context.Context, page, pageSize int) ([]*models.Hydrant, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			status,
			created_at
		FROM hydrants
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list hydrants: %w", err)
	}
	defer rows.Close()

	hydrants := make([]*models.Hydrant, 0)
	for rows.Next() {
		hydrant := &models.Hydrant{}
		err := rows.Scan(
			&hydrant.ID,
			&hydrant.Name,
			&hydrant.Latitude,
			&hydrant.Longitude,
			&hydrant.Status,
			&hydrant.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hydrant row: %w", err)
		}
		hydrants = append(hydrants, hydrant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return hydrants, nil
}

// FindNearby находит исправные гидранты, попадающие в радиус от точки
func (r *HydrantRepository) FindNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]*models.Hydrant, error) {
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			status,
			created_at
		FROM hydrants
		WHERE
			status = 'operational'
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
		ORDER BY location <-> ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography;
	`
	rows, err := r.db.Query(ctx, query, lng, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find hydrants by location: %w", err)
	}
	defer rows.Close()

	hydrants := make([]*models.Hydrant, 0)
	for rows.Next() {
		hydrant := &models.Hydrant{}
		err := rows.Scan(
			&hydrant.ID,
			&hydrant.Name,
			&hydrant.Latitude,
			&hydrant.Longitude,
			&hydrant.Status,
			&hydrant.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hydrant row in FindNearby: %w", err)
		}
		hydrants = append(hydrants, hydrant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in FindNearby: %w", err)
	}
	return hydrants, nil
}
