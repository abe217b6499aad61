package repository

import (
	"context"

	"github.com/diillson/voyage-revenue-go/internal/domain/entity"
	"github.com/diillson/voyage-revenue-go/internal/shared/types"
)

// TripRepository defines the interface for loading trip datasets.
type TripRepository interface {
	// LoadTrips lê todas as viagens de src.Location: caminho local ou s3://bucket/key.
	LoadTrips(ctx context.Context, src types.TripSource) ([]entity.TripRecord, error)
}
