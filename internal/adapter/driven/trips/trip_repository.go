package trips

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/diillson/voyage-revenue-go/internal/domain/entity"
	"github.com/diillson/voyage-revenue-go/internal/domain/repository"
	"github.com/diillson/voyage-revenue-go/internal/shared/types"
)

const s3Scheme = "s3://"

// TripRepositoryImpl implementa o TripRepository lendo CSV de arquivos locais ou do S3.
type TripRepositoryImpl struct {
	objects  repository.ObjectRepository
	openFile func(name string) (io.ReadCloser, error)
}

// NewTripRepository cria uma nova implementação do TripRepository.
// objects pode ser nil quando apenas fontes locais são usadas.
func NewTripRepository(objects repository.ObjectRepository) repository.TripRepository {
	return &TripRepositoryImpl{
		objects: objects,
		openFile: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
}

func (r *TripRepositoryImpl) LoadTrips(ctx context.Context, src types.TripSource) ([]entity.TripRecord, error) {
	body, err := r.open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	records, err := ReadTrips(body, src.Location, src.Columns)
	if err != nil {
		return nil, fmt.Errorf("error loading %s dataset: %w", src.Name, err)
	}
	return records, nil
}

func (r *TripRepositoryImpl) open(ctx context.Context, src types.TripSource) (io.ReadCloser, error) {
	bucket, key, isS3, err := ParseLocation(src.Location)
	if err != nil {
		return nil, err
	}

	if !isS3 {
		f, err := r.openFile(src.Location)
		if err != nil {
			return nil, fmt.Errorf("error opening %s dataset: %w", src.Name, err)
		}
		return f, nil
	}

	if r.objects == nil {
		return nil, fmt.Errorf("%w: %s requires S3 access", types.ErrInvalidSource, src.Location)
	}
	return r.objects.GetObject(ctx, src.Profile, bucket, key)
}

// ParseLocation separa bucket e key de uma localização s3://bucket/key.
// Para caminhos locais isS3 é false.
func ParseLocation(location string) (bucket, key string, isS3 bool, err error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", "", false, fmt.Errorf("%w: empty location", types.ErrInvalidSource)
	}
	if !strings.HasPrefix(strings.ToLower(location), s3Scheme) {
		return "", "", false, nil
	}

	rest := location[len(s3Scheme):]
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", true, fmt.Errorf("%w: %q (expected s3://bucket/key)", types.ErrInvalidSource, location)
	}
	return bucket, key, true, nil
}
