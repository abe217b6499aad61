package repository

import (
	"context"
	"io"
)

// ObjectRepository defines the interface for object storage interactions.
type ObjectRepository interface {
	GetObject(ctx context.Context, profile, bucket, key string) (io.ReadCloser, error)
	GetAccountID(ctx context.Context, profile string) (string, error)
}
