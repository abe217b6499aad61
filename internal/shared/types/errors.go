package types

import "errors"

var (
	ErrInvalidWindow         = errors.New("invalid reporting window")
	ErrUnknownVariancePolicy = errors.New("unknown variance policy")
	ErrMissingColumn         = errors.New("required column not found in CSV header")
	ErrEmptyDataset          = errors.New("dataset has no rows")
	ErrInvalidSource         = errors.New("invalid dataset source")
)
