package storage

import (
	"context"

	"ecommerce-dashboard/models"
)

// Source is the interface any extract backend must satisfy.
type Source interface {
	Load(ctx context.Context) (*models.Dataset, error)
	Close() error
}

// tableReader fetches one raw extract by name.
type tableReader interface {
	readTable(ctx context.Context, name string) (*Table, error)
}

// ProgressReporter is implemented by sources that report each extract as it
// finishes loading.
type ProgressReporter interface {
	OnProgress(fn ProgressFunc)
}
