package main

import (
	"context"

	"github.com/Kawakarlyndo/Campomagnetico/internal/field"
	"github.com/Kawakarlyndo/Campomagnetico/internal/observability"
)

// initMetrics initialises all metric providers and application-specific
// metric instruments. Add new domain InitMetrics calls here as the project grows.
func initMetrics(ctx context.Context) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx)
	if err != nil {
		return nil, err
	}

	if err := field.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
