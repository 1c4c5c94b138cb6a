// Package store loads the raw district-month records the analytics engine
// aggregates. Sources are interchangeable behind Loader: a local directory
// of CSV dumps, the same dumps fetched over HTTP, or a Postgres table.
package store

import (
	"context"
	"errors"

	"github.com/natyavidhan/uidai-hackathon/models"
)

// ErrDataUnavailable means the source could not be read at all: missing
// files, unreachable host, broken schema. Individual malformed rows are
// skipped with a warning instead.
var ErrDataUnavailable = errors.New("record source unavailable")

type Loader interface {
	LoadAll(ctx context.Context) ([]models.RawRecord, error)
}
