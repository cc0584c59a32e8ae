package weather

import "context"

// Source abstracts where daily records come from (a CSV file, in-memory rows).
type Source interface {
	Name() string
	Load(ctx context.Context) (Dataset, error)
}
