package employee

import (
	"context"
)

// Repository is the only path to the employees table. Implementations must
// be safe for concurrent use.
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, id int32) (Employee, error)
	// Insert ignores p.ID; the store assigns identifiers.
	Insert(ctx context.Context, p Patch) (int32, error)
	// Update writes only the present fields of p. Zero affected rows is not an error.
	Update(ctx context.Context, id int32, p Patch) (int64, error)
	Delete(ctx context.Context, id int32) (int64, error)
}
