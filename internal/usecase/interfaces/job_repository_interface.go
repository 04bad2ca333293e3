package interfaces

import (
	"context"
	"errors"

	"mechbid/internal/domain/entities"
)

// ErrVersionConflict is returned by Save when the stored aggregate version no
// longer matches the loaded one. The usecase layer maps it to the
// concurrent-modification result after its retry.
var ErrVersionConflict = errors.New("job version conflict")

// IJobRepository abstracts persistence for the Job aggregate.
//
// Contract:
//   - Create fails if a job with the same id already exists.
//   - GetByID returns a zero-value Job (ID == "") when nothing is stored.
//   - Save writes the whole aggregate (embedded bids, change orders, escrow)
//     atomically, guarded by the optimistic version; partial writes never
//     happen.

type IJobRepository interface {
	Create(ctx context.Context, job entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Save(ctx context.Context, job entities.Job) (entities.Job, error)
}
