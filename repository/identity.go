package repository

import (
	"context"

	"github.com/taskhive/backend/domain"
)

// IdentityRepository is the persistence port for accounts. Insert must fail
// with domain.ErrDuplicateIdentity when the unique email or username
// constraint is violated, since the pre-check-then-write sequence is not
// atomic under concurrent registration.
type IdentityRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Insert(ctx context.Context, identity *domain.Identity) error
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
	GetByID(ctx context.Context, id string) (*domain.Identity, error)
}

// IdentityCache is a read-through cache of public identity projections.
type IdentityCache interface {
	Get(ctx context.Context, id string) (*domain.PublicIdentity, error)
	Set(ctx context.Context, identity domain.PublicIdentity) error
	Invalidate(ctx context.Context, id string) error
}
