package memory

import (
	"context"
	"sync"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

// IdentityRepository is an in-memory implementation of the identity port,
// substitutable for the Postgres one in tests. It enforces the same email and
// username uniqueness the database constraint provides.
type IdentityRepository struct {
	mu         sync.RWMutex
	byID       map[string]domain.Identity
	byEmail    map[string]string
	byUsername map[string]string
}

var _ repository.IdentityRepository = (*IdentityRepository)(nil)

func NewIdentityRepository() *IdentityRepository {
	return &IdentityRepository{
		byID:       make(map[string]domain.Identity),
		byEmail:    make(map[string]string),
		byUsername: make(map[string]string),
	}
}

func (r *IdentityRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *IdentityRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byUsername[username]
	return ok, nil
}

func (r *IdentityRepository) Insert(_ context.Context, identity *domain.Identity) error {
	if identity == nil {
		return domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[identity.Email]; ok {
		return domain.ErrDuplicateIdentity
	}
	if _, ok := r.byUsername[identity.Username]; ok {
		return domain.ErrDuplicateIdentity
	}

	identity.Touch()
	r.byID[identity.ID] = *identity
	r.byEmail[identity.Email] = identity.ID
	r.byUsername[identity.Username] = identity.ID
	return nil
}

func (r *IdentityRepository) GetByEmail(_ context.Context, email string) (*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	identity := r.byID[id]
	return &identity, nil
}

func (r *IdentityRepository) GetByID(_ context.Context, id string) (*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return &identity, nil
}
