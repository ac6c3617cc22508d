package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

// UseCase serves the authenticated identity's public projection with a
// read-through cache in front of the identity repository.
type UseCase struct {
	identities repository.IdentityRepository
	cache      repository.IdentityCache
	logger     *zap.Logger
}

func New(identities repository.IdentityRepository, cache repository.IdentityCache, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		identities: identities,
		cache:      cache,
		logger:     logger,
	}
}

// GetProfile returns the public projection for the given identity id. Cache
// failures degrade to a repository read; they never fail the request.
func (uc *UseCase) GetProfile(ctx context.Context, identityID string) (domain.PublicIdentity, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, identityID); err == nil {
			return *cached, nil
		}
	}

	identity, err := uc.identities.GetByID(ctx, identityID)
	if err != nil {
		return domain.PublicIdentity{}, err
	}

	public := identity.Public()
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, public); err != nil {
			uc.logger.Warn("failed to cache identity profile", zap.Error(err))
		}
	}
	return public, nil
}
