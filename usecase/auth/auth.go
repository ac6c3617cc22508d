package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/internal/crypto"
	"github.com/taskhive/backend/repository"
	"github.com/taskhive/backend/usecase"
)

// UseCase orchestrates registration, login and token issuance. It holds no
// mutable state between calls; all state lives in the identity repository.
type UseCase struct {
	identities repository.IdentityRepository
	policy     crypto.Policy
	hasher     crypto.Hasher
	issuer     *crypto.TokenIssuer
	audit      usecase.AuditTrail
	logger     *zap.Logger
}

func New(
	identities repository.IdentityRepository,
	policy crypto.Policy,
	hasher crypto.Hasher,
	issuer *crypto.TokenIssuer,
	audit usecase.AuditTrail,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		identities: identities,
		policy:     policy,
		hasher:     hasher,
		issuer:     issuer,
		audit:      audit,
		logger:     logger,
	}
}

// Register creates a new identity. The persistence write is the last step, so
// an abandoned or failed request leaves nothing behind. A uniqueness
// violation surfaced by the repository during the race window between the
// pre-checks and the insert is reported as the same duplicate failure.
func (uc *UseCase) Register(ctx context.Context, username, email, password string) (domain.PublicIdentity, error) {
	g, gctx := errgroup.WithContext(ctx)

	var emailTaken, usernameTaken bool
	g.Go(func() error {
		var err error
		emailTaken, err = uc.identities.ExistsByEmail(gctx, email)
		return err
	})
	g.Go(func() error {
		var err error
		usernameTaken, err = uc.identities.ExistsByUsername(gctx, username)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.PublicIdentity{}, err
	}

	if emailTaken || usernameTaken {
		uc.recordAuth(ctx, usecase.AuthEvent{Kind: usecase.AuthEventRegisterDenied, Email: email, Reason: "duplicate"})
		return domain.PublicIdentity{}, domain.ErrDuplicateIdentity
	}

	if err := uc.policy.Validate(password); err != nil {
		uc.recordAuth(ctx, usecase.AuthEvent{Kind: usecase.AuthEventRegisterDenied, Email: email, Reason: "policy"})
		return domain.PublicIdentity{}, domain.WrapError(domain.ErrCodeInvalid, "password validation failed", err)
	}

	hash, err := uc.hasher.Generate(password)
	if err != nil {
		return domain.PublicIdentity{}, err
	}

	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := uc.identities.Insert(ctx, identity); err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			uc.recordAuth(ctx, usecase.AuthEvent{Kind: usecase.AuthEventRegisterDenied, Email: email, Reason: "duplicate"})
		}
		return domain.PublicIdentity{}, err
	}

	uc.logger.Info("identity registered", zap.String("identity_id", identity.ID))
	uc.recordAuth(ctx, usecase.AuthEvent{Kind: usecase.AuthEventRegister, SubjectID: identity.ID, Email: email})
	return identity.Public(), nil
}

// Login validates credentials and returns the public projection. An unknown
// email and a wrong password collapse into the same failure so callers cannot
// probe which accounts exist.
func (uc *UseCase) Login(ctx context.Context, email, password string) (domain.PublicIdentity, error) {
	identity, err := uc.identities.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			uc.recordAuth(ctx, usecase.AuthEvent{Kind: usecase.AuthEventLoginDenied, Email: email})
			return domain.PublicIdentity{}, domain.ErrInvalidCredentials
		}
		return domain.PublicIdentity{}, err
	}

	if !uc.hasher.Verify(password, identity.PasswordHash) {
		uc.recordAuth(ctx, usecase.AuthEvent{Kind: usecase.AuthEventLoginDenied, SubjectID: identity.ID, Email: email})
		return domain.PublicIdentity{}, domain.ErrInvalidCredentials
	}

	uc.recordAuth(ctx, usecase.AuthEvent{Kind: usecase.AuthEventLogin, SubjectID: identity.ID, Email: email})
	return identity.Public(), nil
}

// GenerateToken mints a signed token for an authenticated identity.
func (uc *UseCase) GenerateToken(identity domain.PublicIdentity) (string, error) {
	return uc.issuer.Issue(identity.ID, identity.Username, identity.Email)
}

func (uc *UseCase) recordAuth(ctx context.Context, event usecase.AuthEvent) {
	if uc.audit == nil {
		return
	}
	uc.audit.RecordAuth(ctx, event)
}
