package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/internal/crypto"
	"github.com/taskhive/backend/repository/memory"
	authUC "github.com/taskhive/backend/usecase/auth"
)

// End-to-end slice over the in-memory stores: register, duplicate register,
// login, token, and cross-owner task access.
func TestRegisterLoginOwnershipScenario(t *testing.T) {
	ctx := context.Background()

	auth := authUC.New(
		memory.NewIdentityRepository(),
		crypto.NewPolicy(),
		crypto.NewHasher(4),
		crypto.NewTokenIssuer(crypto.TokenConfig{
			Secret:   "test-secret",
			Issuer:   "taskhive",
			Audience: "taskhive-api",
			TTL:      15 * time.Minute,
		}),
		nil,
		nil,
	)
	tasks := New(memory.NewTaskRepository(), nil)

	alice, err := auth.Register(ctx, "alice", "a@x.com", "Abc12345!")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "alice2", "a@x.com", "Abc12345!")
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)

	loggedIn, err := auth.Login(ctx, "a@x.com", "Abc12345!")
	require.NoError(t, err)

	token, err := auth.GenerateToken(loggedIn)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	other, err := auth.Register(ctx, "mallory", "m@x.com", "Abc12345!")
	require.NoError(t, err)

	created, err := tasks.Create(ctx, alice.ID, CreateInput{Title: "alice's task"})
	require.NoError(t, err)

	// Another identity sees alice's task as not found, never as forbidden.
	_, err = tasks.Get(ctx, other.ID, created.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	ok, err := tasks.Delete(ctx, other.ID, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := tasks.Get(ctx, alice.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice's task", got.Title)
}
