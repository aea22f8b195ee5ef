package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

// fakeAuth scripts the backend's auth surface for store tests.
type fakeAuth struct {
	mu         sync.Mutex
	meIdentity *sdk.Identity
	meErr      error
	meCalls    int

	loginIdentity *sdk.Identity
	loginErr      error

	logoutErr   error
	logoutCalls int
}

func (f *fakeAuth) Me(ctx context.Context) (*sdk.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.meCalls++
	return f.meIdentity, f.meErr
}

func (f *fakeAuth) Login(ctx context.Context, input sdk.LoginInput) (*sdk.Identity, error) {
	return f.loginIdentity, f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, input sdk.RegisterInput) (*sdk.Identity, error) {
	return f.loginIdentity, f.loginErr
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	return f.logoutErr
}

func testCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)
	return cache
}

func TestStoreStartsResolving(t *testing.T) {
	store := NewStore(&fakeAuth{}, testCache(t), zerolog.Nop())
	state := store.Snapshot()
	assert.True(t, state.Resolving)
	assert.Nil(t, state.Identity)
}

func TestStoreLoadsCachedHint(t *testing.T) {
	cache := testCache(t)
	cached := &sdk.Identity{ID: "u1", Name: "Cached", Email: "c@example.com", Role: sdk.RolePatient}
	require.NoError(t, cache.Save(cached))

	store := NewStore(&fakeAuth{}, cache, zerolog.Nop())
	state := store.Snapshot()
	// The hint paints immediately but the session still counts as resolving.
	require.NotNil(t, state.Identity)
	assert.Equal(t, "Cached", state.Identity.Name)
	assert.True(t, state.Resolving)
}

func TestResolveConfirmsIdentity(t *testing.T) {
	cache := testCache(t)
	identity := &sdk.Identity{ID: "u1", Name: "Alice", Email: "a@example.com", Role: sdk.RoleDoctor}
	store := NewStore(&fakeAuth{meIdentity: identity}, cache, zerolog.Nop())

	state := store.Resolve(context.Background())
	assert.False(t, state.Resolving)
	require.NotNil(t, state.Identity)
	assert.Equal(t, sdk.RoleDoctor, state.Identity.Role)

	// The confirmed identity is persisted for the next boot.
	persisted, err := cache.Load()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "Alice", persisted.Name)
}

func TestResolveFailureClearsStaleHint(t *testing.T) {
	cache := testCache(t)
	require.NoError(t, cache.Save(&sdk.Identity{ID: "u1", Name: "Stale", Role: sdk.RolePatient}))

	api := &fakeAuth{meErr: errors.New("401 unauthorized")}
	store := NewStore(api, cache, zerolog.Nop())

	state := store.Resolve(context.Background())
	assert.False(t, state.Resolving)
	assert.Nil(t, state.Identity)

	persisted, err := cache.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestResolveIsIdempotent(t *testing.T) {
	api := &fakeAuth{meIdentity: &sdk.Identity{ID: "u1", Name: "Alice", Role: sdk.RoleAdmin}}
	store := NewStore(api, testCache(t), zerolog.Nop())

	first := store.Resolve(context.Background())
	second := store.Resolve(context.Background())
	assert.Equal(t, first.Identity, second.Identity)
	assert.False(t, second.Resolving)
}

func TestLoginReplacesIdentity(t *testing.T) {
	cache := testCache(t)
	identity := &sdk.Identity{ID: "u2", Name: "Bob", Email: "b@example.com", Role: sdk.RolePatient}
	store := NewStore(&fakeAuth{loginIdentity: identity}, cache, zerolog.Nop())

	got, err := store.Login(context.Background(), sdk.LoginInput{Email: "b@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Name)

	state := store.Snapshot()
	require.NotNil(t, state.Identity)
	assert.Equal(t, "u2", state.Identity.ID)

	persisted, err := cache.Load()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "Bob", persisted.Name)
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	api := &fakeAuth{
		meIdentity: &sdk.Identity{ID: "u1", Name: "Alice", Role: sdk.RolePatient},
		loginErr:   &sdk.APIError{Status: 401, Message: "Invalid credentials"},
	}
	store := NewStore(api, testCache(t), zerolog.Nop())
	store.Resolve(context.Background())

	_, err := store.Login(context.Background(), sdk.LoginInput{Email: "a@example.com", Password: "wrongpass"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", sdk.ErrorMessage(err, "fallback"))

	// The previous session survives a failed login attempt.
	state := store.Snapshot()
	require.NotNil(t, state.Identity)
	assert.Equal(t, "Alice", state.Identity.Name)
}

func TestLogoutClearsSessionEvenWhenBackendFails(t *testing.T) {
	cache := testCache(t)
	api := &fakeAuth{
		meIdentity: &sdk.Identity{ID: "u1", Name: "Alice", Role: sdk.RolePatient},
		logoutErr:  errors.New("network down"),
	}
	store := NewStore(api, cache, zerolog.Nop())
	store.Resolve(context.Background())

	store.Logout(context.Background())

	state := store.Snapshot()
	assert.Nil(t, state.Identity)
	assert.Equal(t, 1, api.logoutCalls)

	persisted, err := cache.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestClearIdentityDropsSessionWithoutBackendCall(t *testing.T) {
	api := &fakeAuth{meIdentity: &sdk.Identity{ID: "u1", Name: "Alice", Role: sdk.RolePatient}}
	store := NewStore(api, testCache(t), zerolog.Nop())
	store.Resolve(context.Background())

	store.ClearIdentity()

	state := store.Snapshot()
	assert.Nil(t, state.Identity)
	assert.Equal(t, 0, api.logoutCalls)
}
