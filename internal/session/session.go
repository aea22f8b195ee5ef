// Package session owns the client-side authentication state: the current
// identity (or none), the boot-time resolving flag, the persisted identity
// hint, and the route guard that gates screens on it.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

// AuthAPI is the slice of the backend the session store needs. *sdk.Client
// satisfies it.
type AuthAPI interface {
	Me(ctx context.Context) (*sdk.Identity, error)
	Login(ctx context.Context, input sdk.LoginInput) (*sdk.Identity, error)
	Register(ctx context.Context, input sdk.RegisterInput) (*sdk.Identity, error)
	Logout(ctx context.Context) error
}

// State is a read-only snapshot of the session: the identity (absent when
// nil) and whether the boot-time identity check is still in flight.
type State struct {
	Identity  *sdk.Identity
	Resolving bool
}

// Store is the single owner of the session. Screens and the route guard read
// snapshots; every mutation goes through Resolve, Login, Register, or Logout.
// The store is also the only writer of the persisted identity cache.
type Store struct {
	api   AuthAPI
	cache *Cache
	log   zerolog.Logger

	mu        sync.Mutex
	identity  *sdk.Identity
	resolving bool

	// resolveGroup collapses concurrent Resolve calls into one backend
	// round trip, so a stale response can never clobber a newer one.
	resolveGroup singleflight.Group
}

// NewStore builds a store in the resolving state. When the cache holds a
// previous identity it is loaded immediately as a paint hint; it is not
// proof of authentication and the first Resolve will confirm or clear it.
func NewStore(api AuthAPI, cache *Cache, log zerolog.Logger) *Store {
	s := &Store{api: api, cache: cache, log: log, resolving: true}
	if cache != nil {
		hint, err := cache.Load()
		if err != nil {
			log.Debug().Err(err).Msg("ignoring unreadable session cache")
		} else if hint != nil {
			s.identity = hint
		}
	}
	return s
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Identity: s.identity, Resolving: s.resolving}
}

// Resolve asks the backend who the current caller is and reconciles the
// store: on success the returned identity replaces whatever was cached; on
// any failure the identity and its persisted copy are cleared. Resolution
// failure is silent — the store simply settles unauthenticated. Resolve
// always leaves the resolving flag false and is idempotent when repeated.
func (s *Store) Resolve(ctx context.Context) State {
	s.resolveGroup.Do("resolve", func() (any, error) {
		identity, err := s.api.Me(ctx)
		if err != nil || identity == nil {
			if err != nil {
				s.log.Debug().Err(err).Msg("identity check failed; treating as signed out")
			}
			s.clear(true)
		} else {
			s.set(identity, true)
		}
		return nil, nil
	})
	return s.Snapshot()
}

// Login submits credentials. On success the identity is replaced and
// persisted; on failure the session is left untouched and the error carries
// the backend's message for inline display.
func (s *Store) Login(ctx context.Context, input sdk.LoginInput) (*sdk.Identity, error) {
	identity, err := s.api.Login(ctx, input)
	if err != nil {
		return nil, err
	}
	s.set(identity, false)
	return identity, nil
}

// Register creates an account; a success behaves exactly like a successful
// login.
func (s *Store) Register(ctx context.Context, input sdk.RegisterInput) (*sdk.Identity, error) {
	identity, err := s.api.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	s.set(identity, false)
	return identity, nil
}

// Logout tells the backend to drop the session, then clears local state
// unconditionally — a dead network must not leave a ghost session behind.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Debug().Err(err).Msg("logout call failed; clearing local session anyway")
	}
	s.clear(false)
}

// ClearIdentity drops the identity and its persisted copy without a backend
// call. The 401 interceptor uses it when any endpoint reports the session
// invalid.
func (s *Store) ClearIdentity() {
	s.clear(false)
}

func (s *Store) set(identity *sdk.Identity, settleResolving bool) {
	s.mu.Lock()
	s.identity = identity
	if settleResolving {
		s.resolving = false
	}
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Save(identity); err != nil {
			s.log.Warn().Err(err).Msg("failed to persist session snapshot")
		}
	}
}

func (s *Store) clear(settleResolving bool) {
	s.mu.Lock()
	s.identity = nil
	if settleResolving {
		s.resolving = false
	}
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Delete(); err != nil {
			s.log.Warn().Err(err).Msg("failed to remove session snapshot")
		}
	}
}
