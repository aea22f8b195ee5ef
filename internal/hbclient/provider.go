// Package hbclient wires the SDK client and the session store together and
// hands both to commands on demand.
package hbclient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/Mahesh-Koilapu/hbctl/internal/session"
	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

// ErrNotSignedIn is returned by Gate when the route guard bounces the caller
// to the login screen.
var ErrNotSignedIn = errors.New("not signed in")

// Provider lazily constructs the SDK client and session store bound to one
// server URL and cache directory. Construction happens once per process.
type Provider struct {
	serverURL string
	cacheDir  string
	log       zerolog.Logger

	once   sync.Once
	client *sdk.Client
	store  *session.Store
	cache  *session.Cache
	err    error
}

// NewProvider binds a provider to the given server URL and cache directory
// (empty means the default ~/.hbctl).
func NewProvider(serverURL, cacheDir string, log zerolog.Logger) *Provider {
	return &Provider{serverURL: serverURL, cacheDir: cacheDir, log: log}
}

func (p *Provider) init() {
	p.once.Do(func() {
		cache, err := session.NewCache(p.cacheDir)
		if err != nil {
			p.err = fmt.Errorf("failed to create session cache: %w", err)
			return
		}
		p.cache = cache

		// The 401 hook closes over the store variable, which is assigned
		// right below; any request observing a 401 happens strictly after
		// both are constructed.
		var store *session.Store
		client := sdk.NewClient(p.serverURL,
			sdk.WithLogger(p.log),
			sdk.WithOnUnauthorized(func() {
				if store == nil {
					return
				}
				// Only a session that existed is worth shouting about; the
				// boot-time identity check 401s for signed-out users too.
				if store.Snapshot().Identity != nil {
					pterm.Warning.Println("Your session is no longer valid. Run `hbctl auth login` to sign in again.")
				}
				store.ClearIdentity()
			}),
		)
		store = session.NewStore(client, cache, p.log)

		p.client = client
		p.store = store
	})
}

// Client returns the SDK client.
func (p *Provider) Client() (*sdk.Client, error) {
	p.init()
	return p.client, p.err
}

// Session returns the session store.
func (p *Provider) Session() (*session.Store, error) {
	p.init()
	return p.store, p.err
}

// CacheDir returns the directory session files live in.
func (p *Provider) CacheDir() (string, error) {
	p.init()
	if p.err != nil {
		return "", p.err
	}
	return p.cache.Dir(), nil
}

// Gate resolves the session and evaluates the route guard for the requested
// screen. It returns the client only when the guard renders; otherwise it
// translates the redirect into an actionable error and, for the login
// redirect, records the requested screen so the next login can return here.
func (p *Provider) Gate(ctx context.Context, screen string, roles ...sdk.Role) (*sdk.Client, error) {
	p.init()
	if p.err != nil {
		return nil, p.err
	}

	resolveCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	state := p.store.Resolve(resolveCtx)

	result := session.Evaluate(state, roles, screen)
	switch result.Decision {
	case session.DecisionRender:
		return p.client, nil
	case session.DecisionLoginRedirect:
		if result.From != "" {
			if err := session.WriteReturnTo(p.cache.Dir(), result.From); err != nil {
				p.log.Debug().Err(err).Msg("failed to record return-to screen")
			}
		}
		return nil, fmt.Errorf("%w: run `hbctl auth login` first", ErrNotSignedIn)
	case session.DecisionHomeRedirect:
		return nil, fmt.Errorf("this screen is not available to your role; your home is `%s`", ScreenCommand(result.Target))
	default:
		// Resolve always settles the resolving flag, so the guard cannot
		// still be loading here.
		return nil, fmt.Errorf("session is still resolving")
	}
}

// ScreenCommand translates a screen path into the hbctl invocation that
// opens it.
func ScreenCommand(screen string) string {
	parts := strings.FieldsFunc(screen, func(r rune) bool { return r == '/' })
	return strings.Join(append([]string{"hbctl"}, parts...), " ")
}
