// The session package owns authentication state: the resolved token, the
// current user's profile snapshot and the login lifecycle. It is the only
// package allowed to write or clear the persisted token; every other store
// treats the current user as read-only context.
package session

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/moviedeck/internal/api"
	"github.com/sidereusnuntius/moviedeck/internal/domain"
	"github.com/sidereusnuntius/moviedeck/internal/localstore"
	"github.com/sidereusnuntius/moviedeck/internal/validate"
)

var (
	ErrInvalidInput = errors.New("invalid")
	// ErrSessionExpired is returned by Resume when the persisted token carries
	// an expiry in the past. The token is purged; the user must log in again.
	ErrSessionExpired = errors.New("session expired")
)

// LoginState is tri-state: before the ambient token has been resolved the
// application does not yet know whether a session exists.
type LoginState int

const (
	Unknown LoginState = iota
	LoggedIn
	LoggedOut
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

type Store struct {
	api      api.Client
	settings localstore.Settings

	mu     sync.Mutex
	user   *domain.User
	state  LoginState
	token  string
	status Status
	err    string
}

func New(client api.Client, settings localstore.Settings) *Store {
	return &Store{
		api:      client,
		settings: settings,
		state:    Unknown,
		status:   StatusIdle,
	}
}

// CurrentUser returns a copy of the profile snapshot. ok is false until a
// session has been established.
func (s *Store) CurrentUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return cloneUser(*s.user), true
}

func (s *Store) State() LoginState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) Status() (Status, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.err
}

// Login exchanges credentials for a token and a profile in one round trip and
// persists the token in its quoted form. On failure the previous session
// state, if any, is left untouched.
func (s *Store) Login(ctx context.Context, creds api.Credentials) error {
	s.begin()

	result, err := s.api.Login(ctx, creds)
	if err != nil {
		s.fail(err)
		return err
	}

	if err := s.settings.Set(ctx, localstore.KeyAuthToken, WrapToken(result.Token)); err != nil {
		// The session still works for this run; it just won't survive a restart.
		log.Error().Err(err).Msg("failed to persist session token")
	}

	s.establish(result.User, result.Token)
	log.Info().Str("user", string(result.User.ID)).Msg("logged in")
	return nil
}

// Signup creates the account and then immediately logs in with the same
// credentials; account creation alone never establishes a session.
func (s *Store) Signup(ctx context.Context, form api.SignupForm) error {
	if err := validate.SignUpForm(form.Name, form.Username, form.Password, form.Email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	s.begin()
	if err := s.api.Signup(ctx, form); err != nil {
		s.fail(err)
		return err
	}

	return s.Login(ctx, api.Credentials{
		Username: form.Username,
		Password: form.Password,
	})
}

// GoogleAuthURL hands off to the external authentication endpoint. The flow
// completes when the redirect lands on the loopback listener and the token
// reaches AdoptRedirectToken.
func (s *Store) GoogleAuthURL() *url.URL {
	return s.api.GoogleAuthURL()
}

// AdoptRedirectToken persists a token delivered through the redirect query
// parameter. Redirect tokens are already raw and are persisted as such.
func (s *Store) AdoptRedirectToken(ctx context.Context, token string) error {
	return s.settings.Set(ctx, localstore.KeyAuthToken, token)
}

// Resume resolves the ambient persisted token and exchanges it for a profile.
// Any failure past the "no token" case clears the session and purges the
// token; there is no retry, the user must authenticate again.
func (s *Store) Resume(ctx context.Context) error {
	candidate, err := s.settings.Get(ctx, localstore.KeyAuthToken)
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			log.Error().Err(err).Msg("could not read persisted token")
		}
		s.setLoggedOut()
		return nil
	}

	token := ResolveToken(candidate)
	if Expired(token, time.Now()) {
		log.Info().Msg("persisted session expired")
		s.clear(ctx)
		return ErrSessionExpired
	}

	user, err := s.api.Me(ctx, token)
	if err != nil {
		log.Warn().Err(err).Msg("session resolution failed")
		s.clear(ctx)
		return err
	}

	s.establish(user, token)
	return nil
}

// MergeProfile shallowly merges a partial update into the current profile.
// Only the fields present in the patch are replaced; everything else is kept.
// Reports whether there was a profile to merge into.
func (s *Store) MergeProfile(patch api.UserPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}

	if patch.Name != nil {
		s.user.Name = *patch.Name
	}
	if patch.Email != nil {
		s.user.Email = *patch.Email
	}
	if patch.Favorites != nil {
		s.user.Favorites = slices.Clone(*patch.Favorites)
	}
	if patch.WatchList != nil {
		s.user.WatchList = slices.Clone(*patch.WatchList)
	}
	if patch.Watched != nil {
		s.user.Watched = slices.Clone(*patch.Watched)
	}
	if patch.Ratings != nil {
		s.user.Ratings = maps.Clone(*patch.Ratings)
	}
	return true
}

// Logout purges the persisted token and drops the in-memory session. The
// backend is not contacted.
func (s *Store) Logout(ctx context.Context) error {
	err := s.settings.Delete(ctx, localstore.KeyAuthToken)
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.state = LoggedOut
	s.status = StatusIdle
	s.err = ""
	s.mu.Unlock()
	return err
}

func (s *Store) establish(user domain.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := cloneUser(user)
	s.user = &u
	s.token = token
	s.state = LoggedIn
	s.status = StatusSucceeded
	s.err = ""
}

// clear tears the session down after an authentication failure, purging the
// persisted token so the next start does not retry a dead session.
func (s *Store) clear(ctx context.Context) {
	if err := s.settings.Delete(ctx, localstore.KeyAuthToken); err != nil {
		log.Error().Err(err).Msg("failed to purge session token")
	}
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.state = LoggedOut
	s.mu.Unlock()
}

func (s *Store) setLoggedOut() {
	s.mu.Lock()
	s.state = LoggedOut
	s.mu.Unlock()
}

func (s *Store) begin() {
	s.mu.Lock()
	s.status = StatusLoading
	s.err = ""
	s.mu.Unlock()
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.status = StatusFailed
	s.err = err.Error()
	s.mu.Unlock()
}

func cloneUser(u domain.User) domain.User {
	u.Favorites = slices.Clone(u.Favorites)
	u.WatchList = slices.Clone(u.WatchList)
	u.Watched = slices.Clone(u.Watched)
	u.Ratings = maps.Clone(u.Ratings)
	return u
}
