// The bootstrap package primes the stores at application start. Ordering is
// the point: the ambient token is resolved first, then the profile is
// fetched, and only for a resolved user are the collections hydrated.
package bootstrap

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/moviedeck/internal/collection"
	"github.com/sidereusnuntius/moviedeck/internal/session"
)

type Bootstrapper struct {
	Session     *session.Store
	Collections *collection.Store
}

func New(s *session.Store, c *collection.Store) *Bootstrapper {
	return &Bootstrapper{
		Session:     s,
		Collections: c,
	}
}

// Run resolves the ambient session and hydrates the collection store.
// redirectToken, when non empty, was delivered through the redirect query
// parameter; it takes priority over whatever is persisted and is adopted in
// raw form before resolution.
//
// Hydration replaces the collection sets wholesale, so an optimistic toggle
// applied between start and hydration does not survive. Last hydration wins.
func (b *Bootstrapper) Run(ctx context.Context, redirectToken string) error {
	if redirectToken != "" {
		if err := b.Session.AdoptRedirectToken(ctx, redirectToken); err != nil {
			log.Error().Err(err).Msg("failed to adopt redirect token")
		}
	}

	if err := b.Session.Resume(ctx); err != nil {
		// The session store already tore the session down; nothing to hydrate.
		return err
	}

	user, ok := b.Session.CurrentUser()
	if !ok {
		log.Info().Msg("no ambient session")
		return nil
	}

	b.Collections.HydrateFavorites(user.Favorites)
	b.Collections.HydrateWatchList(user.WatchList)
	b.Collections.HydrateWatched(user.Watched)
	b.Collections.HydrateRatings(user.Ratings)
	log.Info().Str("user", string(user.ID)).Msg("session resumed")
	return nil
}

// Logout tears both stores down: the persisted token and profile go through
// the session store, the collections reset to their initial empty state.
func (b *Bootstrapper) Logout(ctx context.Context) error {
	b.Collections.Reset()
	return b.Session.Logout(ctx)
}
