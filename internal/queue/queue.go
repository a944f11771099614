// The queue package reconciles optimistic local collection state with the
// backend, best effort: flush jobs are persisted in the local database and
// retried with backoff, so a dead network delays persistence instead of
// losing it.
package queue

import (
	"context"
	"errors"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/moviedeck/internal/api"
	"github.com/sidereusnuntius/moviedeck/internal/collection"
	"github.com/sidereusnuntius/moviedeck/internal/domain"
)

var (
	// ErrNothingToSave rejects a ratings flush with nothing staged, before
	// anything is enqueued or sent.
	ErrNothingToSave = errors.New("nothing to save")
	ErrNotLoggedIn   = errors.New("not logged in")
)

// Profile is the slice of the session store the queue needs: whose profile is
// being flushed, and where the acknowledged fields are merged back.
type Profile interface {
	CurrentUser() (domain.User, bool)
	MergeProfile(patch api.UserPatch) bool
}

type Reconciler interface {
	// SaveCollections enqueues a flush of the given snapshot to the current
	// user's profile.
	SaveCollections(snap collection.Snapshot) error
	// SaveRatings enqueues a flush of the full staged ratings map.
	SaveRatings(ratings map[domain.MovieID]int) error
}

type reconcilerImpl struct {
	profile Profile
	api     api.Client
	queues  *backlite.Client
}

func New(ctx context.Context, profile Profile, client api.Client, blClient *backlite.Client) Reconciler {

	q := &reconcilerImpl{
		profile: profile,
		api:     client,
		queues:  blClient,
	}
	q.register()
	q.queues.Start(ctx)
	log.Info().Msg("started reconciliation queue")
	return q
}

func (q *reconcilerImpl) SaveCollections(snap collection.Snapshot) error {
	user, ok := q.profile.CurrentUser()
	if !ok {
		return ErrNotLoggedIn
	}

	log.Debug().Str("user", string(user.ID)).Msg("enqueueing collections flush")
	task := SaveCollectionsJob{
		UserID:    user.ID,
		Favorites: snap.Favorites,
		WatchList: snap.WatchList,
		Watched:   snap.Watched,
	}
	_, err := q.queues.Add(task).Save()
	return err
}

func (q *reconcilerImpl) SaveRatings(ratings map[domain.MovieID]int) error {
	if len(ratings) == 0 {
		return ErrNothingToSave
	}

	user, ok := q.profile.CurrentUser()
	if !ok {
		return ErrNotLoggedIn
	}

	log.Debug().Str("user", string(user.ID)).Int("ratings", len(ratings)).Msg("enqueueing ratings flush")
	task := SaveRatingsJob{
		UserID:  user.ID,
		Ratings: ratings,
	}
	_, err := q.queues.Add(task).Save()
	return err
}
