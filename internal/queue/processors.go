package queue

import (
	"context"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/moviedeck/internal/api"
)

func (q *reconcilerImpl) register() {
	collectionsQueue := backlite.NewQueue[SaveCollectionsJob](q.saveCollections())
	ratingsQueue := backlite.NewQueue[SaveRatingsJob](q.saveRatings())

	q.queues.Register(collectionsQueue)
	q.queues.Register(ratingsQueue)
}

func (q *reconcilerImpl) saveCollections() func(context.Context, SaveCollectionsJob) error {
	return func(ctx context.Context, task SaveCollectionsJob) error {
		patch := api.UserPatch{
			Favorites: &task.Favorites,
			WatchList: &task.WatchList,
			Watched:   &task.Watched,
		}

		updated, err := q.api.UpdateUser(ctx, task.UserID, patch)
		if err != nil {
			log.Warn().Err(err).Str("user", string(task.UserID)).Msg("collections flush failed; will retry")
			return err
		}

		// Keep the profile snapshot in step with what the backend acknowledged.
		q.profile.MergeProfile(updated)
		return nil
	}
}

func (q *reconcilerImpl) saveRatings() func(context.Context, SaveRatingsJob) error {
	return func(ctx context.Context, task SaveRatingsJob) error {
		patch := api.UserPatch{
			Ratings: &task.Ratings,
		}

		updated, err := q.api.UpdateUser(ctx, task.UserID, patch)
		if err != nil {
			log.Warn().Err(err).Str("user", string(task.UserID)).Msg("ratings flush failed; will retry")
			return err
		}

		q.profile.MergeProfile(updated)
		return nil
	}
}
