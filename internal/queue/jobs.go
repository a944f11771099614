package queue

import (
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/sidereusnuntius/moviedeck/internal/domain"
)

const (
	CollectionsQueue = "SaveCollections"
	RatingsQueue     = "SaveRatings"
)

// SaveCollectionsJob flushes the three relation sets to the profile. Each job
// carries a full snapshot, so replaying an old attempt after a newer one is a
// last-write-wins overwrite, which is the accepted reconciliation policy.
type SaveCollectionsJob struct {
	UserID    domain.UserID
	Favorites []domain.MovieID
	WatchList []domain.MovieID
	Watched   []domain.MovieID
}

func (j SaveCollectionsJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        CollectionsQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}

// SaveRatingsJob sends the user's whole ratings map in one call; ratings are
// staged locally and never flushed one request per movie.
type SaveRatingsJob struct {
	UserID  domain.UserID
	Ratings map[domain.MovieID]int
}

func (j SaveRatingsJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        RatingsQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}
