// The review package owns per-movie review collections and the like/dislike
// membership per reviewer, and drives the review request lifecycles against
// the backend.
package review

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sidereusnuntius/moviedeck/internal/api"
	"github.com/sidereusnuntius/moviedeck/internal/domain"
	"github.com/sidereusnuntius/moviedeck/internal/validate"
)

var (
	ErrInvalidInput = errors.New("invalid")
	// ErrUnauthenticated means the operation needs a logged in user and none
	// was present. It is raised before any request is issued; callers react by
	// opening the authentication prompt, not by showing an error.
	ErrUnauthenticated = errors.New("not logged in")
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Identity is the read-only view of the session the store needs: who, if
// anyone, is acting.
type Identity interface {
	CurrentUser() (domain.User, bool)
}

// Store keeps reviews keyed first by movie, then by review id. The status
// and error pair is shared by every operation category, so two operations in
// flight at once clobber each other's status; callers must not read it as
// belonging to a specific request. Superseded fetches are not discarded
// either: the last response to arrive wins, whatever movie it was for.
type Store struct {
	api      api.Client
	identity Identity
	dmp      *diffmatchpatch.DiffMatchPatch

	mu      sync.Mutex
	reviews map[domain.MovieID]map[domain.ReviewID]*domain.Review
	status  Status
	err     string
}

func New(client api.Client, identity Identity) *Store {
	return &Store{
		api:      client,
		identity: identity,
		dmp:      diffmatchpatch.New(),
		reviews:  map[domain.MovieID]map[domain.ReviewID]*domain.Review{},
		status:   StatusIdle,
	}
}

func (s *Store) Status() (Status, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.err
}

// ReviewsFor returns a copy of the movie's review map. An absent movie yields
// an empty map.
func (s *Store) ReviewsFor(movieID domain.MovieID) map[domain.ReviewID]domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[domain.ReviewID]domain.Review, len(s.reviews[movieID]))
	for id, r := range s.reviews[movieID] {
		out[id] = cloneReview(*r)
	}
	return out
}

// Fetch retrieves every review for the movie and replaces the per-movie map
// wholesale. Incoming reviews are normalized so the reaction sets are always
// present even when the transport omitted them.
func (s *Store) Fetch(ctx context.Context, movieID domain.MovieID) error {
	s.begin()

	fetched, err := s.api.FetchReviews(ctx, movieID)
	if err != nil {
		s.fail(err, "failed to fetch reviews")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	byID := make(map[domain.ReviewID]*domain.Review, len(fetched))
	for _, r := range fetched {
		r.Normalize()
		byID[r.ReviewID] = &r
	}
	s.reviews[movieID] = byID
	s.status = StatusSucceeded
	return nil
}

// Create posts a new review as the current user and inserts the server's
// answer, which carries the assigned id, into the movie's map.
func (s *Store) Create(ctx context.Context, movieID domain.MovieID, text string) (domain.ReviewID, error) {
	user, ok := s.identity.CurrentUser()
	if !ok {
		return "", ErrUnauthenticated
	}
	if err := validate.ReviewText(text); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	s.begin()
	created, err := s.api.CreateReview(ctx, api.CreateReviewRequest{
		UserID:  user.ID,
		MovieID: movieID,
		Review:  text,
		Name:    user.Name,
	})
	if err != nil {
		s.fail(err, "failed to create review")
		return "", err
	}

	// A fresh review starts with empty reaction sets no matter what the
	// transport sent along.
	created.LikedBy = []domain.UserID{}
	created.DislikedBy = []domain.UserID{}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reviews[created.MovieID] == nil {
		s.reviews[created.MovieID] = map[domain.ReviewID]*domain.Review{}
	}
	s.reviews[created.MovieID][created.ReviewID] = &created
	s.status = StatusSucceeded
	return created.ReviewID, nil
}

// UpdateText replaces the text of an existing review and marks it edited.
// When the review is no longer cached locally, for example after a delete
// elsewhere, the update is dropped without error; the returned bool makes
// the no-op observable.
func (s *Store) UpdateText(ctx context.Context, reviewID domain.ReviewID, newText string) (bool, error) {
	if err := validate.ReviewText(newText); err != nil {
		return false, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	s.begin()
	updated, err := s.api.UpdateReviewText(ctx, reviewID, newText)
	if err != nil {
		s.fail(err, "failed to update review")
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusSucceeded

	target, ok := s.reviews[updated.MovieID][updated.ReviewID]
	if !ok {
		log.Debug().Str("review", string(updated.ReviewID)).Msg("update for a review that is not cached; dropped")
		return false, nil
	}

	patch := s.dmp.PatchToText(s.dmp.PatchMake(s.dmp.DiffMain(target.Review, updated.Review, false)))
	log.Debug().Str("review", string(updated.ReviewID)).Str("patch", patch).Msg("review edited")

	target.Review = updated.Review
	target.IsEdited = true
	return true, nil
}

// ToggleReaction flips the current user's like or dislike on a review. The
// backend call is ack-only; the toggle is applied locally afterwards, keeping
// the two reaction sets mutually exclusive. Reviews are not indexed by id
// alone, so the review is located by a scan across the movie maps; the first
// match is mutated and an absent id is a no-op.
func (s *Store) ToggleReaction(ctx context.Context, reviewID domain.ReviewID, reaction domain.Reaction) (bool, error) {
	user, ok := s.identity.CurrentUser()
	if !ok {
		return false, ErrUnauthenticated
	}
	if err := reaction.Valid(); err != nil {
		return false, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	s.begin()
	if err := s.api.ToggleReaction(ctx, reviewID, user.ID, reaction); err != nil {
		s.fail(err, "failed to toggle reaction")
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusSucceeded

	for _, byID := range s.reviews {
		if r, ok := byID[reviewID]; ok {
			r.React(user.ID, reaction)
			return true, nil
		}
	}
	return false, nil
}

// Delete removes a review, pruning the movie's entry when it was the last
// one. An id that is not cached locally is a no-op.
func (s *Store) Delete(ctx context.Context, reviewID domain.ReviewID) (bool, error) {
	s.begin()
	if err := s.api.DeleteReview(ctx, reviewID); err != nil {
		s.fail(err, "failed to delete review")
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusSucceeded

	for movieID, byID := range s.reviews {
		if _, ok := byID[reviewID]; ok {
			delete(byID, reviewID)
			if len(byID) == 0 {
				delete(s.reviews, movieID)
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) begin() {
	s.mu.Lock()
	s.status = StatusLoading
	s.err = ""
	s.mu.Unlock()
}

func (s *Store) fail(err error, fallback string) {
	message := fallback
	var remote *api.Error
	if errors.As(err, &remote) {
		message = remote.Message
	}
	s.mu.Lock()
	s.status = StatusFailed
	s.err = message
	s.mu.Unlock()
}

func cloneReview(r domain.Review) domain.Review {
	r.LikedBy = slices.Clone(r.LikedBy)
	r.DislikedBy = slices.Clone(r.DislikedBy)
	return r
}
