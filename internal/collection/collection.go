// The collection package owns the user's movie relations: favorites, watch
// list, watched, per-movie ratings, the recently viewed sequence and the
// promoted-list carousel index. All mutations are local and synchronous;
// persisting the result to the profile is the queue's job, not this store's.
package collection

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/sidereusnuntius/moviedeck/internal/domain"
	"github.com/sidereusnuntius/moviedeck/internal/validate"
)

const (
	// RecentlyViewedCap bounds the recently viewed sequence.
	RecentlyViewedCap = 20
	// CarouselSize is the fixed number of promoted positions the index cycles over.
	CarouselSize = 6
)

type Store struct {
	mu             sync.Mutex
	favorites      map[domain.MovieID]struct{}
	watchList      map[domain.MovieID]struct{}
	watched        map[domain.MovieID]struct{}
	ratings        map[domain.MovieID]int
	recentlyViewed []domain.MovieID
	index          int
}

// Snapshot carries every collection the profile persists, taken under one
// lock so a flush never mixes two generations of state.
type Snapshot struct {
	Favorites []domain.MovieID
	WatchList []domain.MovieID
	Watched   []domain.MovieID
	Ratings   map[domain.MovieID]int
}

func New() *Store {
	return &Store{
		favorites: map[domain.MovieID]struct{}{},
		watchList: map[domain.MovieID]struct{}{},
		watched:   map[domain.MovieID]struct{}{},
		ratings:   map[domain.MovieID]int{},
	}
}

// ToggleFavorite flips the movie's membership and reports the new state:
// true when the movie was added. Toggling twice in succession restores the
// original set.
func (s *Store) ToggleFavorite(id domain.MovieID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toggle(s.favorites, id)
}

func (s *Store) ToggleWatchList(id domain.MovieID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toggle(s.watchList, id)
}

func (s *Store) ToggleWatched(id domain.MovieID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toggle(s.watched, id)
}

func (s *Store) IsFavorite(id domain.MovieID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.favorites[id]
	return ok
}

func (s *Store) OnWatchList(id domain.MovieID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.watchList[id]
	return ok
}

func (s *Store) IsWatched(id domain.MovieID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.watched[id]
	return ok
}

// The Hydrate operations replace a whole set from the freshly resolved
// profile. They are full replacements, not merges: an optimistic toggle
// applied before hydration completes is lost. Last hydration wins.

func (s *Store) HydrateFavorites(ids []domain.MovieID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = toSet(ids)
}

func (s *Store) HydrateWatchList(ids []domain.MovieID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchList = toSet(ids)
}

func (s *Store) HydrateWatched(ids []domain.MovieID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watched = toSet(ids)
}

func (s *Store) HydrateRatings(ratings map[domain.MovieID]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings = map[domain.MovieID]int{}
	for id, r := range ratings {
		if validate.Rating(r) == nil {
			s.ratings[id] = r
		}
	}
}

// SetRating stages a rating locally. Ratings are flushed to the profile in
// one call carrying the whole map, never one request per rating.
func (s *Store) SetRating(id domain.MovieID, rating int) error {
	if err := validate.Rating(rating); err != nil {
		return fmt.Errorf("movie %d: %w", id, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings[id] = rating
	return nil
}

// Rating returns the staged rating; ok is false for unrated movies. Zero is
// never a stored value.
func (s *Store) Rating(id domain.MovieID) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.ratings[id]
	return r, ok
}

func (s *Store) Ratings() map[domain.MovieID]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.ratings)
}

// ViewMovie records a visit to the movie's page. The sequence is a fixed
// capacity ring with promotion: an id already present moves to the front
// without growing the sequence, and at capacity the oldest entry is evicted.
func (s *Store) ViewMovie(id domain.MovieID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.recentlyViewed, id); i >= 0 {
		s.recentlyViewed = slices.Delete(s.recentlyViewed, i, i+1)
		s.recentlyViewed = slices.Insert(s.recentlyViewed, 0, id)
		return
	}

	if len(s.recentlyViewed) >= RecentlyViewedCap {
		s.recentlyViewed = s.recentlyViewed[:len(s.recentlyViewed)-1]
	}
	s.recentlyViewed = slices.Insert(s.recentlyViewed, 0, id)
}

// RecentlyViewed returns the sequence most-recent-first.
func (s *Store) RecentlyViewed() []domain.MovieID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.recentlyViewed)
}

// HydrateRecentlyViewed replaces the sequence, deduplicating and truncating
// so the ring invariants hold no matter what was persisted.
func (s *Store) HydrateRecentlyViewed(ids []domain.MovieID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recentlyViewed = s.recentlyViewed[:0]
	for _, id := range ids {
		if slices.Contains(s.recentlyViewed, id) {
			continue
		}
		s.recentlyViewed = append(s.recentlyViewed, id)
		if len(s.recentlyViewed) == RecentlyViewedCap {
			break
		}
	}
}

// IncrementIndex advances the carousel with wrap-around: 5 wraps to 0.
func (s *Store) IncrementIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = (s.index + 1) % CarouselSize
	return s.index
}

// DecrementIndex steps the carousel back with wrap-around: 0 wraps to 5.
func (s *Store) DecrementIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = (s.index + CarouselSize - 1) % CarouselSize
	return s.index
}

func (s *Store) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Favorites, WatchList and Watched return sorted copies; the sets themselves
// carry no meaningful order.

func (s *Store) Favorites() []domain.MovieID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sorted(s.favorites)
}

func (s *Store) WatchList() []domain.MovieID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sorted(s.watchList)
}

func (s *Store) Watched() []domain.MovieID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sorted(s.watched)
}

// Snapshot returns all four collections at once for a profile flush.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Favorites: sorted(s.favorites),
		WatchList: sorted(s.watchList),
		Watched:   sorted(s.watched),
		Ratings:   maps.Clone(s.ratings),
	}
}

// Reset drops every collection back to its initial empty state. Used on
// logout; the recently viewed sequence and carousel index reset with it.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = map[domain.MovieID]struct{}{}
	s.watchList = map[domain.MovieID]struct{}{}
	s.watched = map[domain.MovieID]struct{}{}
	s.ratings = map[domain.MovieID]int{}
	s.recentlyViewed = nil
	s.index = 0
}

func toggle(set map[domain.MovieID]struct{}, id domain.MovieID) bool {
	if _, ok := set[id]; ok {
		delete(set, id)
		return false
	}
	set[id] = struct{}{}
	return true
}

func toSet(ids []domain.MovieID) map[domain.MovieID]struct{} {
	set := make(map[domain.MovieID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func sorted(set map[domain.MovieID]struct{}) []domain.MovieID {
	ids := slices.Collect(maps.Keys(set))
	slices.Sort(ids)
	return ids
}
