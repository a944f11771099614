package collection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/moviedeck/internal/domain"
)

func TestToggleFavorite(t *testing.T) {
	store := New()

	if added := store.ToggleFavorite(42); !added {
		t.Error("first toggle should add")
	}
	if got := store.Favorites(); len(got) != 1 || got[0] != 42 {
		t.Errorf("expected favorites [42], got %v", got)
	}

	if added := store.ToggleFavorite(42); added {
		t.Error("second toggle should remove")
	}
	if got := store.Favorites(); len(got) != 0 {
		t.Errorf("expected empty favorites, got %v", got)
	}
}

// Toggling any id twice in succession is an involution on all three sets.
func TestToggleInvolution(t *testing.T) {
	store := New()
	store.HydrateFavorites([]domain.MovieID{1, 2})
	store.HydrateWatchList([]domain.MovieID{3})
	store.HydrateWatched([]domain.MovieID{4, 5, 6})

	before := store.Snapshot()
	for _, id := range []domain.MovieID{1, 2, 7, 100} {
		store.ToggleFavorite(id)
		store.ToggleFavorite(id)
		store.ToggleWatchList(id)
		store.ToggleWatchList(id)
		store.ToggleWatched(id)
		store.ToggleWatched(id)
	}

	if diff := cmp.Diff(before, store.Snapshot()); diff != "" {
		t.Errorf("double toggle changed state (-want +got):\n%s", diff)
	}
}

// Hydration is a full replacement. An optimistic toggle applied before the
// profile arrives does not survive it; that loss is the documented policy,
// not an accident.
func TestHydrationDiscardsEarlyToggles(t *testing.T) {
	store := New()

	store.ToggleFavorite(999)

	store.HydrateFavorites([]domain.MovieID{1, 2})
	got := store.Favorites()
	expected := []domain.MovieID{1, 2}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("hydration must win over earlier optimistic toggles (-want +got):\n%s", diff)
	}
}

func TestSetRating(t *testing.T) {
	store := New()

	cases := []struct {
		name   string
		rating int
		ok     bool
	}{
		{"lowest", 1, true},
		{"highest", 10, true},
		{"zero is the no-selection sentinel", 0, false},
		{"too high", 11, false},
		{"negative", -1, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := store.SetRating(5, c.rating)
			if c.ok && err != nil {
				t.Error("unexpected error:", err)
			}
			if !c.ok && err == nil {
				t.Errorf("rating %d should have been rejected", c.rating)
			}
		})
	}

	if _, ok := store.Rating(404); ok {
		t.Error("an unrated movie must report no rating")
	}
}

func TestHydrateRatingsDropsInvalidValues(t *testing.T) {
	store := New()
	store.HydrateRatings(map[domain.MovieID]int{1: 7, 2: 0, 3: 12})

	expected := map[domain.MovieID]int{1: 7}
	if diff := cmp.Diff(expected, store.Ratings()); diff != "" {
		t.Errorf("unexpected ratings (-want +got):\n%s", diff)
	}
}

func TestRecentlyViewedEviction(t *testing.T) {
	store := New()

	for id := domain.MovieID(1); id <= 21; id++ {
		store.ViewMovie(id)
	}

	got := store.RecentlyViewed()
	if len(got) != RecentlyViewedCap {
		t.Fatalf("expected %d entries, got %d", RecentlyViewedCap, len(got))
	}

	expected := make([]domain.MovieID, 0, RecentlyViewedCap)
	for id := domain.MovieID(21); id >= 2; id-- {
		expected = append(expected, id)
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("unexpected sequence (-want +got):\n%s", diff)
	}
}

func TestRecentlyViewedPromotion(t *testing.T) {
	store := New()
	store.ViewMovie(1)
	store.ViewMovie(2)
	store.ViewMovie(3)

	store.ViewMovie(1)

	expected := []domain.MovieID{1, 3, 2}
	if diff := cmp.Diff(expected, store.RecentlyViewed()); diff != "" {
		t.Errorf("re-viewing must promote without duplicating (-want +got):\n%s", diff)
	}
}

func TestRecentlyViewedNeverDuplicates(t *testing.T) {
	store := New()
	views := []domain.MovieID{5, 1, 5, 2, 1, 5, 3, 3, 1}
	for _, id := range views {
		store.ViewMovie(id)
	}

	seen := map[domain.MovieID]bool{}
	for _, id := range store.RecentlyViewed() {
		if seen[id] {
			t.Fatalf("movie %d appears twice", id)
		}
		seen[id] = true
	}
}

func TestHydrateRecentlyViewed(t *testing.T) {
	store := New()

	ids := make([]domain.MovieID, 0, 30)
	for i := domain.MovieID(1); i <= 25; i++ {
		ids = append(ids, i)
	}
	ids = append(ids, 1, 2, 3) // persisted garbage with duplicates

	store.HydrateRecentlyViewed(ids)
	got := store.RecentlyViewed()
	if len(got) != RecentlyViewedCap {
		t.Errorf("expected the sequence bounded at %d, got %d", RecentlyViewedCap, len(got))
	}
	if got[0] != 1 || got[19] != 20 {
		t.Errorf("hydration must preserve the given order, got %v", got)
	}
}

func TestCarouselWrapAround(t *testing.T) {
	store := New()

	for i := 0; i < CarouselSize-1; i++ {
		store.IncrementIndex()
	}
	if store.Index() != 5 {
		t.Fatalf("expected index 5, got %d", store.Index())
	}
	if got := store.IncrementIndex(); got != 0 {
		t.Errorf("incrementing from 5 must wrap to 0, got %d", got)
	}
	if got := store.DecrementIndex(); got != 5 {
		t.Errorf("decrementing from 0 must wrap to 5, got %d", got)
	}
}

// Six increments from any position land back where they started.
func TestCarouselFullCycle(t *testing.T) {
	store := New()
	for start := 0; start < CarouselSize; start++ {
		before := store.Index()
		for i := 0; i < CarouselSize; i++ {
			store.IncrementIndex()
		}
		if store.Index() != before {
			t.Fatalf("cycle from %d ended at %d", before, store.Index())
		}
		store.IncrementIndex()
	}
}

func TestReset(t *testing.T) {
	store := New()
	store.ToggleFavorite(1)
	store.ToggleWatchList(2)
	store.ToggleWatched(3)
	if err := store.SetRating(1, 8); err != nil {
		t.Fatal(err)
	}
	store.ViewMovie(1)
	store.IncrementIndex()

	store.Reset()

	snap := store.Snapshot()
	if len(snap.Favorites)+len(snap.WatchList)+len(snap.Watched)+len(snap.Ratings) != 0 {
		t.Errorf("collections should be empty after reset: %+v", snap)
	}
	if len(store.RecentlyViewed()) != 0 || store.Index() != 0 {
		t.Error("recently viewed and carousel should reset too")
	}
}
