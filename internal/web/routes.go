package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/moviedeck/internal/queue"
)

func (h *Handler) Mount(r chi.Router) {
	r.Get(CallbackRoute, Callback(h))

	if h.Config.Debug {
		r.Get(StateRoute, State(h))
		r.Post(FlushRoute, Flush(h))
	}
}

// Callback receives the redirect at the end of the external authentication
// flow. The token arrives raw in the query parameter; the bootstrapper
// persists it and resolves the session from it.
func Callback(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("missing token"))
			return
		}

		if err := h.bootstrapper.Run(r.Context(), token); err != nil {
			log.Warn().Err(err).Msg("redirect token did not resolve to a session")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("sign in failed; please try again"))
			return
		}

		w.Write([]byte("signed in, you can close this window"))
	}
}

// State dumps the stores for inspection during development.
func State(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, loggedIn := h.bootstrapper.Session.CurrentUser()
		status, errMessage := h.reviews.Status()

		snap := h.collections.Snapshot()
		payload := map[string]any{
			"loggedIn":       loggedIn,
			"user":           user,
			"favorites":      snap.Favorites,
			"watchList":      snap.WatchList,
			"watched":        snap.Watched,
			"ratings":        snap.Ratings,
			"recentlyViewed": h.collections.RecentlyViewed(),
			"reviewStatus":   status,
			"reviewError":    errMessage,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Error().Err(err).Msg("failed to encode state")
		}
	}
}

// Flush enqueues a profile flush of the current collections and ratings.
func Flush(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.reconciler.SaveCollections(h.collections.Snapshot()); err != nil {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		err := h.reconciler.SaveRatings(h.collections.Ratings())
		if err != nil && !errors.Is(err, queue.ErrNothingToSave) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}
