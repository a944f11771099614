// The web package is the loopback listener that completes the redirect based
// authentication flow: the external endpoint sends the browser back with the
// token in a query parameter, and the callback hands it to the bootstrapper.
// In debug mode it also exposes a small state surface for poking at the
// stores while developing.
package web

import (
	"github.com/sidereusnuntius/moviedeck/internal/bootstrap"
	"github.com/sidereusnuntius/moviedeck/internal/collection"
	"github.com/sidereusnuntius/moviedeck/internal/config"
	"github.com/sidereusnuntius/moviedeck/internal/queue"
	"github.com/sidereusnuntius/moviedeck/internal/review"
)

const (
	CallbackRoute = "/auth/callback"
	StateRoute    = "/debug/state"
	FlushRoute    = "/debug/flush"
)

type Handler struct {
	Config       *config.Configuration
	bootstrapper *bootstrap.Bootstrapper
	collections  *collection.Store
	reviews      *review.Store
	reconciler   queue.Reconciler
}

func New(config *config.Configuration, bootstrapper *bootstrap.Bootstrapper, collections *collection.Store, reviews *review.Store, reconciler queue.Reconciler) Handler {
	return Handler{
		Config:       config,
		bootstrapper: bootstrapper,
		collections:  collections,
		reviews:      reviews,
		reconciler:   reconciler,
	}
}
