// The api package talks to the remote movie backend. It is the only package
// that knows the backend's routes and wire shapes; everything above it works
// with domain types.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/sidereusnuntius/moviedeck/internal/domain"
)

var (
	// ErrInvalidCredentials is returned by Login when the backend turns the
	// credentials down, regardless of how it phrased the refusal.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Error carries the backend's error body for a non-2xx response. When the
// body had no usable error field, Message holds a generic network-error text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignupForm struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the single round trip login answer: the session token plus
// the full profile it authenticates.
type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// UserPatch is a partial profile update. Nil fields are absent from the
// request body and are left untouched by the backend; the same distinction is
// used when merging the response back into the in-memory profile.
type UserPatch struct {
	Name      *string                 `json:"name,omitempty"`
	Email     *string                 `json:"email,omitempty"`
	Favorites *[]domain.MovieID       `json:"favorites,omitempty"`
	WatchList *[]domain.MovieID       `json:"watchList,omitempty"`
	Watched   *[]domain.MovieID       `json:"watched,omitempty"`
	Ratings   *map[domain.MovieID]int `json:"ratings,omitempty"`
}

type CreateReviewRequest struct {
	UserID  domain.UserID  `json:"userId"`
	MovieID domain.MovieID `json:"movieId"`
	Review  string         `json:"review"`
	Name    string         `json:"name"`
}

type Client interface {
	// Login exchanges credentials for a token and a profile in one round trip.
	Login(ctx context.Context, creds Credentials) (LoginResult, error)
	// Signup creates the account and nothing else; it does not establish a session.
	Signup(ctx context.Context, form SignupForm) error
	// Me resolves the profile the given token authenticates.
	Me(ctx context.Context, token string) (domain.User, error)
	// UpdateUser sends a partial profile update and returns the fields the
	// backend acknowledged.
	UpdateUser(ctx context.Context, id domain.UserID, patch UserPatch) (UserPatch, error)
	FetchReviews(ctx context.Context, movieID domain.MovieID) ([]domain.Review, error)
	CreateReview(ctx context.Context, req CreateReviewRequest) (domain.Review, error)
	UpdateReviewText(ctx context.Context, id domain.ReviewID, newReview string) (domain.Review, error)
	// ToggleReaction is an ack-only call; the caller applies the toggle locally
	// after it succeeds.
	ToggleReaction(ctx context.Context, id domain.ReviewID, user domain.UserID, reaction domain.Reaction) error
	DeleteReview(ctx context.Context, id domain.ReviewID) error
	// GoogleAuthURL is the external endpoint the redirect based flow hands off
	// to. Nothing resolves locally; the loopback listener completes the flow.
	GoogleAuthURL() *url.URL
}
