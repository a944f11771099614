package domain

import "fmt"

// MovieID identifies a movie in the remote catalog. Always positive.
type MovieID int64

// UserID is the backend's identifier for an account. Opaque string.
type UserID string

// ReviewID is assigned by the backend when a review is created.
type ReviewID string

// Reaction is a like/dislike relationship between a user and a review.
// A user holds at most one reaction per review.
type Reaction string

const (
	Like    Reaction = "like"
	Dislike Reaction = "dislike"
)

func (r Reaction) Valid() error {
	switch r {
	case Like, Dislike:
		return nil
	}
	return fmt.Errorf("unknown reaction %q", string(r))
}
