package domain

import "slices"

type Review struct {
	ReviewID   ReviewID `json:"reviewId"`
	MovieID    MovieID  `json:"movieId"`
	UserID     UserID   `json:"userId"`
	Name       string   `json:"name"`
	Review     string   `json:"review"`
	IsEdited   bool     `json:"isEdited"`
	LikedBy    []UserID `json:"likedBy"`
	DislikedBy []UserID `json:"dislikedBy"`
}

// Normalize guarantees the reaction sets are non-nil. The transport is
// allowed to omit them for reviews nobody has reacted to.
func (r *Review) Normalize() {
	if r.LikedBy == nil {
		r.LikedBy = []UserID{}
	}
	if r.DislikedBy == nil {
		r.DislikedBy = []UserID{}
	}
}

// React toggles the user's membership in the set matching reaction, first
// removing them from the opposite set. A user is never in both.
func (r *Review) React(user UserID, reaction Reaction) {
	switch reaction {
	case Like:
		r.DislikedBy = remove(r.DislikedBy, user)
		r.LikedBy = flip(r.LikedBy, user)
	case Dislike:
		r.LikedBy = remove(r.LikedBy, user)
		r.DislikedBy = flip(r.DislikedBy, user)
	}
}

func (r *Review) LikedByUser(user UserID) bool {
	return slices.Contains(r.LikedBy, user)
}

func (r *Review) DislikedByUser(user UserID) bool {
	return slices.Contains(r.DislikedBy, user)
}

func remove(ids []UserID, user UserID) []UserID {
	if i := slices.Index(ids, user); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return ids
}

func flip(ids []UserID, user UserID) []UserID {
	if i := slices.Index(ids, user); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return append(ids, user)
}
