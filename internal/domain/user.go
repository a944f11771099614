package domain

// User is the profile snapshot the backend returns from the session and
// login endpoints. The four collection fields are the authoritative copies
// the local stores hydrate from.
type User struct {
	ID        UserID          `json:"id"`
	Username  string          `json:"username"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Favorites []MovieID       `json:"favorites"`
	WatchList []MovieID       `json:"watchList"`
	Watched   []MovieID       `json:"watched"`
	Ratings   map[MovieID]int `json:"ratings"`
}
