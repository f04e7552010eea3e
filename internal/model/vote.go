package model

// Vote is a single user's reaction to a movie. Like is true for a like
// and false for a hate; a user holds at most one vote per movie.
type Vote struct {
	MovieID int64
	UserID  int64
	Like    bool
}
