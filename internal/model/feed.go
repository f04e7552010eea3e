package model

type Order string

const (
	OrderDate  Order = "date"
	OrderLikes Order = "likes"
	OrderHates Order = "hates"
)

type Sort string

const (
	SortAsc  Sort = "ASC"
	SortDesc Sort = "DESC"
)

// MovieCard is the read model behind a single feed row: a movie joined
// with its owner's name, aggregate vote counts and the viewer's own
// vote (nil when the viewer is anonymous or has not voted).
type MovieCard struct {
	Movie
	UserName    string
	Likes       int
	Hates       int
	Vote        *bool
	DaysElapsed string
}

// FeedQuery selects one page of the movie feed. Offset is zero-based
// (page * limit). CreatorID narrows the feed to one user's submissions;
// ViewerID annotates each card with that user's own vote.
type FeedQuery struct {
	Sort      Sort
	Order     Order
	Limit     int
	Offset    int
	CreatorID *int64
	ViewerID  *int64
}

type Feed struct {
	Movies      []MovieCard
	TotalMovies int
}
