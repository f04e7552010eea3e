package infra_postgres_card

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/humanbelnik/movierama/core/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(sqlx.NewDb(db, "sqlmock")), mock
}

func TestBuildListQueryAnonymous(t *testing.T) {
	query, args, err := buildListQuery(model.FeedQuery{
		Order:  model.OrderDate,
		Sort:   model.SortDesc,
		Limit:  5,
		Offset: 10,
	})

	require.NoError(t, err)
	assert.NotContains(t, query, "uv.")
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "GROUP BY mv.id, u.name")
	assert.Contains(t, query, "ORDER BY mv.date DESC, mv.id DESC")
	assert.Contains(t, query, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{5, 10}, args)
}

func TestBuildListQueryViewerAndCreator(t *testing.T) {
	viewerID := int64(2)
	creatorID := int64(7)

	query, args, err := buildListQuery(model.FeedQuery{
		Order:     model.OrderLikes,
		Sort:      model.SortAsc,
		Limit:     5,
		Offset:    0,
		ViewerID:  &viewerID,
		CreatorID: &creatorID,
	})

	require.NoError(t, err)
	assert.Contains(t, query, `uv."like" AS vote`)
	assert.Contains(t, query, "LEFT JOIN votes uv ON mv.id = uv.movie_id AND uv.user_id = $1")
	assert.Contains(t, query, "WHERE mv.user_id = $2")
	assert.Contains(t, query, `GROUP BY mv.id, u.name, uv."like"`)
	assert.Contains(t, query, "ORDER BY likes ASC, mv.id ASC")
	assert.Contains(t, query, "LIMIT $3 OFFSET $4")
	assert.Equal(t, []any{viewerID, creatorID, 5, 0}, args)
}

func TestBuildListQueryRejectsUnknownOrder(t *testing.T) {
	_, _, err := buildListQuery(model.FeedQuery{Order: "rating", Sort: model.SortDesc})
	assert.Error(t, err)

	_, _, err = buildListQuery(model.FeedQuery{Order: model.OrderDate, Sort: "sideways"})
	assert.Error(t, err)
}

func TestListMapsRowsToCards(t *testing.T) {
	repo, mock := newRepository(t)
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	viewerID := int64(2)
	rows := sqlmock.NewRows([]string{"id", "title", "description", "date", "user_id", "name", "likes", "hates", "vote"}).
		AddRow(int64(1), "Alien", "Scary.", now.AddDate(0, 0, -3), int64(3), "Jane", 4, 1, true).
		AddRow(int64(2), "Brazil", "Strange.", now.Add(-12*time.Hour), int64(4), "Tom", 0, 2, nil)

	mock.ExpectQuery("SELECT").
		WithArgs(viewerID, 5, 0).
		WillReturnRows(rows)

	cards, err := repo.List(context.Background(), model.FeedQuery{
		Order:    model.OrderDate,
		Sort:     model.SortDesc,
		Limit:    5,
		Offset:   0,
		ViewerID: &viewerID,
	})

	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, "Alien", cards[0].Title)
	assert.Equal(t, "Jane", cards[0].UserName)
	assert.Equal(t, 4, cards[0].Likes)
	assert.Equal(t, 1, cards[0].Hates)
	require.NotNil(t, cards[0].Vote)
	assert.True(t, *cards[0].Vote)
	assert.Equal(t, "3 days ago", cards[0].DaysElapsed)

	assert.Nil(t, cards[1].Vote)
	assert.Equal(t, "1 days ago", cards[1].DaysElapsed)
}

func TestDaysElapsed(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		date time.Time
		want string
	}{
		{name: "same instant", date: now, want: "0 days ago"},
		{name: "under a day", date: now.Add(-2 * time.Hour), want: "1 days ago"},
		{name: "exactly two days", date: now.AddDate(0, 0, -2), want: "2 days ago"},
		{name: "two and a half days", date: now.Add(-60 * time.Hour), want: "3 days ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, daysElapsed(tc.date, now))
		})
	}
}
