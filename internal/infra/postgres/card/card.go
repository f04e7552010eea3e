package infra_postgres_card

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/humanbelnik/movierama/core/internal/model"
	"github.com/jmoiron/sqlx"
)

// Repository materializes the MovieCard read model: movies joined with
// their owner and vote aggregates, one page at a time. Nothing here is
// persisted; every feed render recomputes the aggregates.
type Repository struct {
	db  *sqlx.DB
	now func() time.Time
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// orderColumns is the allow-list for the ORDER BY key. The key is the
// only fragment interpolated into the SQL; everything else travels as
// a bind parameter.
var orderColumns = map[model.Order]string{
	model.OrderDate:  "mv.date",
	model.OrderLikes: "likes",
	model.OrderHates: "hates",
}

var sortDirections = map[model.Sort]string{
	model.SortAsc:  "ASC",
	model.SortDesc: "DESC",
}

func (r *Repository) List(ctx context.Context, q model.FeedQuery) ([]model.MovieCard, error) {
	query, args, err := buildListQuery(q)
	if err != nil {
		return nil, err
	}

	var cardsDB []cardDTO
	if err := r.db.SelectContext(ctx, &cardsDB, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch movies list: %w", err)
	}

	now := r.now()
	cards := make([]model.MovieCard, len(cardsDB))
	for i, cardDB := range cardsDB {
		cards[i] = cardDB.toDomain(now)
	}

	return cards, nil
}

func buildListQuery(q model.FeedQuery) (string, []any, error) {
	orderColumn, ok := orderColumns[q.Order]
	if !ok {
		return "", nil, fmt.Errorf("unsupported order key %q", q.Order)
	}

	direction, ok := sortDirections[q.Sort]
	if !ok {
		return "", nil, fmt.Errorf("unsupported sort direction %q", q.Sort)
	}

	var (
		sb   strings.Builder
		args []any
	)

	sb.WriteString(`
		SELECT
			mv.id,
			mv.title,
			mv.description,
			mv.date,
			mv.user_id,
			u.name,
			COUNT(CASE WHEN v."like" IS TRUE THEN 1 END) AS likes,
			COUNT(CASE WHEN v."like" IS FALSE THEN 1 END) AS hates`)
	if q.ViewerID != nil {
		sb.WriteString(`,
			uv."like" AS vote`)
	}

	sb.WriteString(`
		FROM movies mv
		JOIN users u ON u.id = mv.user_id
		LEFT JOIN votes v ON mv.id = v.movie_id`)
	if q.ViewerID != nil {
		args = append(args, *q.ViewerID)
		sb.WriteString(fmt.Sprintf(`
		LEFT JOIN votes uv ON mv.id = uv.movie_id AND uv.user_id = $%d`, len(args)))
	}

	if q.CreatorID != nil {
		args = append(args, *q.CreatorID)
		sb.WriteString(fmt.Sprintf(`
		WHERE mv.user_id = $%d`, len(args)))
	}

	if q.ViewerID != nil {
		sb.WriteString(`
		GROUP BY mv.id, u.name, uv."like"`)
	} else {
		sb.WriteString(`
		GROUP BY mv.id, u.name`)
	}

	// Secondary key keeps pages stable when order values collide.
	args = append(args, q.Limit, q.Offset)
	sb.WriteString(fmt.Sprintf(`
		ORDER BY %s %s, mv.id %s
		LIMIT $%d OFFSET $%d`, orderColumn, direction, direction, len(args)-1, len(args)))

	return sb.String(), args, nil
}
