package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/humanbelnik/movierama/core/internal/model"
)

// Renderer owns the site's template set. Full pages go through gin
// (engine.SetHTMLTemplate receives the same set); the feed endpoint
// renders the movies_list partial to a string so it can travel inside
// a JSON payload.
type Renderer struct {
	tmpl *template.Template
}

// deref lets templates branch on a viewer's *bool vote value; the nil
// case is already handled by the surrounding {{if}}.
var funcs = template.FuncMap{
	"deref": func(b *bool) bool { return b != nil && *b },
}

func New(glob string) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseGlob(glob)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

func Must(glob string) *Renderer {
	r, err := New(glob)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

type MoviesListData struct {
	User   *model.User
	Movies []model.MovieCard
}

// MoviesList renders one feed page as an HTML fragment.
func (r *Renderer) MoviesList(user *model.User, movies []model.MovieCard) (string, error) {
	var sb strings.Builder
	err := r.tmpl.ExecuteTemplate(&sb, "movies_list", MoviesListData{
		User:   user,
		Movies: movies,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render movies list: %w", err)
	}

	return sb.String(), nil
}
