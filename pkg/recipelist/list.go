// Package recipelist models the signed-in user's recipe overview: an
// owner-scoped, newest-first fetch plus the read-only card projection.
package recipelist

import (
	"RecipeShare-Go/domain"
	"RecipeShare-Go/pkg/session"
	"context"
	"log"
)

// Where anonymous visitors are sent instead of loading.
const signInPath = "/auth"

type (
	// Reader is the owner-scoped select the list depends on.
	Reader interface {
		RecipesByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error)
	}

	Navigator interface {
		GoTo(path string)
	}

	// List holds the fetch state for one rendering of the overview.
	List struct {
		recipes []domain.Recipe
		loading bool

		session session.Session
		reader  Reader
		nav     Navigator
	}
)

func NewList(sess session.Session, reader Reader, nav Navigator) *List {
	return &List{
		loading: true,
		session: sess,
		reader:  reader,
		nav:     nav,
	}
}

// Load fetches the current user's recipes, newest first. Without an identity
// it navigates to the sign-in surface and never queries. A failed fetch
// leaves the list empty and is logged only; there is no retry.
func (l *List) Load(ctx context.Context) {
	identity := l.session.Current()
	if identity == nil {
		l.nav.GoTo(signInPath)
		return
	}

	recipes, err := l.reader.RecipesByOwner(ctx, identity.ID)
	if err != nil {
		log.Printf("recipelist: fetching recipes: %v", err)
		l.loading = false
		return
	}

	l.recipes = recipes
	l.loading = false
}

func (l *List) Loading() bool {
	return l.loading
}

// Empty reports whether the load finished with nothing to show.
func (l *List) Empty() bool {
	return !l.loading && len(l.recipes) == 0
}

// Recipes returns the fetched records in query order.
func (l *List) Recipes() []domain.Recipe {
	out := make([]domain.Recipe, len(l.recipes))
	copy(out, l.recipes)
	return out
}

// Summaries projects the fetched records into card views, preserving order.
func (l *List) Summaries() []Summary {
	out := make([]Summary, 0, len(l.recipes))
	for _, r := range l.recipes {
		out = append(out, Summarize(r))
	}
	return out
}
