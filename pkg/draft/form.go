// Package draft models the in-progress recipe creation form: scalar fields,
// the two dynamic list editors, and the submit flow that writes through to
// the store scoped to the signed-in user.
package draft

import (
	"RecipeShare-Go/domain"
	"context"
	"strconv"
	"strings"
	"sync/atomic"
)

const (
	defaultCookingTime = 30
	defaultServings    = 4

	// Where a successful submit lands, discarding the draft.
	successPath = "/"
)

type (
	// IdentityResolver resolves the current identity at submit time. Both a
	// resolution failure and an absent identity block the submit.
	IdentityResolver interface {
		CurrentIdentity(ctx context.Context) (*domain.Identity, error)
	}

	// Store accepts the single atomic insert a submit produces.
	Store interface {
		CreateRecipe(ctx context.Context, record domain.RecipeRecord) (domain.Recipe, error)
	}

	Navigator interface {
		GoTo(path string)
	}

	// Form is one open creation draft. Not safe for use from multiple
	// goroutines except for Submit, which rejects overlapping calls.
	Form struct {
		Title        string
		Description  string
		ImageURL     string
		Ingredients  *ListField
		Instructions *ListField

		cookingTime int
		servings    int

		submitting atomic.Bool

		auth  IdentityResolver
		store Store
		nav   Navigator
	}
)

// NewForm returns a fresh draft: one blank slot per list, default timing and
// servings. onChange fires on every list-editor mutation and may be nil.
func NewForm(auth IdentityResolver, store Store, nav Navigator, onChange func()) *Form {
	return &Form{
		Ingredients:  NewListField(onChange),
		Instructions: NewListField(onChange),
		cookingTime:  defaultCookingTime,
		servings:     defaultServings,
		auth:         auth,
		store:        store,
		nav:          nav,
	}
}

func (f *Form) CookingTime() int {
	return f.cookingTime
}

func (f *Form) Servings() int {
	return f.servings
}

// SetCookingTime clamps to a minimum of one minute.
func (f *Form) SetCookingTime(minutes int) {
	if minutes < 1 {
		minutes = 1
	}
	f.cookingTime = minutes
}

// SetServings clamps to a minimum of one serving.
func (f *Form) SetServings(servings int) {
	if servings < 1 {
		servings = 1
	}
	f.servings = servings
}

// SetCookingTimeInput parses raw numeric input. Non-numeric input leaves the
// field unchanged, deferring to required-field validation instead of
// propagating a garbage value.
func (f *Form) SetCookingTimeInput(raw string) {
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		f.SetCookingTime(n)
	}
}

// SetServingsInput parses raw numeric input, ignoring non-numeric entries.
func (f *Form) SetServingsInput(raw string) {
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		f.SetServings(n)
	}
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	return f.submitting.Load()
}

// Submit resolves the current identity, compacts both lists, and issues one
// insert scoped to that identity. At most one submission is in flight per
// form; an overlapping call returns ErrSubmitInFlight without touching the
// store. On any failure the draft is left unchanged for retry.
func (f *Form) Submit(ctx context.Context) error {
	if !f.submitting.CompareAndSwap(false, true) {
		return domain.ErrSubmitInFlight
	}
	defer f.submitting.Store(false)

	identity, err := f.auth.CurrentIdentity(ctx)
	if err != nil || identity == nil {
		return domain.ErrAuthRequired
	}

	record := domain.RecipeRecord{
		Title:        f.Title,
		Description:  f.Description,
		Ingredients:  f.Ingredients.Compacted(),
		Instructions: f.Instructions.Compacted(),
		CookingTime:  f.cookingTime,
		Servings:     f.servings,
		ImageURL:     f.ImageURL,
		OwnerID:      identity.ID,
	}

	if _, err := f.store.CreateRecipe(ctx, record); err != nil {
		return err
	}

	f.nav.GoTo(successPath)
	return nil
}
