package draft

import (
	"RecipeShare-Go/domain"
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	identity *domain.Identity
	err      error
}

func (r *fakeResolver) CurrentIdentity(ctx context.Context) (*domain.Identity, error) {
	return r.identity, r.err
}

type fakeStore struct {
	inserts int32
	records []domain.RecipeRecord
	err     error

	// when set, CreateRecipe signals entered and blocks until release closes
	entered chan struct{}
	release chan struct{}
}

func (s *fakeStore) CreateRecipe(ctx context.Context, record domain.RecipeRecord) (domain.Recipe, error) {
	atomic.AddInt32(&s.inserts, 1)
	if s.entered != nil {
		s.entered <- struct{}{}
		<-s.release
	}
	s.records = append(s.records, record)
	if s.err != nil {
		return domain.Recipe{}, s.err
	}
	return domain.Recipe{ID: "r1", Title: record.Title, OwnerID: record.OwnerID}, nil
}

type fakeNav struct {
	paths []string
}

func (n *fakeNav) GoTo(path string) {
	n.paths = append(n.paths, path)
}

func newTestForm(resolver *fakeResolver, store *fakeStore, nav *fakeNav) *Form {
	return NewForm(resolver, store, nav, nil)
}

func TestNewFormDefaults(t *testing.T) {
	f := newTestForm(&fakeResolver{}, &fakeStore{}, &fakeNav{})

	assert.Equal(t, 30, f.CookingTime())
	assert.Equal(t, 4, f.Servings())
	assert.Equal(t, 1, f.Ingredients.Len())
	assert.Equal(t, 1, f.Instructions.Len())
	assert.False(t, f.Submitting())
}

func TestSubmitFiltersBlanksAndScopesOwner(t *testing.T) {
	resolver := &fakeResolver{identity: &domain.Identity{ID: "u1"}}
	store := &fakeStore{}
	nav := &fakeNav{}
	f := newTestForm(resolver, store, nav)

	f.Title = "Soup"
	f.Description = "Warm"
	f.Ingredients.UpdateAt(0, "")
	f.Ingredients.Append()
	f.Ingredients.UpdateAt(1, "salt")
	f.Instructions.UpdateAt(0, "Boil")
	f.SetCookingTime(10)
	f.SetServings(2)

	err := f.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, store.records, 1)
	got := store.records[0]
	assert.Equal(t, "Soup", got.Title)
	assert.Equal(t, "Warm", got.Description)
	assert.Equal(t, []string{"salt"}, got.Ingredients)
	assert.Equal(t, []string{"Boil"}, got.Instructions)
	assert.Equal(t, 10, got.CookingTime)
	assert.Equal(t, 2, got.Servings)
	assert.Equal(t, "u1", got.OwnerID)

	assert.Equal(t, []string{"/"}, nav.paths)
	assert.False(t, f.Submitting())
}

func TestSubmitAllBlankListsSubmitEmpty(t *testing.T) {
	// All-blank lists go through as empty arrays rather than being rejected.
	resolver := &fakeResolver{identity: &domain.Identity{ID: "u1"}}
	store := &fakeStore{}
	f := newTestForm(resolver, store, &fakeNav{})
	f.Title = "Air"
	f.Description = "Nothing to it"

	err := f.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, store.records, 1)
	assert.Empty(t, store.records[0].Ingredients)
	assert.Empty(t, store.records[0].Instructions)
	assert.NotNil(t, store.records[0].Ingredients)
}

func TestSubmitWithoutIdentity(t *testing.T) {
	store := &fakeStore{}
	nav := &fakeNav{}
	f := newTestForm(&fakeResolver{identity: nil}, store, nav)
	f.Title = "Soup"

	err := f.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.Zero(t, store.inserts)
	assert.Empty(t, nav.paths)
	// draft retained for correction
	assert.Equal(t, "Soup", f.Title)
	assert.False(t, f.Submitting())
}

func TestSubmitResolverFailureBlocksLikeAbsence(t *testing.T) {
	store := &fakeStore{}
	f := newTestForm(&fakeResolver{err: errors.New("network down")}, store, &fakeNav{})

	err := f.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.Zero(t, store.inserts)
}

func TestSubmitStoreFailureRetainsDraft(t *testing.T) {
	resolver := &fakeResolver{identity: &domain.Identity{ID: "u1"}}
	store := &fakeStore{err: errors.New("insert rejected")}
	nav := &fakeNav{}
	f := newTestForm(resolver, store, nav)
	f.Title = "Stew"
	f.Ingredients.UpdateAt(0, "beef")

	err := f.Submit(context.Background())

	require.Error(t, err)
	assert.Empty(t, nav.paths)
	assert.Equal(t, "Stew", f.Title)
	assert.Equal(t, []string{"beef"}, f.Ingredients.Values())
	assert.False(t, f.Submitting())

	// retry works once the store recovers
	store.err = nil
	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, []string{"/"}, nav.paths)
}

func TestSubmitRejectsOverlappingCall(t *testing.T) {
	resolver := &fakeResolver{identity: &domain.Identity{ID: "u1"}}
	store := &fakeStore{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	f := newTestForm(resolver, store, &fakeNav{})
	f.Title = "Soup"

	done := make(chan error, 1)
	go func() {
		done <- f.Submit(context.Background())
	}()

	<-store.entered // first submit is inside the insert call
	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrSubmitInFlight)

	close(store.release)
	require.NoError(t, <-done)

	assert.Equal(t, int32(1), atomic.LoadInt32(&store.inserts))
}

func TestScalarSettersClampToOne(t *testing.T) {
	f := newTestForm(&fakeResolver{}, &fakeStore{}, &fakeNav{})

	f.SetCookingTime(0)
	assert.Equal(t, 1, f.CookingTime())
	f.SetServings(-3)
	assert.Equal(t, 1, f.Servings())
}

func TestScalarInputParsing(t *testing.T) {
	f := newTestForm(&fakeResolver{}, &fakeStore{}, &fakeNav{})

	f.SetCookingTimeInput("45")
	assert.Equal(t, 45, f.CookingTime())

	// non-numeric input never propagates
	f.SetCookingTimeInput("abc")
	assert.Equal(t, 45, f.CookingTime())

	f.SetServingsInput(" 6 ")
	assert.Equal(t, 6, f.Servings())
	f.SetServingsInput("")
	assert.Equal(t, 6, f.Servings())
	f.SetServingsInput("0")
	assert.Equal(t, 1, f.Servings())
}
