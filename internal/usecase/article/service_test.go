package article_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogful/internal/domain/entity"
	"blogful/internal/fixtures"
	"blogful/internal/infra/adapter/persistence/sqlstore"
	"blogful/internal/infra/db/dbtest"
	"blogful/internal/repository"
	"blogful/internal/usecase/article"
)

/*──────────────────── helpers ────────────────────*/

func seeded(t *testing.T) (*sqlstore.Store, []entity.Article) {
	t.Helper()
	store, _ := dbtest.NewStore(t)
	_, err := fixtures.Seed(context.Background(), store)
	require.NoError(t, err)
	want, err := fixtures.Articles()
	require.NoError(t, err)
	return store, want
}

/*──────────────────── given blogful_articles has data ────────────────────*/

func TestService_GetAllArticles(t *testing.T) {
	store, want := seeded(t)

	got, err := article.NewService().GetAllArticles(context.Background(), store)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)
}

func TestService_GetByID(t *testing.T) {
	store, want := seeded(t)
	svc := article.NewService()

	got, err := svc.GetByID(context.Background(), store, 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want[2], *got)

	missing, err := svc.GetByID(context.Background(), store, 42)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestService_UpdateArticle(t *testing.T) {
	store, _ := seeded(t)
	svc := article.NewService()
	ctx := context.Background()

	published := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	n, err := svc.UpdateArticle(ctx, store, 3, entity.Fields{
		"title":          "update title",
		"region":         "West",
		"content":        "update content",
		"date_published": published,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := svc.GetByID(ctx, store, 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.Article{
		ID:            3,
		Title:         "update title",
		Region:        "West",
		Content:       "update content",
		DatePublished: published,
	}, *got)
}

func TestService_UpdateArticle_Partial(t *testing.T) {
	store, want := seeded(t)
	svc := article.NewService()
	ctx := context.Background()

	_, err := svc.UpdateArticle(ctx, store, 1, entity.Fields{"title": "Renamed"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, store, 1)
	require.NoError(t, err)
	require.NotNil(t, got)

	expected := want[0]
	expected.Title = "Renamed"
	assert.Equal(t, expected, *got)
}

func TestService_UpdateArticle_RejectsFields(t *testing.T) {
	store, want := seeded(t)
	svc := article.NewService()
	ctx := context.Background()

	tests := []struct {
		name   string
		fields entity.Fields
		target error
	}{
		{"unknown column", entity.Fields{"author": "x"}, entity.ErrUnknownField},
		{"identity", entity.Fields{"id": int64(9)}, entity.ErrImmutableField},
		{"empty", entity.Fields{}, entity.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := svc.UpdateArticle(ctx, store, 1, tt.fields)
			assert.Zero(t, n)
			assert.ErrorIs(t, err, tt.target)

			var vErr *entity.ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}

	got, err := svc.GetAllArticles(ctx, store)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)
}

func TestService_DeleteArticle(t *testing.T) {
	store, want := seeded(t)
	svc := article.NewService()
	ctx := context.Background()

	n, err := svc.DeleteArticle(ctx, store, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := svc.GetAllArticles(ctx, store)
	require.NoError(t, err)
	assert.ElementsMatch(t, want[:2], got)
}

func TestService_MissingIDLeavesTableUnchanged(t *testing.T) {
	store, want := seeded(t)
	svc := article.NewService()
	ctx := context.Background()

	n, err := svc.UpdateArticle(ctx, store, 99, entity.Fields{"title": "ghost"})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = svc.DeleteArticle(ctx, store, 99)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := svc.GetAllArticles(ctx, store)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)
}

func TestService_ByRegionAndSearch(t *testing.T) {
	store, want := seeded(t)
	svc := article.NewService()
	ctx := context.Background()

	_, err := svc.InsertArticle(ctx, store, entity.Article{
		Title: "Notes from Lagos", Region: "Africa", Content: "c",
		DatePublished: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	west, err := svc.ByRegion(ctx, store, "West")
	require.NoError(t, err)
	// newest first: 2100, 2029, 1919
	assert.Equal(t, []entity.Article{want[1], want[0], want[2]}, west)

	none, err := svc.ByRegion(ctx, store, "Asia")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	found, err := svc.Search(ctx, store, "SECOND")
	require.NoError(t, err)
	assert.Equal(t, []entity.Article{want[1]}, found)

	found, err = svc.Search(ctx, store, "post!")
	require.NoError(t, err)
	assert.Len(t, found, 3)
}

/*──────────────────── given blogful_articles has no data ────────────────────*/

func TestService_GetAllArticles_Empty(t *testing.T) {
	store, _ := dbtest.NewStore(t)

	got, err := article.NewService().GetAllArticles(context.Background(), store)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestService_InsertArticle(t *testing.T) {
	store, _ := dbtest.NewStore(t)
	svc := article.NewService()
	ctx := context.Background()

	published := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := svc.InsertArticle(ctx, store, entity.Article{
		Title:         "T",
		Region:        "West",
		Content:       "C",
		DatePublished: published,
	})
	require.NoError(t, err)
	want := entity.Article{ID: 1, Title: "T", Region: "West", Content: "C", DatePublished: published}
	assert.Equal(t, want, got)

	stored, err := svc.GetByID(ctx, store, got.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, want, *stored)
}

func TestService_InsertArticle_DefaultDate(t *testing.T) {
	store, _ := dbtest.NewStore(t)

	before := time.Now().UTC().Add(-time.Minute)
	got, err := article.NewService().InsertArticle(context.Background(), store,
		entity.Article{Title: "Undated", Region: "Asia"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.True(t, got.DatePublished.After(before), "storage default should be now, got %v", got.DatePublished)
}

func TestService_InsertArticle_AnyRegion(t *testing.T) {
	store, _ := dbtest.NewStore(t)
	svc := article.NewService()

	got, err := svc.InsertArticle(context.Background(), store,
		entity.Article{Title: "T", Region: "East", Content: "C"})
	require.NoError(t, err)
	assert.Equal(t, "East", got.Region)

	list, err := svc.ByRegion(context.Background(), store, "East")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, got.ID, list[0].ID)
}

func TestService_InsertArticle_ConstraintViolation(t *testing.T) {
	store, _ := seeded(t)
	ctx := context.Background()

	// a row written through the handle with an id the fixtures already hold
	dup := entity.Fields{"id": int64(1), "title": "Dup", "region": "West", "content": ""}
	err := store.InsertReturning(ctx, article.Schema.Table, dup, []string{"id"},
		func(repository.Scanner) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)

	all, err := article.NewService().GetAllArticles(ctx, store)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
