// Package fixtures holds the sample articles and grocery items used by tests
// and by the drills seed command.
package fixtures

import (
	"context"
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"blogful/internal/domain/entity"
	"blogful/internal/infra/db"
	"blogful/internal/repository"
)

//go:embed data/*.yaml
var files embed.FS

type article struct {
	ID            int64     `yaml:"id"`
	Title         string    `yaml:"title"`
	Region        string    `yaml:"region"`
	Content       string    `yaml:"content"`
	DatePublished time.Time `yaml:"date_published"`
}

type shoppingItem struct {
	ID        int64     `yaml:"id"`
	Name      string    `yaml:"name"`
	Price     string    `yaml:"price"`
	Category  string    `yaml:"category"`
	DateAdded time.Time `yaml:"date_added"`
	Checked   bool      `yaml:"checked"`
}

func load(name string, out any) error {
	raw, err := files.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return nil
}

// Articles returns the sample articles with their fixed ids.
func Articles() ([]entity.Article, error) {
	var rows []article
	if err := load("articles.yaml", &rows); err != nil {
		return nil, err
	}
	out := make([]entity.Article, len(rows))
	for i, r := range rows {
		out[i] = entity.Article{
			ID:            r.ID,
			Title:         r.Title,
			Region:        r.Region,
			Content:       r.Content,
			DatePublished: r.DatePublished.UTC(),
		}
	}
	return out, nil
}

// ShoppingItems returns the sample grocery items with their fixed ids.
func ShoppingItems() ([]entity.ShoppingItem, error) {
	var rows []shoppingItem
	if err := load("shopping_list.yaml", &rows); err != nil {
		return nil, err
	}
	out := make([]entity.ShoppingItem, len(rows))
	for i, r := range rows {
		out[i] = entity.ShoppingItem{
			ID:        r.ID,
			Name:      r.Name,
			Price:     r.Price,
			Category:  r.Category,
			DateAdded: r.DateAdded.UTC(),
			Checked:   r.Checked,
		}
	}
	return out, nil
}

// Seed inserts every fixture through h, keeping the fixture ids. It returns
// the number of rows written. On PostgreSQL the identity sequences must be
// synced afterwards with db.SyncSequences.
func Seed(ctx context.Context, h repository.Handle) (int, error) {
	articles, err := Articles()
	if err != nil {
		return 0, err
	}
	items, err := ShoppingItems()
	if err != nil {
		return 0, err
	}

	n := 0
	for _, a := range articles {
		f := a.Values()
		f["id"] = a.ID
		if err := insert(ctx, h, db.ArticlesTable, f); err != nil {
			return n, err
		}
		n++
	}
	for _, it := range items {
		f := it.Values()
		f["id"] = it.ID
		f["checked"] = it.Checked
		if err := insert(ctx, h, db.ShoppingListTable, f); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func insert(ctx context.Context, h repository.Handle, table string, f entity.Fields) error {
	return h.InsertReturning(ctx, table, f, []string{"id"}, func(repository.Scanner) error { return nil })
}
