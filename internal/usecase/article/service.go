package article

import (
	"context"

	"blogful/internal/domain/entity"
	"blogful/internal/infra/db"
	"blogful/internal/repository"
	"blogful/internal/usecase/record"
)

// Schema maps entity.Article onto the blogful_articles table.
var Schema = record.Schema[entity.Article]{
	Table:   db.ArticlesTable,
	Columns: []string{"id", "title", "region", "content", "date_published"},
	Fields:  entity.ArticleFields,
	Scan:    scanArticle,
	Values:  entity.Article.Values,
}

func scanArticle(row repository.Scanner) (entity.Article, error) {
	var a entity.Article
	err := row.Scan(&a.ID, &a.Title, &a.Region, &a.Content, repository.Time(&a.DatePublished))
	return a, err
}

// Service provides article use cases. Every method takes the storage handle
// to run against; the zero value is not usable, use NewService.
type Service struct {
	records *record.Service[entity.Article]
}

// NewService returns an article Service.
func NewService() *Service {
	return &Service{records: record.New(Schema)}
}

// GetAllArticles returns every article. An empty table yields an empty slice.
func (s *Service) GetAllArticles(ctx context.Context, h repository.Handle) ([]entity.Article, error) {
	return s.records.ListAll(ctx, h)
}

// GetByID returns the article with id, or nil when there is none.
func (s *Service) GetByID(ctx context.Context, h repository.Handle, id int64) (*entity.Article, error) {
	return s.records.GetByID(ctx, h, id)
}

// InsertArticle stores a and returns it with its assigned id. A zero
// DatePublished takes the storage default.
func (s *Service) InsertArticle(ctx context.Context, h repository.Handle, a entity.Article) (entity.Article, error) {
	return s.records.Insert(ctx, h, a)
}

// UpdateArticle overwrites the given columns of article id and returns the
// number of rows changed.
func (s *Service) UpdateArticle(ctx context.Context, h repository.Handle, id int64, fields entity.Fields) (int64, error) {
	return s.records.Update(ctx, h, id, fields)
}

// DeleteArticle removes article id and returns the number of rows removed.
func (s *Service) DeleteArticle(ctx context.Context, h repository.Handle, id int64) (int64, error) {
	return s.records.DeleteByID(ctx, h, id)
}

// ByRegion returns the articles of region, newest first.
func (s *Service) ByRegion(ctx context.Context, h repository.Handle, region string) ([]entity.Article, error) {
	return s.records.Query(ctx, h, repository.SelectQuery{
		Where: []repository.Condition{repository.Eq("region", region)},
		OrderBy: []repository.Order{
			{Column: "date_published", Desc: true},
			{Column: "id"},
		},
	})
}

// Search returns the articles whose title contains term, ignoring case.
func (s *Service) Search(ctx context.Context, h repository.Handle, term string) ([]entity.Article, error) {
	return s.records.Query(ctx, h, repository.SelectQuery{
		Where:   []repository.Condition{repository.Contains("title", term)},
		OrderBy: []repository.Order{{Column: "id"}},
	})
}
