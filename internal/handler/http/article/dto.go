// Package article provides the HTTP handlers for /articles.
package article

import (
	"time"

	"blogful/internal/domain/entity"
	"blogful/internal/handler/http/decode"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Region        string    `json:"region"`
	Content       string    `json:"content"`
	DatePublished time.Time `json:"date_published"`
}

func toDTO(a entity.Article) DTO {
	return DTO{
		ID:            a.ID,
		Title:         a.Title,
		Region:        a.Region,
		Content:       a.Content,
		DatePublished: a.DatePublished,
	}
}

func toDTOs(list []entity.Article) []DTO {
	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	return out
}

// writeRequest is the body of POST and PATCH. Nil members are absent.
type writeRequest struct {
	Title         *string `json:"title"`
	Region        *string `json:"region"`
	Content       *string `json:"content"`
	DatePublished *string `json:"date_published"`
}

// fields returns the columns present in the request.
func (req writeRequest) fields() (entity.Fields, error) {
	f := entity.Fields{}
	if req.Title != nil {
		f["title"] = *req.Title
	}
	if req.Region != nil {
		f["region"] = *req.Region
	}
	if req.Content != nil {
		f["content"] = *req.Content
	}
	if req.DatePublished != nil {
		t, err := decode.Time("date_published", *req.DatePublished)
		if err != nil {
			return nil, err
		}
		f["date_published"] = t
	}
	return f, nil
}

// article builds the record to insert. An absent date leaves the storage
// default in place.
func (req writeRequest) article() (entity.Article, error) {
	var a entity.Article
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Region != nil {
		a.Region = *req.Region
	}
	if req.Content != nil {
		a.Content = *req.Content
	}
	if req.DatePublished != nil {
		t, err := decode.Time("date_published", *req.DatePublished)
		if err != nil {
			return entity.Article{}, err
		}
		a.DatePublished = t
	}
	return a, nil
}
