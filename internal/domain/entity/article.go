// Package entity defines the records owned by storage and the field sets used
// to validate partial updates against them.
package entity

import "time"

// Article is one row of the blogful_articles table.
type Article struct {
	ID            int64
	Title         string
	Region        string
	Content       string
	DatePublished time.Time
}

// ArticleFields lists the writable columns of blogful_articles.
var ArticleFields = NewFieldSet("title", "region", "content", "date_published")

// Values returns the columns to insert for a. A zero DatePublished is left
// out so the storage default applies.
func (a Article) Values() Fields {
	f := Fields{
		"title":   a.Title,
		"region":  a.Region,
		"content": a.Content,
	}
	if !a.DatePublished.IsZero() {
		f["date_published"] = a.DatePublished
	}
	return f
}
