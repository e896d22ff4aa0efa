package shopping

import (
	"context"

	"blogful/internal/domain/entity"
	"blogful/internal/infra/db"
	"blogful/internal/repository"
	"blogful/internal/usecase/record"
)

// Schema maps entity.ShoppingItem onto the shopping_list table.
var Schema = record.Schema[entity.ShoppingItem]{
	Table:   db.ShoppingListTable,
	Columns: []string{"id", "name", "price", "category", "date_added", "checked"},
	Fields:  entity.ShoppingItemFields,
	Scan:    scanItem,
	Values:  entity.ShoppingItem.Values,
}

func scanItem(row repository.Scanner) (entity.ShoppingItem, error) {
	var it entity.ShoppingItem
	err := row.Scan(&it.ID, &it.Name, &it.Price, &it.Category, repository.Time(&it.DateAdded), &it.Checked)
	return it, err
}

// Service provides shopping list use cases against a caller-supplied handle.
type Service struct {
	records *record.Service[entity.ShoppingItem]
}

// NewService returns a shopping list Service.
func NewService() *Service {
	return &Service{records: record.New(Schema)}
}

// GetAllItems returns every item. An empty list yields an empty slice.
func (s *Service) GetAllItems(ctx context.Context, h repository.Handle) ([]entity.ShoppingItem, error) {
	return s.records.ListAll(ctx, h)
}

// GetByID returns the item with id, or nil when there is none.
func (s *Service) GetByID(ctx context.Context, h repository.Handle, id int64) (*entity.ShoppingItem, error) {
	return s.records.GetByID(ctx, h, id)
}

// InsertItem stores it and returns the stored row. Checked defaults to false
// and a zero DateAdded to the time of insert.
func (s *Service) InsertItem(ctx context.Context, h repository.Handle, it entity.ShoppingItem) (entity.ShoppingItem, error) {
	return s.records.Insert(ctx, h, it)
}

// UpdateItem overwrites the given columns of item id and returns the number
// of rows changed.
func (s *Service) UpdateItem(ctx context.Context, h repository.Handle, id int64, fields entity.Fields) (int64, error) {
	return s.records.Update(ctx, h, id, fields)
}

// DeleteItem removes item id and returns the number of rows removed.
func (s *Service) DeleteItem(ctx context.Context, h repository.Handle, id int64) (int64, error) {
	return s.records.DeleteByID(ctx, h, id)
}
