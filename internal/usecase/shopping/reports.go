package shopping

import (
	"context"
	"math"

	"blogful/internal/common/pagination"
	"blogful/internal/domain/entity"
	"blogful/internal/repository"
)

// ItemsPerPage is the page size of Paginate.
const ItemsPerPage = 6

// Page is one window of the shopping list.
type Page struct {
	Items      []entity.ShoppingItem `json:"items"`
	Pagination pagination.Metadata   `json:"pagination"`
}

// CategoryTotal is the summed price of one category, as a decimal string.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// SearchByName returns items whose name contains term, ignoring case.
func (s *Service) SearchByName(ctx context.Context, h repository.Handle, term string) ([]entity.ShoppingItem, error) {
	return s.records.Query(ctx, h, repository.SelectQuery{
		Where:   []repository.Condition{repository.Contains("name", term)},
		OrderBy: []repository.Order{{Column: "id"}},
	})
}

// Paginate returns page of the list, ItemsPerPage items per page in id
// order. Pages below 1 are treated as the first page; pages past the end
// are empty.
func (s *Service) Paginate(ctx context.Context, h repository.Handle, page int) (Page, error) {
	total, err := s.count(ctx, h)
	if err != nil {
		return Page{}, err
	}
	// offsets that would overflow lie past any table's end
	if pagination.NormalizePage(page)-1 > math.MaxInt/ItemsPerPage {
		return Page{
			Items:      []entity.ShoppingItem{},
			Pagination: pagination.NewMetadata(total, page, ItemsPerPage),
		}, nil
	}
	items, err := s.records.Query(ctx, h, repository.SelectQuery{
		OrderBy: []repository.Order{{Column: "id"}},
		Limit:   ItemsPerPage,
		Offset:  pagination.CalculateOffset(page, ItemsPerPage),
	})
	if err != nil {
		return Page{}, err
	}
	return Page{
		Items:      items,
		Pagination: pagination.NewMetadata(total, page, ItemsPerPage),
	}, nil
}

// AddedBefore returns items added more than daysAgo days ago, oldest first.
func (s *Service) AddedBefore(ctx context.Context, h repository.Handle, daysAgo int) ([]entity.ShoppingItem, error) {
	return s.records.Query(ctx, h, repository.SelectQuery{
		Where: []repository.Condition{repository.OlderThan("date_added", daysAgo)},
		OrderBy: []repository.Order{
			{Column: "date_added"},
			{Column: "id"},
		},
	})
}

// CategoryTotals returns the total price per category, ordered by category.
// Categories without items are absent.
func (s *Service) CategoryTotals(ctx context.Context, h repository.Handle) ([]CategoryTotal, error) {
	out := make([]CategoryTotal, 0, 4)
	err := h.Select(ctx, repository.SelectQuery{
		Table:      Schema.Table,
		Columns:    []string{"category"},
		Aggregates: []repository.Aggregate{{Func: repository.AggSum, Column: "price", Alias: "total"}},
		GroupBy:    []string{"category"},
		OrderBy:    []repository.Order{{Column: "category"}},
	}, func(row repository.Scanner) error {
		var ct CategoryTotal
		if err := row.Scan(&ct.Category, &ct.Total); err != nil {
			return err
		}
		out = append(out, ct)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) count(ctx context.Context, h repository.Handle) (int64, error) {
	var total int64
	err := h.Select(ctx, repository.SelectQuery{
		Table:      Schema.Table,
		Aggregates: []repository.Aggregate{{Func: repository.AggCount, Column: "id", Alias: "total"}},
	}, func(row repository.Scanner) error {
		return row.Scan(&total)
	})
	return total, err
}
