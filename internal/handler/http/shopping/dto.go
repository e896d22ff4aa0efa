// Package shopping provides the HTTP handlers for /shopping-list.
package shopping

import (
	"encoding/json"
	"time"

	"blogful/internal/common/pagination"
	"blogful/internal/domain/entity"
	"blogful/internal/handler/http/decode"
)

// DTO represents the JSON structure for shopping list items.
type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Category  string    `json:"category"`
	DateAdded time.Time `json:"date_added"`
	Checked   bool      `json:"checked"`
}

// PageDTO is one page of the list.
type PageDTO struct {
	Items      []DTO               `json:"items"`
	Pagination pagination.Metadata `json:"pagination"`
}

// ToDTO maps an item to its JSON shape.
func ToDTO(it entity.ShoppingItem) DTO {
	return DTO{
		ID:        it.ID,
		Name:      it.Name,
		Price:     it.Price,
		Category:  it.Category,
		DateAdded: it.DateAdded,
		Checked:   it.Checked,
	}
}

// ToDTOs maps items, returning an empty slice for none.
func ToDTOs(list []entity.ShoppingItem) []DTO {
	out := make([]DTO, 0, len(list))
	for _, it := range list {
		out = append(out, ToDTO(it))
	}
	return out
}

// writeRequest is the body of POST and PATCH. Price accepts a JSON number
// or a numeric string.
type writeRequest struct {
	Name      *string      `json:"name"`
	Price     *json.Number `json:"price"`
	Category  *string      `json:"category"`
	DateAdded *string      `json:"date_added"`
	Checked   *bool        `json:"checked"`
}

func (req writeRequest) fields() (entity.Fields, error) {
	f := entity.Fields{}
	if req.Name != nil {
		f["name"] = *req.Name
	}
	if req.Price != nil {
		f["price"] = req.Price.String()
	}
	if req.Category != nil {
		f["category"] = *req.Category
	}
	if req.DateAdded != nil {
		t, err := decode.Time("date_added", *req.DateAdded)
		if err != nil {
			return nil, err
		}
		f["date_added"] = t
	}
	if req.Checked != nil {
		f["checked"] = *req.Checked
	}
	return f, nil
}

func (req writeRequest) item() (entity.ShoppingItem, error) {
	var it entity.ShoppingItem
	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Price != nil {
		it.Price = req.Price.String()
	}
	if req.Category != nil {
		it.Category = *req.Category
	}
	if req.DateAdded != nil {
		t, err := decode.Time("date_added", *req.DateAdded)
		if err != nil {
			return entity.ShoppingItem{}, err
		}
		it.DateAdded = t
	}
	if req.Checked != nil {
		it.Checked = *req.Checked
	}
	return it, nil
}
