package entity

import "time"

// Grocery categories accepted by the shopping_list table.
const (
	CategoryMain      = "Main"
	CategorySnack     = "Snack"
	CategoryLunch     = "Lunch"
	CategoryBreakfast = "Breakfast"
)

// ShoppingItem is one row of the shopping_list table.
// Price is kept as the decimal string storage hands back.
type ShoppingItem struct {
	ID        int64
	Name      string
	Price     string
	Category  string
	DateAdded time.Time
	Checked   bool
}

// ShoppingItemFields lists the writable columns of shopping_list.
var ShoppingItemFields = NewFieldSet("name", "price", "category", "date_added", "checked")

// Values returns the columns to insert for i. Columns that carry a storage
// default (date_added, checked) are only sent when set.
func (i ShoppingItem) Values() Fields {
	f := Fields{
		"name":     i.Name,
		"price":    i.Price,
		"category": i.Category,
	}
	if !i.DateAdded.IsZero() {
		f["date_added"] = i.DateAdded
	}
	if i.Checked {
		f["checked"] = true
	}
	return f
}
