package menu

import "github.com/shopspring/decimal"

// Item is one menu entry built from a spreadsheet row. Items are immutable
// after the build and rebuilt wholesale on every refresh; identity across
// refreshes holds only for rows with an explicit id column.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Available   bool            `json:"available"`
}

// Category groups items sharing a category name, both sorted by name.
type Category struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Data is the full menu view: the flat available-item list plus the same
// items grouped by category. Both views derive from one filtered set, so
// the category groups partition the item list exactly.
type Data struct {
	Items      []Item     `json:"items"`
	Categories []Category `json:"categories"`
}

// DefaultCategory is assigned to rows without a category cell.
const DefaultCategory = "Outros"
