package menu

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/restaurantelilica/cardapio-backend/internal/csv"
)

// availabilityTruthy is the token set that marks a row as available. Any
// other non-empty value means unavailable; an empty cell means available.
var availabilityTruthy = map[string]struct{}{
	"sim":  {},
	"yes":  {},
	"true": {},
	"1":    {},
}

// Builder turns menu CSV text into sorted, filtered items. The comparator
// is injected so the ordering contract (pt-BR collation in production) is
// explicit and testable.
type Builder struct {
	compare func(a, b string) int
}

// NewBuilder returns a builder ordering names under the given collator.
func NewBuilder(col *collate.Collator) *Builder {
	return &Builder{compare: col.CompareString}
}

// NewDefaultBuilder orders names with Brazilian Portuguese collation.
func NewDefaultBuilder() *Builder {
	return NewBuilder(collate.New(language.BrazilianPortuguese))
}

// BuildItems maps CSV text to menu items: flexible header matching, price
// and availability sanitization, empty-name and unavailable rows dropped,
// result sorted by name. Rows without an id get a generated one, so their
// identity does not survive a reload.
func (b *Builder) BuildItems(csvText string) []Item {
	rows := csv.NonEmptyRows(csv.SplitRows(csvText))
	if len(rows) == 0 {
		return nil
	}

	headerFields := csv.ParseFields(csv.StripBOM(rows[0]))
	headers := make([]string, len(headerFields))
	for i, field := range headerFields {
		headers[i] = csv.NormalizeHeader(field)
	}

	idIdx := csv.FindColumn(headers, "id")
	nameIdx := csv.FindColumn(headers, "nome", "name")
	categoryIdx := csv.FindColumn(headers, "categoria", "category")
	// Headers are already diacritic-folded, so "Descrição" matches "descricao".
	descriptionIdx := csv.FindColumn(headers, "descricao", "description")
	priceIdx := csv.FindColumn(headers, "preco", "price")
	imageIdx := csv.FindColumn(headers, "imagem url", "imagem", "image", "image url")
	availabilityIdx := csv.FindColumn(headers, "disponivel", "available")

	var items []Item
	for _, row := range rows[1:] {
		fields := csv.ParseFields(row)

		name := csv.Cell(fields, nameIdx)
		if name == "" {
			continue
		}

		available := true
		if availabilityIdx >= 0 {
			available = ParseAvailability(csv.Cell(fields, availabilityIdx))
		}
		if !available {
			continue
		}

		id := csv.Cell(fields, idIdx)
		if id == "" {
			id = uuid.NewString()
		}

		category := csv.Cell(fields, categoryIdx)
		if category == "" {
			category = DefaultCategory
		}

		items = append(items, Item{
			ID:          id,
			Name:        name,
			Category:    category,
			Description: csv.Cell(fields, descriptionIdx),
			Price:       SanitizePrice(csv.Cell(fields, priceIdx)),
			ImageURL:    csv.Cell(fields, imageIdx),
			Available:   true,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return b.compare(items[i].Name, items[j].Name) < 0
	})

	return items
}

// GroupByCategory partitions items into name-sorted category groups. Items
// keep their relative (already sorted) order inside each group.
func (b *Builder) GroupByCategory(items []Item) []Category {
	grouped := map[string][]Item{}
	var names []string
	for _, item := range items {
		key := item.Category
		if key == "" {
			key = DefaultCategory
		}
		if _, ok := grouped[key]; !ok {
			names = append(names, key)
		}
		grouped[key] = append(grouped[key], item)
	}

	sort.SliceStable(names, func(i, j int) bool {
		return b.compare(names[i], names[j]) < 0
	})

	categories := make([]Category, 0, len(names))
	for _, name := range names {
		group := grouped[name]
		sort.SliceStable(group, func(i, j int) bool {
			return b.compare(group[i].Name, group[j].Name) < 0
		})
		categories = append(categories, Category{Name: name, Items: group})
	}
	return categories
}

// BuildData builds the complete menu view from CSV text.
func (b *Builder) BuildData(csvText string) Data {
	items := b.BuildItems(csvText)
	return Data{Items: items, Categories: b.GroupByCategory(items)}
}

// SanitizePrice parses Brazilian-formatted money cells: currency symbol and
// whitespace stripped, "." treated as thousands separator, "," as decimal
// separator. Unparseable or negative values become zero.
func SanitizePrice(raw string) decimal.Decimal {
	normalized := strings.NewReplacer("R$", "", "r$", "", " ", "", "\t", "", ".", "").Replace(raw)
	normalized = strings.ReplaceAll(normalized, ",", ".")
	if normalized == "" {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(normalized)
	if err != nil || price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// ParseAvailability maps an availability cell to a boolean. Empty means
// available; otherwise only the truthy tokens count, case-insensitively.
func ParseAvailability(raw string) bool {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return true
	}
	_, ok := availabilityTruthy[normalized]
	return ok
}
