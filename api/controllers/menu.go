package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/restaurantelilica/cardapio-backend/api/responses"
	"github.com/restaurantelilica/cardapio-backend/internal/cart"
	"github.com/restaurantelilica/cardapio-backend/internal/menu"
	pkgerrors "github.com/restaurantelilica/cardapio-backend/pkg/errors"
	"github.com/restaurantelilica/cardapio-backend/pkg/logger"
)

// MenuService is the slice of the menu loader the controllers consume.
type MenuService interface {
	Load(ctx context.Context) menu.Data
	ItemByID(ctx context.Context, id string) (menu.Item, bool)
}

type menuItemView struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	FormattedPrice string          `json:"formattedPrice"`
	ImageSrc       string          `json:"imageSrc"`
	Available      bool            `json:"available"`
}

type menuCategoryView struct {
	Name  string         `json:"name"`
	Items []menuItemView `json:"items"`
}

type menuView struct {
	Items      []menuItemView     `json:"items"`
	Categories []menuCategoryView `json:"categories"`
}

func newMenuItemView(item menu.Item) menuItemView {
	return menuItemView{
		ID:             item.ID,
		Name:           item.Name,
		Category:       item.Category,
		Description:    item.Description,
		Price:          item.Price,
		FormattedPrice: cart.FormatBRL(item.Price),
		ImageSrc:       menu.ImageSrc(item.ImageURL),
		Available:      item.Available,
	}
}

func newMenuView(data menu.Data) menuView {
	view := menuView{
		Items:      make([]menuItemView, 0, len(data.Items)),
		Categories: make([]menuCategoryView, 0, len(data.Categories)),
	}
	for _, item := range data.Items {
		view.Items = append(view.Items, newMenuItemView(item))
	}
	for _, category := range data.Categories {
		group := menuCategoryView{Name: category.Name, Items: make([]menuItemView, 0, len(category.Items))}
		for _, item := range category.Items {
			group.Items = append(group.Items, newMenuItemView(item))
		}
		view.Categories = append(view.Categories, group)
	}
	return view
}

// MenuFetch serves the full menu: the flat item list plus category groups.
func MenuFetch(menuService MenuService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, newMenuView(menuService.Load(r.Context())))
	}
}

// MenuItemDetail resolves a single item by id from the cached menu.
func MenuItemDetail(menuService MenuService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemId")

		item, ok := menuService.ItemByID(r.Context(), itemID)
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found"))
			return
		}

		responses.WriteSuccess(w, newMenuItemView(item))
	}
}
