package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/restaurantelilica/cardapio-backend/api/middleware"
	"github.com/restaurantelilica/cardapio-backend/api/responses"
	"github.com/restaurantelilica/cardapio-backend/api/validators"
	"github.com/restaurantelilica/cardapio-backend/internal/cart"
	"github.com/restaurantelilica/cardapio-backend/internal/menu"
	pkgerrors "github.com/restaurantelilica/cardapio-backend/pkg/errors"
	"github.com/restaurantelilica/cardapio-backend/pkg/logger"
)

// CartService applies cart actions for a session.
type CartService interface {
	Get(ctx context.Context, sessionID string) cart.State
	Add(ctx context.Context, sessionID string, item menu.Item, quantity int) cart.State
	SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) cart.State
	Remove(ctx context.Context, sessionID, itemID string) cart.State
	Clear(ctx context.Context, sessionID string) cart.State
	Toggle(ctx context.Context, sessionID string, open *bool) cart.State
}

type cartLineView struct {
	Item     menuItemView `json:"item"`
	Quantity int          `json:"quantity"`
	Subtotal string       `json:"subtotal"`
}

type cartView struct {
	Lines           []cartLineView `json:"items"`
	ItemCount       int            `json:"itemCount"`
	Total           string         `json:"total"`
	FormattedTotal  string         `json:"formattedTotal"`
	IsOpen          bool           `json:"isOpen"`
	WhatsAppMessage string         `json:"whatsappMessage"`
	WhatsAppLink    string         `json:"whatsappLink"`
}

func newCartView(ctx context.Context, state cart.State, configService SiteConfigService) cartView {
	cfg := configService.Load(ctx)

	view := cartView{
		Lines:           make([]cartLineView, 0, len(state.Lines)),
		ItemCount:       state.ItemCount(),
		Total:           state.Total().StringFixed(2),
		FormattedTotal:  cart.FormatBRL(state.Total()),
		IsOpen:          state.IsOpen,
		WhatsAppMessage: cart.BuildWhatsAppMessage(state, cfg.RestaurantName),
		WhatsAppLink:    cart.BuildWhatsAppLink(state, cfg.RestaurantName, cfg.WhatsApp),
	}
	for _, line := range state.Lines {
		subtotal := line.Item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		view.Lines = append(view.Lines, cartLineView{
			Item:     newMenuItemView(line.Item),
			Quantity: line.Quantity,
			Subtotal: cart.FormatBRL(subtotal),
		})
	}
	return view
}

func cartSession(r *http.Request) (string, error) {
	sessionID := middleware.CartSessionID(r.Context())
	if sessionID == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "cart session missing from request context")
	}
	return sessionID, nil
}

// CartFetch returns the session cart view.
func CartFetch(cartService CartService, configService SiteConfigService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := cartService.Get(r.Context(), sessionID)
		responses.WriteSuccess(w, newCartView(r.Context(), state, configService))
	}
}

type cartAddRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity"`
}

// CartAddItem resolves the item against the current menu and merges it into
// the session cart. Unknown ids are 404; the menu only exposes available
// items, so an id that resolves is addable.
func CartAddItem(cartService CartService, menuService MenuService, configService SiteConfigService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req cartAddRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, ok := menuService.ItemByID(r.Context(), req.ItemID)
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found"))
			return
		}

		state := cartService.Add(r.Context(), sessionID, item, req.Quantity)
		responses.WriteSuccess(w, newCartView(r.Context(), state, configService))
	}
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartSetQuantity updates a line's quantity; zero removes the line.
func CartSetQuantity(cartService CartService, configService SiteConfigService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := cartService.SetQuantity(r.Context(), sessionID, chi.URLParam(r, "itemId"), req.Quantity)
		responses.WriteSuccess(w, newCartView(r.Context(), state, configService))
	}
}

// CartRemoveItem drops a line from the session cart.
func CartRemoveItem(cartService CartService, configService SiteConfigService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := cartService.Remove(r.Context(), sessionID, chi.URLParam(r, "itemId"))
		responses.WriteSuccess(w, newCartView(r.Context(), state, configService))
	}
}

// CartClear empties the session cart.
func CartClear(cartService CartService, configService SiteConfigService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := cartService.Clear(r.Context(), sessionID)
		responses.WriteSuccess(w, newCartView(r.Context(), state, configService))
	}
}

type cartToggleRequest struct {
	// Open forces visibility when present; absent flips it.
	Open *bool `json:"open"`
}

// CartToggle flips or forces the cart drawer visibility.
func CartToggle(cartService CartService, configService SiteConfigService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req cartToggleRequest
		if r.ContentLength > 0 {
			if err := validators.DecodeJSONBody(r, &req); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		state := cartService.Toggle(r.Context(), sessionID, req.Open)
		responses.WriteSuccess(w, newCartView(r.Context(), state, configService))
	}
}
