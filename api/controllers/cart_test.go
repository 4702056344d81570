package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/restaurantelilica/cardapio-backend/api/middleware"
	"github.com/restaurantelilica/cardapio-backend/internal/siteconfig"
	"github.com/restaurantelilica/cardapio-backend/pkg/config"
)

func cartTestRouter() (chi.Router, *stubMenuService) {
	menuSvc := &stubMenuService{data: fixtureMenu()}
	configSvc := &stubConfigService{cfg: siteconfig.WithComputed{
		SiteConfig:   siteconfig.SiteConfig{RestaurantName: "Restaurante Lilica", WhatsApp: "5511999990000"},
		WhatsAppLink: "https://wa.me/5511999990000",
	}}
	cartSvc := newCartService()
	logg := quietLogger()

	r := chi.NewRouter()
	r.Use(middleware.CartSession(config.CartConfig{CookieName: "cart_session", SessionTTL: 72 * time.Hour}, logg))
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", CartFetch(cartSvc, configSvc, logg))
		r.Delete("/", CartClear(cartSvc, configSvc, logg))
		r.Post("/items", CartAddItem(cartSvc, menuSvc, configSvc, logg))
		r.Patch("/items/{itemId}", CartSetQuantity(cartSvc, configSvc, logg))
		r.Delete("/items/{itemId}", CartRemoveItem(cartSvc, configSvc, logg))
		r.Post("/toggle", CartToggle(cartSvc, configSvc, logg))
	})
	return r, menuSvc
}

func decodeCartView(t *testing.T, rec *httptest.ResponseRecorder) cartView {
	t.Helper()
	var envelope struct {
		Data cartView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return envelope.Data
}

// do executes a request carrying the session cookie from a prior response.
func do(t *testing.T, r http.Handler, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "cart_session" {
			return cookie
		}
	}
	t.Fatal("expected a cart_session cookie")
	return nil
}

func TestCartFetchEmpty(t *testing.T) {
	t.Parallel()

	r, _ := cartTestRouter()
	rec := do(t, r, http.MethodGet, "/api/v1/cart", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	view := decodeCartView(t, rec)
	if view.ItemCount != 0 || view.FormattedTotal != "R$ 0,00" {
		t.Fatalf("unexpected empty view: %+v", view)
	}
	if view.WhatsAppMessage != "Olá, gostaria de fazer um pedido!" {
		t.Fatalf("empty cart must carry the greeting, got %q", view.WhatsAppMessage)
	}
}

func TestCartAddAndFetchSameSession(t *testing.T) {
	t.Parallel()

	r, _ := cartTestRouter()

	rec := do(t, r, http.MethodPost, "/api/v1/cart/items", `{"itemId":"a","quantity":2}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected add status: %d body %s", rec.Code, rec.Body.String())
	}
	cookie := sessionCookie(t, rec)

	view := decodeCartView(t, rec)
	if view.ItemCount != 2 || !view.IsOpen {
		t.Fatalf("unexpected view after add: %+v", view)
	}
	if view.FormattedTotal != "R$ 50,00" {
		t.Fatalf("unexpected total: %q", view.FormattedTotal)
	}
	if !strings.Contains(view.WhatsAppMessage, "1. Acarajé x2") {
		t.Fatalf("unexpected message: %q", view.WhatsAppMessage)
	}

	rec = do(t, r, http.MethodGet, "/api/v1/cart", "", cookie)
	view = decodeCartView(t, rec)
	if view.ItemCount != 2 {
		t.Fatalf("cart must persist within the session, got %+v", view)
	}
}

func TestCartAddUnknownItem(t *testing.T) {
	t.Parallel()

	r, _ := cartTestRouter()
	rec := do(t, r, http.MethodPost, "/api/v1/cart/items", `{"itemId":"missing"}`, nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestCartSetQuantityAndRemove(t *testing.T) {
	t.Parallel()

	r, _ := cartTestRouter()

	rec := do(t, r, http.MethodPost, "/api/v1/cart/items", `{"itemId":"a","quantity":1}`, nil)
	cookie := sessionCookie(t, rec)

	rec = do(t, r, http.MethodPatch, "/api/v1/cart/items/a", `{"quantity":4}`, cookie)
	if view := decodeCartView(t, rec); view.ItemCount != 4 {
		t.Fatalf("expected quantity 4, got %+v", view)
	}

	rec = do(t, r, http.MethodPatch, "/api/v1/cart/items/a", `{"quantity":0}`, cookie)
	if view := decodeCartView(t, rec); view.ItemCount != 0 {
		t.Fatalf("quantity 0 must remove the line, got %+v", view)
	}

	rec = do(t, r, http.MethodPost, "/api/v1/cart/items", `{"itemId":"b"}`, cookie)
	rec = do(t, r, http.MethodDelete, "/api/v1/cart/items/b", "", cookie)
	if view := decodeCartView(t, rec); len(view.Lines) != 0 {
		t.Fatalf("expected empty cart after remove, got %+v", view)
	}
}

func TestCartClear(t *testing.T) {
	t.Parallel()

	r, _ := cartTestRouter()

	rec := do(t, r, http.MethodPost, "/api/v1/cart/items", `{"itemId":"a","quantity":3}`, nil)
	cookie := sessionCookie(t, rec)

	rec = do(t, r, http.MethodDelete, "/api/v1/cart", "", cookie)
	if view := decodeCartView(t, rec); view.ItemCount != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", view)
	}
}

func TestCartToggle(t *testing.T) {
	t.Parallel()

	r, _ := cartTestRouter()

	rec := do(t, r, http.MethodPost, "/api/v1/cart/toggle", "", nil)
	cookie := sessionCookie(t, rec)
	if view := decodeCartView(t, rec); !view.IsOpen {
		t.Fatalf("bodyless toggle should flip closed to open, got %+v", view)
	}

	rec = do(t, r, http.MethodPost, "/api/v1/cart/toggle", `{"open":false}`, cookie)
	if view := decodeCartView(t, rec); view.IsOpen {
		t.Fatalf("explicit open=false should close the cart, got %+v", view)
	}
}
