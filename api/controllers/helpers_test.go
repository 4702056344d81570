package controllers

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/restaurantelilica/cardapio-backend/internal/cart"
	"github.com/restaurantelilica/cardapio-backend/internal/menu"
	"github.com/restaurantelilica/cardapio-backend/internal/siteconfig"
	"github.com/restaurantelilica/cardapio-backend/pkg/logger"
)

func quietLogger() *logger.Logger {
	return logger.New(logger.Options{
		ServiceName: "controllers-test",
		Level:       zerolog.Disabled,
		Output:      io.Discard,
	})
}

func fixtureItem(id, name string, price float64) menu.Item {
	return menu.Item{
		ID:        id,
		Name:      name,
		Category:  "Pratos",
		Price:     decimal.NewFromFloat(price),
		Available: true,
	}
}

type stubMenuService struct {
	data menu.Data
}

func (s *stubMenuService) Load(context.Context) menu.Data {
	return s.data
}

func (s *stubMenuService) ItemByID(_ context.Context, id string) (menu.Item, bool) {
	for _, item := range s.data.Items {
		if item.ID == id {
			return item, true
		}
	}
	return menu.Item{}, false
}

type stubConfigService struct {
	cfg siteconfig.WithComputed
}

func (s *stubConfigService) Load(context.Context) siteconfig.WithComputed {
	return s.cfg
}

func newCartService() *cart.Service {
	return cart.NewService(cart.NewMemoryStore(), quietLogger())
}
