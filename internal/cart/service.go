package cart

import (
	"context"
	"sync"

	"github.com/restaurantelilica/cardapio-backend/internal/menu"
	"github.com/restaurantelilica/cardapio-backend/pkg/logger"
)

// Service applies cart transitions per session and persists the resulting
// lines. Persistence is best-effort: a store failure degrades the cart to
// the lifetime of the session, never the request.
type Service struct {
	store Store
	logg  *logger.Logger

	mu   sync.Mutex
	open map[string]bool
}

// NewService builds a cart service over the given store.
func NewService(store Store, logg *logger.Logger) *Service {
	return &Service{
		store: store,
		logg:  logg,
		open:  map[string]bool{},
	}
}

// Get returns the current cart for the session.
func (s *Service) Get(ctx context.Context, sessionID string) State {
	return s.load(ctx, sessionID)
}

// Add merges the item into the session cart and persists the result.
func (s *Service) Add(ctx context.Context, sessionID string, item menu.Item, quantity int) State {
	state := s.load(ctx, sessionID).Add(item, quantity)
	s.setOpen(sessionID, state.IsOpen)
	s.persist(ctx, sessionID, state.Lines)
	return state
}

// SetQuantity updates a line's quantity; zero or less removes the line.
func (s *Service) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) State {
	state := s.load(ctx, sessionID).SetQuantity(itemID, quantity)
	s.persist(ctx, sessionID, state.Lines)
	return state
}

// Remove drops the line matching itemID.
func (s *Service) Remove(ctx context.Context, sessionID, itemID string) State {
	state := s.load(ctx, sessionID).Remove(itemID)
	s.persist(ctx, sessionID, state.Lines)
	return state
}

// Clear empties the session cart and deletes its snapshot.
func (s *Service) Clear(ctx context.Context, sessionID string) State {
	state := s.load(ctx, sessionID).Clear()
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.logg.Warn(s.logg.WithCartSession(ctx, sessionID), "cart.store.delete failed")
	}
	return state
}

// Toggle sets cart visibility, or flips it when open is nil. Visibility is
// session-scoped UI state and is not persisted.
func (s *Service) Toggle(ctx context.Context, sessionID string, open *bool) State {
	state := s.load(ctx, sessionID).Toggle(open)
	s.setOpen(sessionID, state.IsOpen)
	return state
}

func (s *Service) load(ctx context.Context, sessionID string) State {
	state := State{IsOpen: s.isOpen(sessionID)}

	lines, ok, err := s.store.Load(ctx, sessionID)
	if err != nil {
		// Treat an unreadable snapshot like a fresh session.
		s.logg.Error(s.logg.WithCartSession(ctx, sessionID), "cart.store.load failed", err)
		return state
	}
	if !ok {
		return state
	}
	return state.Hydrate(lines)
}

func (s *Service) persist(ctx context.Context, sessionID string, lines []Line) {
	if err := s.store.Save(ctx, sessionID, lines); err != nil {
		s.logg.Error(s.logg.WithCartSession(ctx, sessionID), "cart.store.save failed", err)
	}
}

func (s *Service) isOpen(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open[sessionID]
}

func (s *Service) setOpen(sessionID string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if open {
		s.open[sessionID] = true
		return
	}
	delete(s.open, sessionID)
}
