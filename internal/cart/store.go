package cart

import (
	"sync"

	"agriconnect-be/internal/product"
)

// Store holds one cart per browsing session. Carts are created empty on
// first touch and dropped again when cleared, so abandoned sessions do not
// pin product snapshots forever.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

func (s *Store) cart(sessionID string) *Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	return c
}

func (s *Store) AddItem(sessionID string, p product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).AddItem(p)
}

func (s *Store) RemoveItem(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		c.RemoveItem(productID)
	}
}

func (s *Store) SetQuantity(sessionID, productID string, q int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		c.SetQuantity(productID, q)
	}
}

func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Snapshot returns the session's lines and totals at this instant.
func (s *Store) Snapshot(sessionID string) ([]Line, float64, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[sessionID]
	if !ok {
		return nil, 0, 0
	}
	return c.Lines(), c.TotalPrice(), c.TotalItemCount()
}
