package booking

import "sync"

// activeStatuses are orders still moving through the delivery flow.
var activeStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusInTransit: true,
}

// Session holds the order collection for one logged-in LIFF user. The scan
// and resolve flows only read it; mutation happens through the order
// handlers. Safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	orders  []Order
	current string // id of the currently selected order, "" if none
}

func NewSession() *Session {
	return &Session{}
}

// Replace swaps the whole collection, e.g. after fetching the user's orders
// from the Backstation.
func (s *Session) Replace(orders []Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]Order(nil), orders...)
}

// Add appends a freshly created order and selects it.
func (s *Session) Add(o Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
	s.current = o.ID
}

// FindByID returns the order with the given id, or nil if the session does
// not hold it.
func (s *Session) FindByID(id string) *Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o
		}
	}
	return nil
}

// ByStatus returns all orders with the given status.
func (s *Session) ByStatus(status string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// Active returns orders that are pending, confirmed or in transit.
func (s *Session) Active() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Order
	for _, o := range s.orders {
		if activeStatuses[o.Status] {
			out = append(out, o)
		}
	}
	return out
}

// Completed returns delivered and cancelled orders.
func (s *Session) Completed() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Order
	for _, o := range s.orders {
		if !activeStatuses[o.Status] {
			out = append(out, o)
		}
	}
	return out
}

// Len returns the number of orders held.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// SetCurrent marks an order as the selected one. Unknown ids clear the
// selection.
func (s *Session) SetCurrent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.current = id
			return
		}
	}
	s.current = ""
}

// Current returns the selected order, or nil.
func (s *Session) Current() *Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == "" {
		return nil
	}
	for i := range s.orders {
		if s.orders[i].ID == s.current {
			o := s.orders[i]
			return &o
		}
	}
	return nil
}
