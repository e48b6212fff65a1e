package booking

import "testing"

func sampleOrder(id, status string) Order {
	return Order{ID: id, Status: status, LuggageCount: 1}
}

func TestSession_FindByID(t *testing.T) {
	s := NewSession()
	s.Add(sampleOrder("a", StatusPending))
	s.Add(sampleOrder("b", StatusDelivered))

	if got := s.FindByID("a"); got == nil || got.ID != "a" {
		t.Fatalf("expected order a, got %+v", got)
	}
	if got := s.FindByID("missing"); got != nil {
		t.Fatalf("expected nil for unknown id, got %+v", got)
	}
}

func TestSession_ActiveAndCompleted(t *testing.T) {
	s := NewSession()
	s.Replace([]Order{
		sampleOrder("a", StatusPending),
		sampleOrder("b", StatusConfirmed),
		sampleOrder("c", StatusInTransit),
		sampleOrder("d", StatusDelivered),
		sampleOrder("e", StatusCancelled),
	})

	if got := len(s.Active()); got != 3 {
		t.Fatalf("expected 3 active orders, got %d", got)
	}
	if got := len(s.Completed()); got != 2 {
		t.Fatalf("expected 2 completed orders, got %d", got)
	}
	if got := len(s.ByStatus(StatusCancelled)); got != 1 {
		t.Fatalf("expected 1 cancelled order, got %d", got)
	}
}

func TestSession_CurrentSelection(t *testing.T) {
	s := NewSession()
	s.Add(sampleOrder("a", StatusPending))
	s.Add(sampleOrder("b", StatusPending))

	// Add selects the newest order
	if cur := s.Current(); cur == nil || cur.ID != "b" {
		t.Fatalf("expected current order b, got %+v", cur)
	}

	s.SetCurrent("a")
	if cur := s.Current(); cur == nil || cur.ID != "a" {
		t.Fatalf("expected current order a, got %+v", cur)
	}

	// unknown id clears the selection
	s.SetCurrent("zzz")
	if cur := s.Current(); cur != nil {
		t.Fatalf("expected cleared selection, got %+v", cur)
	}
}
