package session

import (
	"sync"
	"testing"

	"github.com/stitchmate/stitchmate/internal/domain/model"
)

func TestAddAccessoryIgnoresDuplicates(t *testing.T) {
	s := NewSession()
	s.AddAccessory(model.Accessory{ID: 1, Name: "Gold Pearl Buttons", Price: 250})
	s.AddAccessory(model.Accessory{ID: 2, Name: "Silk Tassels", Price: 180})
	s.AddAccessory(model.Accessory{ID: 1, Name: "Renamed", Price: 999})

	selected := s.SelectedAccessories()
	if len(selected) != 2 {
		t.Fatalf("expected 2 accessories, got %d", len(selected))
	}
	if selected[0].Name != "Gold Pearl Buttons" {
		t.Errorf("first-seen accessory should win, got %q", selected[0].Name)
	}
}

func TestRemoveAccessory(t *testing.T) {
	s := NewSession()
	s.AddAccessory(model.Accessory{ID: 1})
	s.AddAccessory(model.Accessory{ID: 2})
	s.RemoveAccessory(1)

	selected := s.SelectedAccessories()
	if len(selected) != 1 || selected[0].ID != 2 {
		t.Fatalf("unexpected selection after removal: %+v", selected)
	}

	s.RemoveAccessory(42)
	if len(s.SelectedAccessories()) != 1 {
		t.Error("removing an unknown accessory should be a no-op")
	}
}

func TestUpdateOrderUnknownIDNoOp(t *testing.T) {
	s := NewSession()
	s.AddOrder(model.Order{ID: "order-1", Status: model.OrderStatusPosted})

	status := model.OrderStatusBooked
	s.UpdateOrder("does-not-exist", model.OrderPatch{Status: &status})

	if got := s.Orders()[0].Status; got != model.OrderStatusPosted {
		t.Errorf("order changed by patch against unknown ID: %s", got)
	}

	s.UpdateOrder("order-1", model.OrderPatch{Status: &status})
	if got := s.Orders()[0].Status; got != model.OrderStatusBooked {
		t.Errorf("patch not applied: %s", got)
	}
}

func TestSetWorkflowStepRejectsUnknown(t *testing.T) {
	s := NewSession()
	s.SetWorkflowStep(StepBooking)
	if s.WorkflowStep() != StepBooking {
		t.Fatalf("expected booking step, got %s", s.WorkflowStep())
	}

	s.SetWorkflowStep(WorkflowStep("checkout"))
	if s.WorkflowStep() != StepBooking {
		t.Errorf("unknown step should be ignored, got %s", s.WorkflowStep())
	}
}

func TestResetPreservesOrders(t *testing.T) {
	s := NewSession()
	fabric := "https://example.com/fabric.jpg"
	s.SetUploadedFabric(&fabric)
	s.SetFabricAnalysis(&model.FabricAnalysis{Type: "silk", Sufficient: true})
	s.SetSelectedDesign(&model.Design{ID: "d-1"})
	s.AddAccessory(model.Accessory{ID: 1})
	s.AddOrder(model.Order{ID: "order-1"})
	s.SetWorkflowStep(StepPayment)

	s.Reset()

	if s.UploadedFabric() != nil || s.FabricAnalysis() != nil || s.SelectedDesign() != nil {
		t.Error("reset should clear design state")
	}
	if len(s.SelectedAccessories()) != 0 {
		t.Error("reset should clear accessories")
	}
	if s.WorkflowStep() != StepFabric {
		t.Errorf("reset should return to fabric step, got %s", s.WorkflowStep())
	}
	if len(s.Orders()) != 1 {
		t.Error("reset must preserve the order history")
	}
}

func TestManagerCreatesSessionOnFirstUse(t *testing.T) {
	m := NewManager()

	m.With(7, func(s *Session) {
		if s.WorkflowStep() != StepFabric {
			t.Errorf("fresh session should start at fabric, got %s", s.WorkflowStep())
		}
		s.AddAccessory(model.Accessory{ID: 1})
	})

	m.With(7, func(s *Session) {
		if len(s.SelectedAccessories()) != 1 {
			t.Error("state should persist between With calls")
		}
	})

	m.With(8, func(s *Session) {
		if len(s.SelectedAccessories()) != 0 {
			t.Error("sessions must be isolated per user")
		}
	})
}

func TestManagerDrop(t *testing.T) {
	m := NewManager()
	m.With(7, func(s *Session) { s.AddOrder(model.Order{ID: "order-1"}) })
	m.Drop(7)
	m.With(7, func(s *Session) {
		if len(s.Orders()) != 0 {
			t.Error("drop should discard the session entirely")
		}
	})
}

func TestManagerConcurrentAccess(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			m.With(id%4, func(s *Session) {
				s.AddOrder(model.Order{ID: "o"})
			})
		}(int64(i))
	}
	wg.Wait()

	total := 0
	for id := int64(0); id < 4; id++ {
		m.With(id, func(s *Session) { total += len(s.Orders()) })
	}
	if total != 16 {
		t.Errorf("expected 16 orders across sessions, got %d", total)
	}
}

func TestSelectedAccessoriesSnapshotIsStable(t *testing.T) {
	s := NewSession()
	s.AddAccessory(model.Accessory{ID: 1, Name: "Gold Pearl Buttons", Price: 250})
	s.AddAccessory(model.Accessory{ID: 2, Name: "Silk Tassels", Price: 180})

	snapshot := s.SelectedAccessories()

	s.RemoveAccessory(1)
	s.AddAccessory(model.Accessory{ID: 3, Name: "Crystal Sequin Pack", Price: 350})

	if len(snapshot) != 2 || snapshot[0].ID != 1 || snapshot[1].ID != 2 {
		t.Errorf("snapshot rewritten by later operations: %+v", snapshot)
	}
	if current := s.SelectedAccessories(); len(current) != 2 || current[0].ID != 2 || current[1].ID != 3 {
		t.Errorf("unexpected live selection: %+v", current)
	}
}

func TestGeneratedDesignsSnapshotIsStable(t *testing.T) {
	s := NewSession()
	s.SetGeneratedDesigns([]model.Design{{ID: "design-1"}, {ID: "design-2"}})

	snapshot := s.GeneratedDesigns()
	s.SetGeneratedDesigns(nil)
	snapshot[0].ID = "mutated"

	if len(s.GeneratedDesigns()) != 0 {
		t.Error("session must not see changes made through a snapshot")
	}
}

func TestOrdersSnapshotIsStable(t *testing.T) {
	s := NewSession()
	s.AddOrder(model.Order{ID: "order-1", Status: model.OrderStatusPosted})

	snapshot := s.Orders()
	booked := model.OrderStatusBooked
	s.UpdateOrder("order-1", model.OrderPatch{Status: &booked})

	if snapshot[0].Status != model.OrderStatusPosted {
		t.Errorf("snapshot rewritten by later update: %+v", snapshot[0])
	}
}
