package cart

import (
	"context"
	"testing"

	"creamery/localstore"
)

type countingNotifier struct {
	signals []string
}

func (n *countingNotifier) CartChanged(sessionID string) {
	n.signals = append(n.signals, sessionID)
}

func TestManagerPersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemoryStore()
	mgr := NewManager(store, nil)

	if _, err := mgr.Add(ctx, "s1", "GarlicHerb", "Garlic & Herb Butter", 29); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// A fresh Manager over the same store sees the write.
	c, err := NewManager(store, nil).Load(ctx, "s1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c["GarlicHerb"].Quantity != 1 {
		t.Fatalf("loaded cart = %+v", c)
	}
}

func TestManagerLoadMissingIsEmptyCart(t *testing.T) {
	mgr := NewManager(localstore.NewMemoryStore(), nil)

	c, err := mgr.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c) != 0 {
		t.Fatalf("expected empty cart, got %+v", c)
	}
}

func TestManagerSignalsEveryMutation(t *testing.T) {
	ctx := context.Background()
	n := &countingNotifier{}
	mgr := NewManager(localstore.NewMemoryStore(), n)

	mgr.Add(ctx, "s1", "A", "A", 10)
	mgr.Remove(ctx, "s1", "A")
	mgr.Clear(ctx, "s1")

	if len(n.signals) != 3 {
		t.Fatalf("got %d signals, want 3: %v", len(n.signals), n.signals)
	}
	for _, sid := range n.signals {
		if sid != "s1" {
			t.Fatalf("signal for wrong session %q", sid)
		}
	}
}

func TestManagerUnknownRemoveWritesNothing(t *testing.T) {
	ctx := context.Background()
	n := &countingNotifier{}
	mgr := NewManager(localstore.NewMemoryStore(), n)

	if _, err := mgr.Remove(ctx, "s1", "missing"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := mgr.DeleteLine(ctx, "s1", "missing"); err != nil {
		t.Fatalf("DeleteLine: %v", err)
	}
	if len(n.signals) != 0 {
		t.Fatalf("no-op mutations must not signal, got %v", n.signals)
	}
}

func TestManagerSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager(localstore.NewMemoryStore(), nil)

	mgr.Add(ctx, "s1", "A", "A", 10)
	mgr.Add(ctx, "s2", "B", "B", 20)

	c1, _ := mgr.Load(ctx, "s1")
	c2, _ := mgr.Load(ctx, "s2")

	if _, ok := c1["B"]; ok {
		t.Fatal("session s1 sees s2's line")
	}
	if _, ok := c2["A"]; ok {
		t.Fatal("session s2 sees s1's line")
	}
}

func TestManagerClearDropsBlob(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager(localstore.NewMemoryStore(), nil)

	mgr.Add(ctx, "s1", "A", "A", 10)
	if err := mgr.Clear(ctx, "s1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	c, _ := mgr.Load(ctx, "s1")
	if ItemCount(c) != 0 {
		t.Fatalf("cart not cleared: %+v", c)
	}
}
