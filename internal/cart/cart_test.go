package cart_test

import (
	"errors"
	"testing"

	"padelmania/internal/cart"
	"padelmania/internal/domain"
	"padelmania/internal/storage"
)

func memstore(t *testing.T) *storage.KV {
	t.Helper()
	kv, err := storage.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func prod(id string, price int) domain.Product {
	return domain.Product{ID: id, Title: "Producto " + id, Category: "pelotas", Price: price, Stock: 10}
}

func TestAddMergesByProductID(t *testing.T) {
	e := cart.New(memstore(t))

	e.Add(prod("p1", 100), 1)
	e.Add(prod("p1", 100), 2)
	e.Add(prod("p2", 50), 1)

	items := e.Items()
	if len(items) != 2 {
		t.Fatalf("want 2 lines, got %d", len(items))
	}
	if items[0].ID != "p1" || items[0].Quantity != 3 {
		t.Fatalf("repeated adds should merge: %+v", items[0])
	}
	if e.ItemCount() != 4 {
		t.Fatalf("want count 4, got %d", e.ItemCount())
	}
	if e.Total() != 350 {
		t.Fatalf("want total 350, got %d", e.Total())
	}
}

func TestAddClampsNonPositiveQuantity(t *testing.T) {
	e := cart.New(memstore(t))
	e.Add(prod("p1", 100), 0)
	if e.Quantity("p1") != 1 {
		t.Fatalf("qty<1 should read as 1, got %d", e.Quantity("p1"))
	}
}

func TestCapturedPriceFreeze(t *testing.T) {
	e := cart.New(memstore(t))
	p := prod("p1", 100)
	e.Add(p, 1)
	p.Price = 999 // later catalog change must not move the total
	if e.Total() != 100 {
		t.Fatalf("captured price must stay frozen, total=%d", e.Total())
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	e := cart.New(memstore(t))
	e.Add(prod("p1", 100), 1)
	e.Remove("p1")
	e.Remove("p1") // second call is a no-op
	e.Remove("never-added")
	if len(e.Items()) != 0 || e.ItemCount() != 0 {
		t.Fatalf("cart should be empty, got %+v", e.Items())
	}
}

func TestSetQuantity(t *testing.T) {
	e := cart.New(memstore(t))
	e.Add(prod("p1", 100), 5)

	e.SetQuantity("p1", 2) // exact set, not additive
	if e.Quantity("p1") != 2 {
		t.Fatalf("want 2, got %d", e.Quantity("p1"))
	}

	e.SetQuantity("absent", 3) // never implicitly adds
	if e.Contains("absent") {
		t.Fatal("SetQuantity must not add new lines")
	}

	e.SetQuantity("p1", 0) // zero removes
	if e.Contains("p1") {
		t.Fatal("zero quantity should remove the line")
	}
}

func TestNoLineEverHasNonPositiveQuantity(t *testing.T) {
	e := cart.New(memstore(t))
	e.Add(prod("p1", 10), 2)
	e.Add(prod("p2", 20), 1)
	e.SetQuantity("p1", -4)
	e.SetQuantity("p2", 7)
	e.Add(prod("p3", 5), 3)
	e.Remove("p3")

	sum := 0
	for _, it := range e.Items() {
		if it.Quantity <= 0 {
			t.Fatalf("line with non-positive quantity: %+v", it)
		}
		sum += it.Quantity
	}
	if sum != e.ItemCount() {
		t.Fatalf("ItemCount %d != sum of quantities %d", e.ItemCount(), sum)
	}
}

func TestOrderStableUnderQuantityUpdates(t *testing.T) {
	e := cart.New(memstore(t))
	e.Add(prod("p1", 10), 1)
	e.Add(prod("p2", 20), 1)
	e.Add(prod("p3", 30), 1)
	e.SetQuantity("p1", 9) // updating must not reorder

	items := e.Items()
	for i, want := range []string{"p1", "p2", "p3"} {
		if items[i].ID != want {
			t.Fatalf("insertion order lost: %+v", items)
		}
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	kv := memstore(t)

	e1 := cart.New(kv)
	e1.Add(prod("p1", 100), 2)
	e1.Add(prod("p2", 50), 1)
	e1.SetQuantity("p2", 4)

	// a fresh engine over the same store reproduces the ordered list
	e2 := cart.New(kv)
	want := e1.Items()
	got := e2.Items()
	if len(got) != len(want) {
		t.Fatalf("want %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Quantity != want[i].Quantity || got[i].Price != want[i].Price {
			t.Fatalf("line %d differs: want %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestClearPersistsEmptyState(t *testing.T) {
	kv := memstore(t)
	e := cart.New(kv)
	e.Add(prod("p1", 100), 2)
	e.Clear()

	if len(e.Items()) != 0 {
		t.Fatal("clear should empty the cart")
	}
	if len(cart.New(kv).Items()) != 0 {
		t.Fatal("cleared state should survive a restart")
	}
}

type brokenStore struct{}

func (brokenStore) Load(string) ([]byte, bool, error) { return nil, false, errors.New("disk gone") }
func (brokenStore) Save(string, []byte) error         { return errors.New("disk gone") }

func TestStoreFailuresNeverSurface(t *testing.T) {
	e := cart.New(brokenStore{})
	e.Add(prod("p1", 100), 1)
	e.SetQuantity("p1", 3)
	e.Clear()
	e.Add(prod("p2", 10), 2)
	if e.Total() != 20 {
		t.Fatalf("engine should keep working in memory, total=%d", e.Total())
	}
}

type garbageStore struct{}

func (garbageStore) Load(string) ([]byte, bool, error) { return []byte("{not json"), true, nil }
func (garbageStore) Save(string, []byte) error         { return nil }

func TestMalformedSnapshotFallsBackToEmpty(t *testing.T) {
	e := cart.New(garbageStore{})
	if len(e.Items()) != 0 {
		t.Fatalf("malformed snapshot should yield empty cart, got %+v", e.Items())
	}
}

func TestInstallmentsPreview(t *testing.T) {
	e := cart.New(memstore(t))
	e.Add(prod("p1", 100), 1)
	in := e.Installments(6)
	if in.InstallmentAmount != 17 || in.TotalAmount != 102 {
		t.Fatalf("want 17/102, got %+v", in)
	}
}
