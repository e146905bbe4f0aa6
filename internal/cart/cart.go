package cart

import (
	"encoding/json"
	"sync"

	"padelmania/internal/domain"
	applog "padelmania/internal/log"
	"padelmania/internal/money"
)

// StorageKey is the single durable slot the engine owns. No other
// component may write to it.
const StorageKey = "padelmania-cart"

// Store is the persistence boundary the engine writes its full line-item
// list to on every mutation.
type Store interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
}

// Engine owns the ordered list of cart line items. Lines keep insertion
// order of their first add, stable under quantity updates; each product id
// appears at most once. Store failures are logged and swallowed — the
// worst case is a stale or empty cart, never a crash.
type Engine struct {
	mu    sync.Mutex
	store Store
	items []domain.CartItem
}

// New builds an engine seeded from the store's previous snapshot, if any.
// A missing, unreadable or malformed snapshot yields an empty cart.
func New(store Store) *Engine {
	e := &Engine{store: store}
	e.restore()
	return e
}

func (e *Engine) restore() {
	if e.store == nil {
		return
	}
	raw, ok, err := e.store.Load(StorageKey)
	if err != nil {
		applog.Warn("cart.restore", err, nil)
		return
	}
	if !ok {
		return
	}
	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		applog.Warn("cart.restore", err, nil)
		return
	}
	if len(items) > 0 {
		e.items = items
	}
}

// persist is called with e.mu held, which keeps snapshots ordered by call
// sequence: a later mutation can never be overwritten by an earlier one.
func (e *Engine) persist() {
	if e.store == nil {
		return
	}
	raw, err := json.Marshal(e.items)
	if err == nil {
		err = e.store.Save(StorageKey, raw)
	}
	if err != nil {
		applog.Warn("cart.persist", err, nil)
	}
}

// Add increments the line for p.ID by qty, appending a new line when
// absent. Quantities below one are treated as one. The engine does not
// clamp against p.Stock; availability is the caller's concern and the
// snapshot may be stale by the time the user acts.
func (e *Engine) Add(p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.items {
		if e.items[i].ID == p.ID {
			e.items[i].Quantity += qty
			e.persist()
			return
		}
	}
	e.items = append(e.items, domain.CartItem{Product: p, Quantity: qty})
	e.persist()
}

// Remove deletes the line for productID. Absent ids are a no-op.
func (e *Engine) Remove(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLocked(productID)
}

func (e *Engine) removeLocked(productID string) {
	for i := range e.items {
		if e.items[i].ID == productID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			e.persist()
			return
		}
	}
}

// SetQuantity sets the line for productID to exactly qty. A qty of zero
// or less removes the line. Positive qty on an absent id is a no-op: the
// operation updates existing lines only, it never adds one.
func (e *Engine) SetQuantity(productID string, qty int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if qty <= 0 {
		e.removeLocked(productID)
		return
	}
	for i := range e.items {
		if e.items[i].ID == productID {
			e.items[i].Quantity = qty
			e.persist()
			return
		}
	}
}

// Clear empties the cart and persists the empty state.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = nil
	e.persist()
}

// Items returns a copy of the current lines in insertion order.
func (e *Engine) Items() []domain.CartItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.CartItem(nil), e.items...)
}

// Total sums price*quantity over all lines using each line's captured
// price, so catalog price changes after adding never move the total.
func (e *Engine) Total() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := 0
	for _, it := range e.items {
		total += it.Subtotal()
	}
	return total
}

// ItemCount is the sum of quantities, not the number of distinct lines.
func (e *Engine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, it := range e.items {
		n += it.Quantity
	}
	return n
}

// Installments previews splitting the current total into n rounded-up
// payments. Display only, never binding.
func (e *Engine) Installments(n int) money.Installments {
	return money.CalculateInstallments(e.Total(), n)
}

// Contains reports whether productID has a line in the cart.
func (e *Engine) Contains(productID string) bool {
	return e.Quantity(productID) > 0
}

// Quantity returns the quantity for productID, zero when absent.
func (e *Engine) Quantity(productID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, it := range e.items {
		if it.ID == productID {
			return it.Quantity
		}
	}
	return 0
}
