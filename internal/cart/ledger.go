// Package cart tracks which products are marked for purchase and produces
// buy-now confirmations.
package cart

import (
	"fmt"
	"strconv"

	"echomart/internal/catalog"
)

// Ledger is the set of product ids currently selected for purchase. Toggle is
// the sole membership mutator, so toggling twice always restores the original
// membership. Insertion order is kept for deterministic display.
type Ledger struct {
	order []int
	index map[int]struct{}
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[int]struct{})}
}

// Toggle removes id when present, inserts it otherwise.
func (l *Ledger) Toggle(id int) {
	if _, ok := l.index[id]; ok {
		delete(l.index, id)
		for i, v := range l.order {
			if v == id {
				l.order = append(l.order[:i], l.order[i+1:]...)
				break
			}
		}
		return
	}
	l.index[id] = struct{}{}
	l.order = append(l.order, id)
}

// Contains reports cart membership for id.
func (l *Ledger) Contains(id int) bool {
	_, ok := l.index[id]
	return ok
}

// Count returns the number of selected products. The badge is hidden when
// this is zero.
func (l *Ledger) Count() int { return len(l.order) }

// Selected returns the selected ids in insertion order. Callers must not
// mutate the returned slice.
func (l *Ledger) Selected() []int { return l.order }

// BuyNow confirms a one-off purchase intent for a single product. It is
// independent of cart membership: it never reads or changes the selection and
// performs no I/O. The returned notice names the product and price.
func (l *Ledger) BuyNow(p catalog.Product) string {
	return fmt.Sprintf("You are buying: %s for ₹%s", p.Title, strconv.FormatFloat(p.Price, 'f', -1, 64))
}
