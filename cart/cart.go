// Package cart is the client-side shopping cart: an injectable state holder
// persisted through a pluggable key-value port, plus the pricing rules
// derived from it. Quantities are linear meters of fabricated kitchen units.
package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// StorageKey is the fixed key the serialized cart lives under.
const StorageKey = "qimma_cart"

var (
	// MinMeters is the floor for any line quantity; updates below it are
	// rejected and the line stays unchanged.
	MinMeters = decimal.NewFromFloat(0.5)
	// MetersStep is the increment/decrement granularity.
	MetersStep = decimal.NewFromFloat(0.5)
)

// Line is one product entry in the cart. Title and material are display
// snapshots captured at add-time and never re-fetched.
type Line struct {
	ProductID     uint             `json:"productId"`
	TitleAr       string           `json:"titleAr"`
	MaterialType  string           `json:"materialType"`
	PricePerMeter *decimal.Decimal `json:"pricePerMeter"`
	IsCustomPrice bool             `json:"isCustomPrice"`
	Meters        decimal.Decimal  `json:"meters"`
	ImageURL      string           `json:"imageUrl"`
}

// Store keeps the cart lines in insertion order and re-serializes the whole
// cart to storage after every mutation, so a reload never observes a state
// older than the last completed mutation.
type Store struct {
	storage Storage
	lines   []Line
}

// NewStore restores the cart from storage. A missing or unparsable record
// means an empty cart, never an error.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	data, err := storage.Read(StorageKey)
	if err != nil || len(data) == 0 {
		return s
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return s
	}
	s.lines = lines
	return s
}

// AddItem appends the line, or merges it into an existing line for the same
// product by summing meters. Exactly one line per product id.
func (s *Store) AddItem(line Line) {
	line.Meters = RoundMeters(line.Meters)
	for i := range s.lines {
		if s.lines[i].ProductID == line.ProductID {
			s.lines[i].Meters = RoundMeters(s.lines[i].Meters.Add(line.Meters))
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, line)
	s.persist()
}

// RemoveItem drops the matching line. Removing an absent product is a no-op.
func (s *Store) RemoveItem(productID uint) {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateMeters replaces the line's quantity. Values below MinMeters are
// silently ignored and the line keeps its previous quantity.
func (s *Store) UpdateMeters(productID uint, meters decimal.Decimal) {
	if meters.LessThan(MinMeters) {
		return
	}
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Meters = RoundMeters(meters)
			s.persist()
			return
		}
	}
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear() {
	s.lines = nil
	s.persist()
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// ItemCount is the number of distinct lines, not total meters.
func (s *Store) ItemCount() int {
	return len(s.lines)
}

// Total sums the defined line totals. Custom-priced lines and lines with no
// unit price contribute zero.
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.lines {
		if lt, ok := LineTotal(line); ok {
			total = total.Add(lt)
		}
	}
	return total
}

// HasCustomPriceItems reports whether any line needs a manual quote, in
// which case the aggregate total is undefined for display.
func (s *Store) HasCustomPriceItems() bool {
	for _, line := range s.lines {
		if line.IsCustomPrice {
			return true
		}
	}
	return false
}

// Subtotal returns the aggregate total and whether it is meaningful. It is
// not meaningful when any line is custom-priced; callers should route the
// user to a manual quote instead of checkout.
func (s *Store) Subtotal() (decimal.Decimal, bool) {
	if s.HasCustomPriceItems() {
		return decimal.Zero, false
	}
	return s.Total(), true
}

func (s *Store) persist() {
	data, err := json.Marshal(s.lines)
	if err != nil {
		return
	}
	_ = s.storage.Write(StorageKey, data)
}
