package cart

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"sync"
	"time"

	"github.com/kutu95/kamelie-greenhouse-sub001/models"
	"github.com/kutu95/kamelie-greenhouse-sub001/pricing"
)

// ErrNotOrderable means the cultivar has no price group and must not be
// added to a cart.
var ErrNotOrderable = errors.New("cart: cultivar is not orderable")

var (
	errBadQuantity = errors.New("cart: quantity must be at least 1")
	errBadAge      = errors.New("cart: age must be at least 1 year")
)

// PriceResolver is the slice of the pricing resolver the store needs.
type PriceResolver interface {
	Price(group pricing.Group, ageYears int, size string) (float64, error)
}

// Store holds one session's cart. The in-memory item list is the working
// truth; every mutation rewrites the whole persisted snapshot through the
// injected Storage. A failed persistence write is logged but never fails
// the mutation, so the cart keeps working for the rest of the session.
type Store struct {
	mu       sync.Mutex
	items    []models.CartLineItem
	storage  Storage
	resolver PriceResolver
}

// Load reads the persisted snapshot, sweeps out structurally invalid
// entries, and returns a working Store. A missing or undecodable snapshot
// yields an empty cart rather than an error.
func Load(storage Storage, resolver PriceResolver) *Store {
	s := &Store{storage: storage, resolver: resolver}

	blob, err := storage.Load()
	if err != nil {
		if !errors.Is(err, ErrNoCart) {
			log.Printf("⚠️ cart load failed, starting empty: %v", err)
		}
		return s
	}

	var items []models.CartLineItem
	if err := json.Unmarshal(blob, &items); err != nil {
		log.Printf("⚠️ cart blob undecodable, starting empty: %v", err)
		return s
	}

	swept, removed := Sweep(items)
	if removed > 0 {
		log.Printf("🧹 cart sweep dropped %d invalid line item(s)", removed)
		s.items = swept
		s.persist()
		return s
	}
	s.items = swept
	return s
}

// AddVariety adds a cultivar at a chosen age, incrementing quantity when
// the same (cultivar, age) selection is already in the cart. The unit price
// is resolved up front; if resolution fails despite a valid group, the line
// is still added at price 0 with PricePending set, a degraded state the UI
// must surface before checkout.
func (s *Store) AddVariety(cv models.Cultivar, ageYears int, size string, qty int) (models.CartLineItem, error) {
	if qty < 1 {
		return models.CartLineItem{}, errBadQuantity
	}
	if ageYears < 1 {
		return models.CartLineItem{}, errBadAge
	}
	group, ok := pricing.GroupOf(cv)
	if !ok {
		return models.CartLineItem{}, ErrNotOrderable
	}

	price, err := s.resolver.Price(group, ageYears, size)
	pending := false
	if err != nil {
		if errors.Is(err, pricing.ErrUnpriceable) {
			return models.CartLineItem{}, ErrNotOrderable
		}
		log.Printf("⚠️ price resolution failed for %s (age %d): %v", cv.ID, ageYears, err)
		price, pending = 0, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsert(models.CartLineItem{
		Key:          VarietyKey(cv.ID, ageYears),
		Kind:         models.LineVariety,
		Name:         cv.Name,
		AgeYears:     ageYears,
		Size:         size,
		UnitPrice:    price,
		PricePending: pending,
		Quantity:     qty,
		AddedAt:      time.Now(),
	}), nil
}

// AddProduct adds a flat-priced article, keyed by product id alone.
func (s *Store) AddProduct(p models.Product, qty int) (models.CartLineItem, error) {
	if qty < 1 {
		return models.CartLineItem{}, errBadQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsert(models.CartLineItem{
		Key:       ProductKey(p.ID),
		Kind:      models.LineProduct,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  qty,
		AddedAt:   time.Now(),
	}), nil
}

// upsert merges a line into the cart by key and persists the snapshot.
// Caller holds s.mu.
func (s *Store) upsert(line models.CartLineItem) models.CartLineItem {
	for i := range s.items {
		if s.items[i].Key == line.Key {
			s.items[i].Quantity += line.Quantity
			s.persist()
			return s.items[i]
		}
	}
	s.items = append(s.items, line)
	s.persist()
	return line
}

// SetQuantity sets a line's quantity exactly. A quantity of zero or less
// removes the line. Unknown keys are a no-op.
func (s *Store) SetQuantity(key string, qty int) {
	if qty <= 0 {
		s.Remove(key)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Key == key {
			s.items[i].Quantity = qty
			s.persist()
			return
		}
	}
}

// Remove deletes a line if present. Removing an absent key is a no-op.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Key == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns a copy of the current line items.
func (s *Store) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount sums all quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Total sums price × quantity over all lines, rounded to 2 decimals.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, it := range s.items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return math.Round(total*100) / 100
}

// HasPendingPrices reports whether any line was added without a resolved
// price. Checkout must refuse such carts until prices are re-resolved.
func (s *Store) HasPendingPrices() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.PricePending {
			return true
		}
	}
	return false
}

// persist writes the whole snapshot. Caller holds s.mu. Write failures are
// logged and swallowed: the in-memory cart stays authoritative for the
// session even when persistence is temporarily down.
func (s *Store) persist() {
	blob, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("❌ cart marshal failed: %v", err)
		return
	}
	if err := s.storage.Save(blob); err != nil {
		log.Printf("❌ cart persist failed (keeping in-memory cart): %v", err)
	}
}
