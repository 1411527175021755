package cart

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/kutu95/kamelie-greenhouse-sub001/models"
	"github.com/kutu95/kamelie-greenhouse-sub001/pricing"
)

type stubResolver struct {
	price float64
	err   error
}

func (r stubResolver) Price(group pricing.Group, ageYears int, size string) (float64, error) {
	return r.price, r.err
}

type failStorage struct{}

func (failStorage) Load() ([]byte, error)  { return nil, ErrNoCart }
func (failStorage) Save(blob []byte) error { return errors.New("disk full") }

func testCultivar(group string) models.Cultivar {
	return models.Cultivar{
		ID:         uuid.NewString(),
		Name:       "Black Lace",
		Species:    "Camellia japonica",
		PriceGroup: group,
	}
}

func testProduct(price float64) models.Product {
	return models.Product{
		ID:    uuid.NewString(),
		Name:  "Camellia fertilizer 1kg",
		Price: price,
	}
}

func TestAddVarietyIncrementsInsteadOfDuplicating(t *testing.T) {
	s := Load(&MemStorage{}, stubResolver{price: 20.00})
	cv := testCultivar("common")

	if _, err := s.AddVariety(cv, 3, "5L", 1); err != nil {
		t.Fatalf("AddVariety failed: %v", err)
	}
	if _, err := s.AddVariety(cv, 3, "5L", 1); err != nil {
		t.Fatalf("AddVariety failed: %v", err)
	}

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
	if s.ItemCount() != 2 {
		t.Fatalf("expected item count 2, got %d", s.ItemCount())
	}
}

func TestAddVarietyDifferentAgesAreSeparateLines(t *testing.T) {
	s := Load(&MemStorage{}, stubResolver{price: 20.00})
	cv := testCultivar("common")

	s.AddVariety(cv, 3, "5L", 1)
	s.AddVariety(cv, 5, "5L", 1)

	if len(s.Items()) != 2 {
		t.Fatalf("expected 2 line items for distinct ages, got %d", len(s.Items()))
	}
}

func TestAddProductTwiceMergesQuantity(t *testing.T) {
	s := Load(&MemStorage{}, stubResolver{})
	p := testProduct(12.90)

	s.AddProduct(p, 1)
	s.AddProduct(p, 1)

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestTotals(t *testing.T) {
	s := Load(&MemStorage{}, stubResolver{price: 20.00})

	if _, err := s.AddVariety(testCultivar("medium"), 4, "5L", 2); err != nil {
		t.Fatalf("AddVariety failed: %v", err)
	}
	if _, err := s.AddProduct(testProduct(45.50), 1); err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}

	if got := s.Total(); got != 85.50 {
		t.Fatalf("expected total 85.50, got %.2f", got)
	}
	if got := s.ItemCount(); got != 3 {
		t.Fatalf("expected item count 3, got %d", got)
	}
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	cv := testCultivar("common")

	setTo := Load(&MemStorage{}, stubResolver{price: 20.00})
	removed := Load(&MemStorage{}, stubResolver{price: 20.00})
	setTo.AddVariety(cv, 3, "5L", 2)
	removed.AddVariety(cv, 3, "5L", 2)

	key := VarietyKey(cv.ID, 3)
	setTo.SetQuantity(key, 0)
	removed.Remove(key)

	if len(setTo.Items()) != 0 {
		t.Fatal("SetQuantity(key, 0) must remove the line item")
	}
	if len(removed.Items()) != len(setTo.Items()) {
		t.Fatal("SetQuantity(key, 0) and Remove(key) must agree")
	}
}

func TestSetQuantityIsExactNotAdditive(t *testing.T) {
	s := Load(&MemStorage{}, stubResolver{price: 20.00})
	cv := testCultivar("common")
	s.AddVariety(cv, 3, "5L", 2)

	s.SetQuantity(VarietyKey(cv.ID, 3), 5)

	if got := s.Items()[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := Load(&MemStorage{}, stubResolver{price: 20.00})
	cv := testCultivar("common")
	s.AddVariety(cv, 3, "5L", 1)

	key := VarietyKey(cv.ID, 3)
	s.Remove(key)
	s.Remove(key) // absent key is a no-op, not an error

	if len(s.Items()) != 0 {
		t.Fatal("expected empty cart")
	}
}

func TestClear(t *testing.T) {
	s := Load(&MemStorage{}, stubResolver{price: 20.00})
	s.AddVariety(testCultivar("rare"), 7, "10L", 1)
	s.AddProduct(testProduct(9.90), 3)

	s.Clear()

	if len(s.Items()) != 0 || s.ItemCount() != 0 || s.Total() != 0 {
		t.Fatal("expected empty cart after Clear")
	}
}

func TestUnpriceableCultivarIsNotAdded(t *testing.T) {
	s := Load(&MemStorage{}, stubResolver{price: 20.00})

	_, err := s.AddVariety(testCultivar(""), 3, "5L", 1)
	if !errors.Is(err, ErrNotOrderable) {
		t.Fatalf("expected ErrNotOrderable, got %v", err)
	}
	if len(s.Items()) != 0 {
		t.Fatal("unpriceable cultivar must not land in the cart")
	}
}

func TestResolutionFailureAddsPendingPrice(t *testing.T) {
	s := Load(&MemStorage{}, stubResolver{err: errors.New("matrix unreachable")})

	line, err := s.AddVariety(testCultivar("rare"), 7, "10L", 1)
	if err != nil {
		t.Fatalf("add must not be blocked by a failed price lookup: %v", err)
	}
	if line.UnitPrice != 0 || !line.PricePending {
		t.Fatalf("expected degraded price-0 pending line, got price %.2f pending %v",
			line.UnitPrice, line.PricePending)
	}
	if !s.HasPendingPrices() {
		t.Fatal("store must surface pending prices")
	}
}

func TestPersistFailureKeepsInMemoryCart(t *testing.T) {
	s := Load(failStorage{}, stubResolver{price: 20.00})

	if _, err := s.AddVariety(testCultivar("common"), 3, "5L", 1); err != nil {
		t.Fatalf("mutation must not fail on a persistence error: %v", err)
	}
	if len(s.Items()) != 1 {
		t.Fatal("in-memory cart must remain the working truth")
	}
}

func TestReloadRoundTrip(t *testing.T) {
	storage := &MemStorage{}
	cv := testCultivar("medium")
	p := testProduct(45.50)

	s := Load(storage, stubResolver{price: 20.00})
	s.AddVariety(cv, 4, "5L", 2)
	s.AddProduct(p, 1)

	reloaded := Load(storage, stubResolver{price: 20.00})
	if len(reloaded.Items()) != 2 {
		t.Fatalf("expected 2 line items after reload, got %d", len(reloaded.Items()))
	}
	if reloaded.Total() != 85.50 || reloaded.ItemCount() != 3 {
		t.Fatalf("expected total 85.50 / count 3 after reload, got %.2f / %d",
			reloaded.Total(), reloaded.ItemCount())
	}
}

func TestLoadSweepsCorruptEntries(t *testing.T) {
	storage := &MemStorage{}
	valid := models.CartLineItem{
		Key:       VarietyKey(uuid.NewString(), 4),
		Kind:      models.LineVariety,
		Name:      "Black Lace",
		UnitPrice: 30.00,
		Quantity:  1,
	}
	corrupt := models.CartLineItem{
		Key:      "not-a-uuid:four",
		Kind:     models.LineVariety,
		Quantity: 1,
	}
	seed := Load(storage, stubResolver{})
	seed.items = []models.CartLineItem{valid, corrupt}
	seed.persist()

	s := Load(storage, stubResolver{})
	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected corrupt entry to be swept, got %d items", len(items))
	}
	if items[0].Key != valid.Key || items[0].UnitPrice != 30.00 || items[0].Quantity != 1 {
		t.Fatal("sweep must not modify a valid item's fields")
	}
}

func TestLoadUndecodableBlobStartsEmpty(t *testing.T) {
	storage := &MemStorage{}
	storage.Save([]byte("{{{ not json"))

	s := Load(storage, stubResolver{})
	if len(s.Items()) != 0 {
		t.Fatal("undecodable blob must yield an empty cart, not an error")
	}
}
