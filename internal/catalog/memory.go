package catalog

import (
	"context"
	"sync"

	"github.com/angelmondragon/shopdesk/pkg/enums"
)

// MemoryStore keeps the tables in maps with a parallel key slice per table
// to preserve insertion order.
type MemoryStore struct {
	mu sync.RWMutex

	products     map[string]Product
	productKeys  []string
	orders       map[string]Order
	orderKeys    []string
	customers    map[string]Customer
	customerKeys []string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore validates seed and loads it into a fresh store.
func NewMemoryStore(seed Seed) (*MemoryStore, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	s := &MemoryStore{
		products:  make(map[string]Product, len(seed.Products)),
		orders:    make(map[string]Order, len(seed.Orders)),
		customers: make(map[string]Customer, len(seed.Customers)),
	}
	for _, p := range seed.Products {
		p.SKU = NormalizeKey(p.SKU)
		s.products[p.SKU] = p
		s.productKeys = append(s.productKeys, p.SKU)
	}
	for _, o := range seed.Orders {
		o = o.Clone()
		o.ID = NormalizeKey(o.ID)
		s.orders[o.ID] = o
		s.orderKeys = append(s.orderKeys, o.ID)
	}
	for _, c := range seed.Customers {
		c.ID = NormalizeKey(c.ID)
		s.customers[c.ID] = c
		s.customerKeys = append(s.customerKeys, c.ID)
	}
	return s, nil
}

func (s *MemoryStore) GetProduct(_ context.Context, sku string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[NormalizeKey(sku)]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) GetOrder(_ context.Context, id string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[NormalizeKey(id)]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o.Clone(), nil
}

func (s *MemoryStore) GetCustomer(_ context.Context, id string) (Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[NormalizeKey(id)]
	if !ok {
		return Customer{}, ErrNotFound
	}
	return c, nil
}

func (s *MemoryStore) Products(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, 0, len(s.productKeys))
	for _, key := range s.productKeys {
		out = append(out, s.products[key])
	}
	return out, nil
}

func (s *MemoryStore) Orders(_ context.Context) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, 0, len(s.orderKeys))
	for _, key := range s.orderKeys {
		out = append(out, s.orders[key].Clone())
	}
	return out, nil
}

func (s *MemoryStore) Customers(_ context.Context) ([]Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Customer, 0, len(s.customerKeys))
	for _, key := range s.customerKeys {
		out = append(out, s.customers[key])
	}
	return out, nil
}

func (s *MemoryStore) CompareAndSetOrderStatus(_ context.Context, id string, expected, next enums.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := NormalizeKey(id)
	o, ok := s.orders[key]
	if !ok {
		return ErrNotFound
	}
	if o.Status != expected {
		return ErrStatusConflict
	}
	o.Status = next
	s.orders[key] = o
	return nil
}
