package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/angelmondragon/shopdesk/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
)

var (
	// ErrNotFound reports a key absent from the store.
	ErrNotFound = errors.New("catalog: record not found")
	// ErrStatusConflict reports a compare-and-set whose expected status no
	// longer matches the stored one.
	ErrStatusConflict = errors.New("catalog: order status changed concurrently")
)

// Store owns the product, order and customer tables. Returned records are
// copies; Products, Orders and Customers return snapshots in insertion order.
type Store interface {
	GetProduct(ctx context.Context, sku string) (Product, error)
	GetOrder(ctx context.Context, id string) (Order, error)
	GetCustomer(ctx context.Context, id string) (Customer, error)
	Products(ctx context.Context) ([]Product, error)
	Orders(ctx context.Context) ([]Order, error)
	Customers(ctx context.Context) ([]Customer, error)
	// CompareAndSetOrderStatus moves the order to next only if its current
	// status equals expected.
	CompareAndSetOrderStatus(ctx context.Context, id string, expected, next enums.OrderStatus) error
}

// NormalizeKey uppercases a lookup key. Stored keys are already uppercase.
// Surrounding whitespace is kept, so " ORD001 " does not match.
func NormalizeKey(key string) string {
	return strings.ToUpper(key)
}

// LookupError converts a store error into the API error taxonomy.
func LookupError(err error, notFound string, op string) error {
	if errors.Is(err, ErrNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFound)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, op)
}
