package model

import (
	"time"

	"kitchen-core/internal/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Menu is a sellable bundle of products with its own price. Its price must
// never exceed the total of its composition, resolved against current
// product prices; when that stops holding the menu is hidden instead of sold
// at a loss for the buyer of the parts.
type Menu struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Price     money.Money `json:"price" db:"price"`
	Sellable  bool        `json:"sellable" db:"sellable"`
	Items     []MenuItem  `json:"items"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
}

// MenuItem is one constituent of a menu composition. Price caches the
// product's unit price and is refreshed whenever the product price changes.
// Duplicate product ids are allowed and each counted independently.
type MenuItem struct {
	ID        uuid.UUID   `json:"-" db:"id"`
	MenuID    uuid.UUID   `json:"-" db:"menu_id"`
	ProductID uuid.UUID   `json:"productId" db:"product_id"`
	Quantity  int64       `json:"quantity" db:"quantity"`
	Price     money.Money `json:"price" db:"price"`
}

// MenuCreateRequest is the payload for registering a menu.
type MenuCreateRequest struct {
	Name     string            `json:"name"`
	Price    string            `json:"price"`
	Sellable bool              `json:"sellable"`
	Items    []MenuItemRequest `json:"items"`
}

// MenuItemRequest is a single composition entry in a menu create request.
type MenuItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int64     `json:"quantity"`
}

// ConstituentTotal returns the sum of quantity x cached unit price over the
// composition.
func (m *Menu) ConstituentTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range m.Items {
		total = total.Add(item.Price.MulInt64(item.Quantity))
	}
	return total
}

// PriceConsistent reports whether the menu price does not exceed the
// constituent total.
func (m *Menu) PriceConsistent() bool {
	return m.Price.Decimal().LessThanOrEqual(m.ConstituentTotal())
}

// RefreshItemPrices updates the cached unit price of every item referencing
// the given product and reports whether any item was touched.
func (m *Menu) RefreshItemPrices(productID uuid.UUID, price money.Money) bool {
	touched := false
	for i := range m.Items {
		if m.Items[i].ProductID == productID {
			m.Items[i].Price = price
			touched = true
		}
	}
	return touched
}

// NewMenu validates and assembles a menu from a create request, resolving
// composition entries against the given products. Creation is strict: any
// inconsistency, including a price above the constituent total, fails with
// InvalidArgument.
func NewMenu(name string, price money.Money, sellable bool, itemReqs []MenuItemRequest, products map[uuid.UUID]Product) (*Menu, error) {
	if len(itemReqs) == 0 {
		return nil, InvalidArgument("menu must contain at least one item")
	}

	items := make([]MenuItem, len(itemReqs))
	for i, req := range itemReqs {
		if req.Quantity < 1 {
			return nil, InvalidArgument("menu item quantity must be at least 1")
		}
		product, ok := products[req.ProductID]
		if !ok {
			return nil, InvalidArgument("menu item references unknown product")
		}
		items[i] = MenuItem{
			ID:        uuid.New(),
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Price:     product.Price,
		}
	}

	menu := &Menu{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		Sellable:  sellable,
		Items:     items,
		CreatedAt: time.Now(),
	}
	for i := range menu.Items {
		menu.Items[i].MenuID = menu.ID
	}

	if !menu.PriceConsistent() {
		return nil, InvalidArgument("menu price must not exceed the total of its items")
	}

	return menu, nil
}

// ChangePrice applies an explicit menu price change. Unlike a product price
// change, this is a deliberate edit of the menu itself, so a resulting
// inconsistency fails instead of hiding the menu.
func (m *Menu) ChangePrice(price money.Money) error {
	previous := m.Price
	m.Price = price
	if !m.PriceConsistent() {
		m.Price = previous
		return InvalidArgument("menu price must not exceed the total of its items")
	}
	return nil
}

// Show makes the menu sellable again. It is rejected while the price
// invariant does not hold.
func (m *Menu) Show() error {
	if !m.PriceConsistent() {
		return Conflict("menu price exceeds the total of its items")
	}
	m.Sellable = true
	return nil
}

// Hide withdraws the menu from sale. Always succeeds.
func (m *Menu) Hide() {
	m.Sellable = false
}
