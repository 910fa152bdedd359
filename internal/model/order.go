package model

import (
	"fmt"
	"time"

	"kitchen-core/internal/money"

	"github.com/google/uuid"
)

// OrderType discriminates the three fulfillment channels.
type OrderType string

const (
	OrderTypeEatIn    OrderType = "EAT_IN"
	OrderTypeTakeout  OrderType = "TAKEOUT"
	OrderTypeDelivery OrderType = "DELIVERY"
)

// OrderStatus is the lifecycle state of an order. Transitions are strictly
// linear: WAITING -> ACCEPTED -> SERVED -> COMPLETED.
type OrderStatus string

const (
	OrderStatusWaiting   OrderStatus = "WAITING"
	OrderStatusAccepted  OrderStatus = "ACCEPTED"
	OrderStatusServed    OrderStatus = "SERVED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// Order is one customer order of any type. TableID is set for eat-in orders
// only; DeliveryAddress for delivery orders only.
type Order struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	Type            OrderType   `json:"type" db:"type"`
	Status          OrderStatus `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	Lines           []OrderLine `json:"lines"`
	TableID         *uuid.UUID  `json:"tableId,omitempty" db:"table_id"`
	DeliveryAddress *string     `json:"deliveryAddress,omitempty" db:"delivery_address"`
}

// OrderLine is an immutable snapshot of {menu id, quantity, unit price}
// captured when the order is created. Later menu price changes never touch
// it.
type OrderLine struct {
	ID       uuid.UUID   `json:"-" db:"id"`
	OrderID  uuid.UUID   `json:"-" db:"order_id"`
	MenuID   uuid.UUID   `json:"menuId" db:"menu_id"`
	Quantity int64       `json:"quantity" db:"quantity"`
	Price    money.Money `json:"price" db:"price"`
}

// OrderLineRequest is a single line in an order create request. Price is
// the price the customer saw; creation fails if it no longer matches the
// menu's current price.
type OrderLineRequest struct {
	MenuID   uuid.UUID `json:"menuId"`
	Quantity int64     `json:"quantity"`
	Price    string    `json:"price"`
}

// TakeoutOrderCreateRequest is the payload for a takeout order.
type TakeoutOrderCreateRequest struct {
	Lines []OrderLineRequest `json:"lines"`
}

// EatInOrderCreateRequest is the payload for an eat-in order.
type EatInOrderCreateRequest struct {
	TableID uuid.UUID          `json:"tableId"`
	Lines   []OrderLineRequest `json:"lines"`
}

// DeliveryOrderCreateRequest is the payload for a delivery order.
type DeliveryOrderCreateRequest struct {
	DeliveryAddress string             `json:"deliveryAddress"`
	Lines           []OrderLineRequest `json:"lines"`
}

// previousStatus maps each reachable status to the only status it may be
// entered from. Shared by all three order types.
var previousStatus = map[OrderStatus]OrderStatus{
	OrderStatusAccepted:  OrderStatusWaiting,
	OrderStatusServed:    OrderStatusAccepted,
	OrderStatusCompleted: OrderStatusServed,
}

func (o *Order) transition(to OrderStatus) error {
	if o.Status != previousStatus[to] {
		return InvalidState(fmt.Sprintf("order %s cannot move from %s to %s", o.ID, o.Status, to))
	}
	o.Status = to
	return nil
}

// Accept moves a waiting order to ACCEPTED.
func (o *Order) Accept() error {
	return o.transition(OrderStatusAccepted)
}

// Serve moves an accepted order to SERVED.
func (o *Order) Serve() error {
	return o.transition(OrderStatusServed)
}

// Complete moves a served order to COMPLETED. For eat-in orders the caller
// must clear the table in the same transaction.
func (o *Order) Complete() error {
	return o.transition(OrderStatusCompleted)
}

// newOrderLines validates line requests against the resolved menus and
// captures price snapshots. rejectNegativeQuantity is the delivery-only
// strictness; eat-in and takeout deliberately accept negative and zero
// quantities.
func newOrderLines(orderID uuid.UUID, reqs []OrderLineRequest, menus map[uuid.UUID]Menu, rejectNegativeQuantity bool) ([]OrderLine, error) {
	if len(reqs) == 0 {
		return nil, InvalidArgument("order must contain at least one line")
	}

	lines := make([]OrderLine, len(reqs))
	for i, req := range reqs {
		if rejectNegativeQuantity && req.Quantity < 0 {
			return nil, InvalidArgument("order line quantity must not be negative")
		}
		menu, ok := menus[req.MenuID]
		if !ok {
			return nil, InvalidArgument("order line references unknown menu")
		}
		if !menu.Sellable {
			return nil, InvalidState("order line references a menu that is not sellable")
		}
		price, err := money.Parse(req.Price)
		if err != nil {
			return nil, InvalidArgument("invalid order line price")
		}
		if !price.Equal(menu.Price) {
			return nil, InvalidArgument("order line price does not match the menu price")
		}
		lines[i] = OrderLine{
			ID:       uuid.New(),
			OrderID:  orderID,
			MenuID:   req.MenuID,
			Quantity: req.Quantity,
			Price:    price,
		}
	}
	return lines, nil
}

// NewTakeoutOrder creates a waiting takeout order from the given line
// requests, resolved against menus.
func NewTakeoutOrder(reqs []OrderLineRequest, menus map[uuid.UUID]Menu) (*Order, error) {
	order := &Order{
		ID:        uuid.New(),
		Type:      OrderTypeTakeout,
		Status:    OrderStatusWaiting,
		CreatedAt: time.Now(),
	}
	lines, err := newOrderLines(order.ID, reqs, menus, false)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	return order, nil
}

// NewEatInOrder creates a waiting eat-in order bound to a seated table.
func NewEatInOrder(reqs []OrderLineRequest, menus map[uuid.UUID]Menu, table *Table) (*Order, error) {
	if !table.Occupied {
		return nil, InvalidState("eat-in order requires an occupied table")
	}
	order := &Order{
		ID:        uuid.New(),
		Type:      OrderTypeEatIn,
		Status:    OrderStatusWaiting,
		CreatedAt: time.Now(),
		TableID:   &table.ID,
	}
	lines, err := newOrderLines(order.ID, reqs, menus, false)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	return order, nil
}

// NewDeliveryOrder creates a waiting delivery order. Delivery is stricter
// than the other channels: negative quantities are rejected and a delivery
// address is required.
func NewDeliveryOrder(address string, reqs []OrderLineRequest, menus map[uuid.UUID]Menu) (*Order, error) {
	if address == "" {
		return nil, InvalidArgument("delivery address is required")
	}
	order := &Order{
		ID:              uuid.New(),
		Type:            OrderTypeDelivery,
		Status:          OrderStatusWaiting,
		CreatedAt:       time.Now(),
		DeliveryAddress: &address,
	}
	lines, err := newOrderLines(order.ID, reqs, menus, true)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	return order, nil
}
