package model

import (
	"time"

	"kitchen-core/internal/money"

	"github.com/google/uuid"
)

// Product is a priced catalogue item referenced by menu compositions.
type Product struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Price     money.Money `json:"price" db:"price"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
}

// ProductCreateRequest is the payload for registering a product.
type ProductCreateRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// PriceChangeRequest is the payload for changing a product or menu price.
type PriceChangeRequest struct {
	Price string `json:"price"`
}
