package dto

import (
	"time"

	"github.com/polkiloo/checkout/internal/domain/model"
)

// OrderResponse is the full order record.
type OrderResponse struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"userId"`
	Subtotal  float64   `json:"subtotal"`
	Tax       float64   `json:"tax"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderItemResponse is a single order line.
type OrderItemResponse struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"orderId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderDetailsResponse answers GET /api/orders/:id.
type OrderDetailsResponse struct {
	Success  bool                `json:"success"`
	Order    OrderResponse       `json:"order"`
	Items    []OrderItemResponse `json:"items"`
	Payments []PaymentResponse   `json:"payments"`
}

// NewOrderDetailsResponse renders an order with its lines and payments.
func NewOrderDetailsResponse(d *model.OrderDetails) OrderDetailsResponse {
	resp := OrderDetailsResponse{
		Success: true,
		Order: OrderResponse{
			ID:        d.Order.ID,
			UserID:    d.Order.UserID,
			Subtotal:  d.Order.Subtotal.InexactFloat64(),
			Tax:       d.Order.Tax.InexactFloat64(),
			Total:     d.Order.Total.InexactFloat64(),
			Status:    string(d.Order.Status),
			CreatedAt: d.Order.CreatedAt,
		},
		Items:    make([]OrderItemResponse, 0, len(d.Items)),
		Payments: make([]PaymentResponse, 0, len(d.Payments)),
	}
	for _, item := range d.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price.InexactFloat64(),
		})
	}
	for _, p := range d.Payments {
		resp.Payments = append(resp.Payments, NewPaymentResponse(p))
	}
	return resp
}
