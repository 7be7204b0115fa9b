package dto

import (
	"time"

	"github.com/polkiloo/checkout/internal/domain/model"
)

// PaymentRequest describes checkout submission payload.
type PaymentRequest struct {
	PaymentMethod  string `json:"paymentMethod" binding:"required,oneof=credit_card debit_card paypal"`
	Email          string `json:"email" binding:"omitempty,email"`
	CardholderName string `json:"cardholderName" binding:"omitempty,max=100"`
}

// Details converts the request into domain payment details.
func (r PaymentRequest) Details() model.PaymentDetails {
	return model.PaymentDetails{
		Method:         model.PaymentMethod(r.PaymentMethod),
		Email:          r.Email,
		CardholderName: r.CardholderName,
	}
}

// PaymentSummary is the short payment view returned after checkout.
type PaymentSummary struct {
	ID       int64   `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
}

// OrderSummary is the short order view returned after checkout.
type OrderSummary struct {
	ID     int64   `json:"id"`
	Total  float64 `json:"total"`
	Status string  `json:"status"`
}

// ProcessResponse answers POST /api/payments/process.
type ProcessResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Payment PaymentSummary `json:"payment"`
	Order   OrderSummary   `json:"order"`
}

// PaymentResponse is the full payment record.
type PaymentResponse struct {
	ID            int64     `json:"id"`
	OrderID       int64     `json:"orderId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PaymentLookupResponse answers GET /api/payments/:id.
type PaymentLookupResponse struct {
	Success bool            `json:"success"`
	Payment PaymentResponse `json:"payment"`
}

// NewProcessResponse renders a checkout confirmation.
func NewProcessResponse(c *model.Confirmation, message string) ProcessResponse {
	return ProcessResponse{
		Success: c.Succeeded(),
		Message: message,
		Payment: PaymentSummary{
			ID:       c.Payment.ID,
			Amount:   c.Payment.Amount.InexactFloat64(),
			Currency: c.Payment.Currency,
			Status:   string(c.Payment.Status),
		},
		Order: OrderSummary{
			ID:     c.Order.ID,
			Total:  c.Order.Total.InexactFloat64(),
			Status: string(c.Order.Status),
		},
	}
}

// NewPaymentResponse renders a stored payment.
func NewPaymentResponse(p model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Amount:        p.Amount.InexactFloat64(),
		Currency:      p.Currency,
		PaymentMethod: string(p.PaymentMethod),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}
