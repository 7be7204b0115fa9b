package model

// PaymentDetails is the validated customer submission at checkout.
type PaymentDetails struct {
	Method         PaymentMethod
	Email          string
	CardholderName string
}

// Confirmation is the result of a processed checkout.
type Confirmation struct {
	Order   Order
	Items   []OrderItem
	Payment Payment
}

// Succeeded reports whether the payment was captured.
func (c Confirmation) Succeeded() bool {
	return c.Payment.Status == StatusCompleted
}

// OrderDetails groups an order with its lines and payments.
type OrderDetails struct {
	Order    Order
	Items    []OrderItem
	Payments []Payment
}
