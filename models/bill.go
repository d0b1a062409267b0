package models

// UnknownCustomerName is shown when a room points at a customer that no
// longer exists.
const UnknownCustomerName = "Unknown"

// StayRateQuote is the fixed-rate bill for an occupied room. It is computed
// on request and never stored.
type StayRateQuote struct {
	RoomNumber   int     `json:"roomNumber"`
	CustomerName string  `json:"customerName"`
	RoomType     string  `json:"roomType"`
	Rate         float64 `json:"rate"`
}

// LineItem is one row of an itemized invoice.
type LineItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Total is UnitPrice × Quantity.
func (li LineItem) Total() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

type InvoiceTotals struct {
	Items      []LineItem `json:"items"`
	Subtotal   float64    `json:"subtotal"`
	Discount   float64    `json:"discount"`
	GrandTotal float64    `json:"grandTotal"`
	AmountPaid float64    `json:"amountPaid"`
}

// PaymentResult reports the outcome of a tendered payment. A rejected
// payment carries the shortfall; an accepted one carries the change due.
type PaymentResult struct {
	Accepted  bool    `json:"accepted"`
	Tendered  float64 `json:"tendered"`
	Shortfall float64 `json:"shortfall"`
	Change    float64 `json:"change"`
	Message   string  `json:"message"`
}
