// models/customer.go
package models

// Customer is a guest record kept by the front desk.
// Records are never edited after creation, only added or removed.
type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}
