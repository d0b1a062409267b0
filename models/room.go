package models

type Room struct {
	Number   int    `json:"number"`
	Type     string `json:"type"`
	Occupied bool   `json:"occupied"`

	// CustomerID is a weak reference into the customer store. It is set
	// exactly when Occupied is true and may point at a deleted customer.
	CustomerID *int `json:"customerId,omitempty"`
}

// Occupant returns the occupant id, if any.
func (r Room) Occupant() (int, bool) {
	if r.CustomerID == nil {
		return 0, false
	}
	return *r.CustomerID, true
}
