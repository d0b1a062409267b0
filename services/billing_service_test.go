package services

import (
	"testing"

	"hotel-frontdesk/models"
)

func TestGenerateBill(t *testing.T) {
	customers := newCustomerService(t, &memCustomers{saved: []models.Customer{
		{ID: 1, Name: "Alice", Contact: "555"},
	}})
	rooms := newRoomService(t, &memRooms{exists: true, saved: []models.Room{
		{Number: 1, Type: "Single", Occupied: true, CustomerID: intPtr(1)},
		{Number: 7, Type: "Double", Occupied: true, CustomerID: intPtr(1)},
		{Number: 11, Type: "Suite", Occupied: true, CustomerID: intPtr(42)},
		{Number: 12, Type: "Penthouse", Occupied: true, CustomerID: intPtr(1)},
		{Number: 13, Type: "Suite"},
	}}, 0)
	billing := NewBillingService(rooms, customers)

	tests := []struct {
		name   string
		room   int
		ok     bool
		wantTo string
		rate   float64
	}{
		{name: "single", room: 1, ok: true, wantTo: "Alice", rate: 3000},
		{name: "double", room: 7, ok: true, wantTo: "Alice", rate: 4000},
		{name: "deleted customer", room: 11, ok: true, wantTo: models.UnknownCustomerName, rate: 5000},
		{name: "unlisted type", room: 12, ok: true, wantTo: "Alice", rate: models.DefaultStayRate},
		{name: "free room", room: 13},
		{name: "missing room", room: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, ok := billing.GenerateBill(tt.room)
			if ok != tt.ok {
				t.Fatalf("GenerateBill(%d) ok = %t, want %t", tt.room, ok, tt.ok)
			}
			if !ok {
				return
			}
			if quote.CustomerName != tt.wantTo || quote.Rate != tt.rate || quote.RoomNumber != tt.room {
				t.Fatalf("quote = %+v", quote)
			}
		})
	}
}

func TestGenerateBillAfterCustomerDeleted(t *testing.T) {
	customers := newCustomerService(t, &memCustomers{})
	rooms := newRoomService(t, &memRooms{}, 15)
	billing := NewBillingService(rooms, customers)

	alice, _, _ := customers.Add("Alice", "555-1234", "alice@x.com")
	rooms.Book(7, alice.ID)

	quote, ok := billing.GenerateBill(7)
	if !ok || quote.CustomerName != "Alice" || quote.RoomType != "Double" || quote.Rate != 4000 {
		t.Fatalf("quote = %+v, %t", quote, ok)
	}

	customers.Delete(alice.ID)
	quote, ok = billing.GenerateBill(7)
	if !ok || quote.CustomerName != "Unknown" {
		t.Fatalf("quote after delete = %+v, %t", quote, ok)
	}
}
