package services

import "hotel-frontdesk/models"

// BillingService quotes the fixed per-stay rate for an occupied room.
// It only reads from the room and customer stores.
type BillingService struct {
	Rooms     RoomLookup
	Customers CustomerLookup
}

func NewBillingService(rooms RoomLookup, customers CustomerLookup) *BillingService {
	return &BillingService{Rooms: rooms, Customers: customers}
}

// GenerateBill returns false when the room does not exist, is free, or has
// no occupant recorded.
func (s *BillingService) GenerateBill(roomNumber int) (models.StayRateQuote, bool) {
	room, ok := s.Rooms.GetByNumber(roomNumber)
	if !ok || !room.Occupied {
		return models.StayRateQuote{}, false
	}
	occupant, ok := room.Occupant()
	if !ok {
		return models.StayRateQuote{}, false
	}

	return models.StayRateQuote{
		RoomNumber:   room.Number,
		CustomerName: CustomerName(s.Customers, occupant),
		RoomType:     room.Type,
		Rate:         models.StayRate(room.Type),
	}, true
}

// CustomerName resolves a customer id to a display name, falling back to
// models.UnknownCustomerName for ids that no longer exist.
func CustomerName(customers CustomerLookup, id int) string {
	if c, ok := customers.GetByID(id); ok {
		return c.Name
	}
	return models.UnknownCustomerName
}
