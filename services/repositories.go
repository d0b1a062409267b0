package services

import "hotel-frontdesk/models"

// CustomerRepository persists the whole customer collection at once.
// Implemented by storage.CustomerFile and storage.CustomerTable.
type CustomerRepository interface {
	LoadCustomers() ([]models.Customer, error)
	SaveCustomers(customers []models.Customer) error
}

// RoomRepository persists the whole room inventory at once.
type RoomRepository interface {
	RoomsExist() (bool, error)
	LoadRooms() ([]models.Room, error)
	SaveRooms(rooms []models.Room) error
}

// ActivityLog records front desk mutations after they succeed.
type ActivityLog interface {
	Record(kind string, details map[string]any) error
	Recent(limit int) ([]models.FrontDeskEvent, error)
}

// CustomerLookup resolves the weak customer reference a room holds.
type CustomerLookup interface {
	GetByID(id int) (models.Customer, bool)
}

// RoomLookup finds a room by number for read-only callers.
type RoomLookup interface {
	GetByNumber(number int) (models.Room, bool)
}

type nopActivityLog struct{}

func (nopActivityLog) Record(string, map[string]any) error { return nil }

func (nopActivityLog) Recent(int) ([]models.FrontDeskEvent, error) { return nil, nil }
