package services

import (
	"errors"
	"slices"

	"hotel-frontdesk/models"
)

var errDiskFull = errors.New("disk full")

// memCustomers is an in-memory CustomerRepository. Setting fail makes every
// save return errDiskFull.
type memCustomers struct {
	saved []models.Customer
	saves int
	fail  bool
}

func (m *memCustomers) LoadCustomers() ([]models.Customer, error) {
	return slices.Clone(m.saved), nil
}

func (m *memCustomers) SaveCustomers(customers []models.Customer) error {
	if m.fail {
		return errDiskFull
	}
	m.saves++
	m.saved = slices.Clone(customers)
	return nil
}

type memRooms struct {
	saved  []models.Room
	exists bool
	saves  int
	fail   bool
}

func (m *memRooms) RoomsExist() (bool, error) { return m.exists, nil }

func (m *memRooms) LoadRooms() ([]models.Room, error) {
	return cloneRooms(m.saved, func(models.Room) bool { return true }), nil
}

func (m *memRooms) SaveRooms(rooms []models.Room) error {
	if m.fail {
		return errDiskFull
	}
	m.saves++
	m.exists = true
	m.saved = cloneRooms(rooms, func(models.Room) bool { return true })
	return nil
}

type recordedEvent struct {
	kind    string
	details map[string]any
}

type memEvents struct {
	events []recordedEvent
}

func (m *memEvents) Record(kind string, details map[string]any) error {
	m.events = append(m.events, recordedEvent{kind: kind, details: details})
	return nil
}

func (m *memEvents) Recent(int) ([]models.FrontDeskEvent, error) { return nil, nil }

func (m *memEvents) kinds() []string {
	out := make([]string, len(m.events))
	for i, e := range m.events {
		out[i] = e.kind
	}
	return out
}

func intPtr(v int) *int { return &v }
