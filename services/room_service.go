package services

import (
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"

	"hotel-frontdesk/models"
)

// RoomService owns the room inventory and its occupancy state.
type RoomService struct {
	mu     sync.Mutex
	repo   RoomRepository
	events ActivityLog
	rooms  []models.Room
}

// NewRoomService loads the persisted inventory, or initializes totalRooms
// fresh rooms when nothing has been persisted yet.
func NewRoomService(repo RoomRepository, totalRooms int, events ActivityLog) (*RoomService, error) {
	if events == nil {
		events = nopActivityLog{}
	}
	s := &RoomService{repo: repo, events: events}

	exists, err := repo.RoomsExist()
	if err != nil {
		return nil, fmt.Errorf("open room inventory: %w", err)
	}
	if exists {
		err = s.Load()
	} else {
		err = s.Initialize(totalRooms)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Initialize replaces the inventory with rooms 1..totalRooms, split into
// thirds by category, all unoccupied, and persists it.
func (s *RoomService) Initialize(totalRooms int) error {
	if totalRooms < 0 {
		return fmt.Errorf("initialize rooms: negative room count %d", totalRooms)
	}

	rooms := make([]models.Room, 0, totalRooms)
	for i := 1; i <= totalRooms; i++ {
		rooms = append(rooms, models.Room{Number: i, Type: models.RoomTypeFor(i, totalRooms)})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveRooms(rooms); err != nil {
		return fmt.Errorf("initialize rooms: %w", err)
	}
	s.rooms = rooms

	log.Printf("✅ room inventory initialized with %d rooms", totalRooms)
	s.record(models.EventRoomsInitialized, map[string]any{"totalRooms": totalRooms})
	return nil
}

// Load reads the persisted inventory. Rooms that break the occupancy
// invariant and repeated room numbers are skipped; the first occurrence of
// a number wins.
func (s *RoomService) Load() error {
	loaded, err := s.repo.LoadRooms()
	if err != nil {
		return fmt.Errorf("load rooms: %w", err)
	}

	seen := make(map[int]bool, len(loaded))
	rooms := make([]models.Room, 0, len(loaded))
	for _, r := range loaded {
		if err := validateRoom(r); err != nil {
			log.Printf("⚠️ room %d skipped: %v", r.Number, err)
			continue
		}
		if seen[r.Number] {
			log.Printf("⚠️ duplicate room number %d skipped", r.Number)
			continue
		}
		seen[r.Number] = true
		rooms = append(rooms, r)
	}

	s.mu.Lock()
	s.rooms = rooms
	s.mu.Unlock()
	return nil
}

func validateRoom(r models.Room) error {
	if strings.TrimSpace(r.Type) == "" {
		return fmt.Errorf("empty room type")
	}
	if r.Occupied != (r.CustomerID != nil) {
		return fmt.Errorf("occupied=%t disagrees with occupant", r.Occupied)
	}
	return nil
}

// All returns every room in storage order.
func (s *RoomService) All() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRooms(s.rooms, func(models.Room) bool { return true })
}

// ListAvailable returns the unoccupied rooms sorted by number.
func (s *RoomService) ListAvailable() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms := cloneRooms(s.rooms, func(r models.Room) bool { return !r.Occupied })
	slices.SortFunc(rooms, func(a, b models.Room) int { return a.Number - b.Number })
	return rooms
}

// ListOccupied returns the occupied rooms in storage order.
func (s *RoomService) ListOccupied() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRooms(s.rooms, func(r models.Room) bool { return r.Occupied })
}

// GetByNumber returns a copy of the room with the given number.
func (s *RoomService) GetByNumber(number int) (models.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(number); idx >= 0 {
		return cloneRoom(s.rooms[idx]), true
	}
	return models.Room{}, false
}

// Book marks a free room occupied by customerID. It returns false without
// touching anything when the room is unknown or already occupied. The
// customer id is not checked against the customer store.
func (s *RoomService) Book(number, customerID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(number)
	if idx < 0 || s.rooms[idx].Occupied {
		return false, nil
	}

	next := slices.Clone(s.rooms)
	occupant := customerID
	next[idx].Occupied = true
	next[idx].CustomerID = &occupant
	if err := s.repo.SaveRooms(next); err != nil {
		return false, fmt.Errorf("book room %d: %w", number, err)
	}
	s.rooms = next

	s.record(models.EventRoomBooked, map[string]any{"roomNumber": number, "customerId": customerID})
	return true, nil
}

// CheckOut frees an occupied room. Unknown or free rooms return false.
func (s *RoomService) CheckOut(number int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(number)
	if idx < 0 || !s.rooms[idx].Occupied {
		return false, nil
	}

	next := slices.Clone(s.rooms)
	previous, _ := next[idx].Occupant()
	next[idx].Occupied = false
	next[idx].CustomerID = nil
	if err := s.repo.SaveRooms(next); err != nil {
		return false, fmt.Errorf("check out room %d: %w", number, err)
	}
	s.rooms = next

	s.record(models.EventRoomCheckedOut, map[string]any{"roomNumber": number, "customerId": previous})
	return true, nil
}

// indexOf expects s.mu to be held.
func (s *RoomService) indexOf(number int) int {
	return slices.IndexFunc(s.rooms, func(r models.Room) bool { return r.Number == number })
}

func (s *RoomService) record(kind string, details map[string]any) {
	if err := s.events.Record(kind, details); err != nil {
		log.Printf("⚠️ activity log: %v", err)
	}
}

func cloneRoom(r models.Room) models.Room {
	if r.CustomerID != nil {
		id := *r.CustomerID
		r.CustomerID = &id
	}
	return r
}

func cloneRooms(rooms []models.Room, keep func(models.Room) bool) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if keep(r) {
			out = append(out, cloneRoom(r))
		}
	}
	return out
}
