package services

import (
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"

	"hotel-frontdesk/models"
)

// CustomerService owns the customer collection. Every successful mutation
// rewrites the repository before it returns; a failed write leaves the
// collection untouched.
type CustomerService struct {
	mu        sync.Mutex
	repo      CustomerRepository
	events    ActivityLog
	customers []models.Customer
}

// NewCustomerService loads the persisted customers. events may be nil.
func NewCustomerService(repo CustomerRepository, events ActivityLog) (*CustomerService, error) {
	if events == nil {
		events = nopActivityLog{}
	}
	s := &CustomerService{repo: repo, events: events}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory collection with the persisted one. A record
// whose id was already seen is dropped; the first occurrence wins.
func (s *CustomerService) Load() error {
	loaded, err := s.repo.LoadCustomers()
	if err != nil {
		return fmt.Errorf("load customers: %w", err)
	}

	seen := make(map[int]bool, len(loaded))
	customers := make([]models.Customer, 0, len(loaded))
	for _, c := range loaded {
		if seen[c.ID] {
			log.Printf("⚠️ duplicate customer id %d skipped", c.ID)
			continue
		}
		seen[c.ID] = true
		customers = append(customers, c)
	}

	s.mu.Lock()
	s.customers = customers
	s.mu.Unlock()
	return nil
}

// Add creates a customer. Blank name or contact, or a line break in any
// field, is rejected with ok=false and no error; email may be empty.
func (s *CustomerService) Add(name, contact, email string) (models.Customer, bool, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(contact) == "" {
		return models.Customer{}, false, nil
	}
	if strings.ContainsAny(name+contact+email, "\r\n") {
		return models.Customer{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Customer{ID: s.nextID(), Name: name, Contact: contact, Email: email}
	next := append(slices.Clone(s.customers), c)
	if err := s.repo.SaveCustomers(next); err != nil {
		return models.Customer{}, false, fmt.Errorf("add customer: %w", err)
	}
	s.customers = next

	s.record(models.EventCustomerAdded, map[string]any{"customerId": c.ID, "name": c.Name})
	return c, true, nil
}

// nextID is one more than the highest id in use, or 1 for an empty store.
// Callers hold s.mu.
func (s *CustomerService) nextID() int {
	highest := 0
	for _, c := range s.customers {
		highest = max(highest, c.ID)
	}
	return highest + 1
}

// List returns the customers in insertion order.
func (s *CustomerService) List() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.customers)
}

// GetByID looks a customer up by id.
func (s *CustomerService) GetByID(id int) (models.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// Delete removes a customer. Rooms still pointing at the id are left alone.
func (s *CustomerService) Delete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.customers, func(c models.Customer) bool { return c.ID == id })
	if idx < 0 {
		return false, nil
	}

	removed := s.customers[idx]
	next := slices.Delete(slices.Clone(s.customers), idx, idx+1)
	if err := s.repo.SaveCustomers(next); err != nil {
		return false, fmt.Errorf("delete customer %d: %w", id, err)
	}
	s.customers = next

	s.record(models.EventCustomerDeleted, map[string]any{"customerId": removed.ID, "name": removed.Name})
	return true, nil
}

func (s *CustomerService) record(kind string, details map[string]any) {
	if err := s.events.Record(kind, details); err != nil {
		log.Printf("⚠️ activity log: %v", err)
	}
}
