package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-frontdesk/models"
)

func newEvent(kind string, details map[string]any) (models.FrontDeskEvent, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return models.FrontDeskEvent{}, fmt.Errorf("encode %s details: %w", kind, err)
	}
	return models.FrontDeskEvent{
		Kind:      kind,
		Details:   datatypes.JSON(raw),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventTable writes the activity log to the frontdesk_events table.
type EventTable struct {
	DB *gorm.DB
}

func NewEventTable(db *gorm.DB) *EventTable {
	return &EventTable{DB: db}
}

func (t *EventTable) Record(kind string, details map[string]any) error {
	ev, err := newEvent(kind, details)
	if err != nil {
		return err
	}
	if err := t.DB.Create(&ev).Error; err != nil {
		return fmt.Errorf("record %s: %w", kind, err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (t *EventTable) Recent(limit int) ([]models.FrontDeskEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	var events []models.FrontDeskEvent
	err := t.DB.Order("id DESC").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("load recent events: %w", err)
	}
	return events, nil
}

// LogEvents is the activity log used with the text-file backend: events go
// to the process log and the last few are kept in memory.
type LogEvents struct {
	mu     sync.Mutex
	keep   int
	nextID uint
	events []models.FrontDeskEvent
}

func NewLogEvents(keep int) *LogEvents {
	if keep <= 0 {
		keep = 100
	}
	return &LogEvents{keep: keep}
}

func (l *LogEvents) Record(kind string, details map[string]any) error {
	ev, err := newEvent(kind, details)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	ev.ID = l.nextID
	l.events = append(l.events, ev)
	if len(l.events) > l.keep {
		l.events = l.events[len(l.events)-l.keep:]
	}
	log.Printf("📝 %s %s", kind, ev.Details.String())
	return nil
}

func (l *LogEvents) Recent(limit int) ([]models.FrontDeskEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 || limit > len(l.events) {
		limit = len(l.events)
	}
	out := make([]models.FrontDeskEvent, 0, limit)
	for i := len(l.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, l.events[i])
	}
	return out, nil
}
