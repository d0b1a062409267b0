package models

import (
	"time"

	"gorm.io/datatypes"
)

// Activity kinds recorded after a successful mutation.
const (
	EventCustomerAdded    = "customer.added"
	EventCustomerDeleted  = "customer.deleted"
	EventRoomBooked       = "room.booked"
	EventRoomCheckedOut   = "room.checked_out"
	EventRoomsInitialized = "rooms.initialized"
)

// FrontDeskEvent is one row of the activity log.
type FrontDeskEvent struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Kind      string         `gorm:"column:kind;size:64;index" json:"kind"`
	Details   datatypes.JSON `gorm:"column:details" json:"details"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (FrontDeskEvent) TableName() string {
	return "frontdesk_events"
}
