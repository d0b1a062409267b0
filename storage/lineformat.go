package storage

import (
	"fmt"
	"strconv"
	"strings"

	"hotel-frontdesk/models"
)

// Records are stored one per line as comma-joined positional fields.
// Fields are not escaped, so a value containing a comma produces a line
// with the wrong field count, which decodes as malformed.
const (
	fieldSep       = ","
	customerFields = 4 // id,name,contact,email
	roomFields     = 4 // number,type,occupied,occupant
)

func EncodeCustomer(c models.Customer) string {
	return strings.Join([]string{strconv.Itoa(c.ID), c.Name, c.Contact, c.Email}, fieldSep)
}

func DecodeCustomer(line string) (models.Customer, error) {
	parts, err := splitFields(line, customerFields)
	if err != nil {
		return models.Customer{}, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: customer id %q", ErrMalformedLine, parts[0])
	}
	return models.Customer{ID: id, Name: parts[1], Contact: parts[2], Email: parts[3]}, nil
}

// EncodeRoom writes the occupancy flag as True/False and leaves the
// occupant field empty for a free room.
func EncodeRoom(r models.Room) string {
	occupant := ""
	if r.CustomerID != nil {
		occupant = strconv.Itoa(*r.CustomerID)
	}
	occupied := "False"
	if r.Occupied {
		occupied = "True"
	}
	return strings.Join([]string{strconv.Itoa(r.Number), r.Type, occupied, occupant}, fieldSep)
}

func DecodeRoom(line string) (models.Room, error) {
	parts, err := splitFields(line, roomFields)
	if err != nil {
		return models.Room{}, err
	}

	number, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return models.Room{}, fmt.Errorf("%w: room number %q", ErrMalformedLine, parts[0])
	}
	if parts[1] == "" {
		return models.Room{}, fmt.Errorf("%w: room %d has no type", ErrMalformedLine, number)
	}

	var occupied bool
	switch flag := strings.TrimSpace(parts[2]); {
	case strings.EqualFold(flag, "true"):
		occupied = true
	case strings.EqualFold(flag, "false"):
		occupied = false
	default:
		return models.Room{}, fmt.Errorf("%w: occupancy flag %q", ErrMalformedLine, parts[2])
	}

	room := models.Room{Number: number, Type: parts[1], Occupied: occupied}
	if raw := strings.TrimSpace(parts[3]); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return models.Room{}, fmt.Errorf("%w: occupant id %q", ErrMalformedLine, parts[3])
		}
		room.CustomerID = &id
	}

	if room.Occupied != (room.CustomerID != nil) {
		return models.Room{}, fmt.Errorf("%w: room %d occupancy flag disagrees with occupant", ErrMalformedLine, number)
	}
	return room, nil
}

func splitFields(line string, want int) ([]string, error) {
	parts := strings.Split(strings.TrimRight(line, "\r"), fieldSep)
	if len(parts) != want {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedLine, want, len(parts))
	}
	return parts, nil
}
