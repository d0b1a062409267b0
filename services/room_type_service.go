package services

import "hotel-frontdesk/models"

// RoomTypeService exposes the rate table and how many rooms of each
// category the inventory holds.
type RoomTypeService struct {
	Rooms *RoomService
}

type RoomTypeSummary struct {
	models.RoomTypeRate
	Rooms     int `json:"rooms"`
	Available int `json:"available"`
}

func NewRoomTypeService(rooms *RoomService) *RoomTypeService {
	return &RoomTypeService{Rooms: rooms}
}

// GetAll lists the standard categories first, then any other category
// found in the inventory in order of first appearance.
func (s RoomTypeService) GetAll() []RoomTypeSummary {
	byName := map[string]*RoomTypeSummary{}
	var out []*RoomTypeSummary
	add := func(name string) *RoomTypeSummary {
		if rt, ok := byName[name]; ok {
			return rt
		}
		rt := &RoomTypeSummary{RoomTypeRate: models.RoomTypeRate{Name: name, Rate: models.StayRate(name)}}
		byName[name] = rt
		out = append(out, rt)
		return rt
	}

	for _, name := range models.RoomTypes {
		add(name)
	}
	for _, r := range s.Rooms.All() {
		rt := add(r.Type)
		rt.Rooms++
		if !r.Occupied {
			rt.Available++
		}
	}

	summaries := make([]RoomTypeSummary, len(out))
	for i, rt := range out {
		summaries[i] = *rt
	}
	return summaries
}
