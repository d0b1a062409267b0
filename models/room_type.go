package models

// Room categories. Inventory initialization only ever produces these three,
// but hand-edited files may carry other names.
const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeSuite  = "Suite"
)

// RoomTypes lists the categories in ascending order.
var RoomTypes = []string{RoomTypeSingle, RoomTypeDouble, RoomTypeSuite}

// DefaultStayRate applies to any room type missing from the rate table.
const DefaultStayRate = 3000.0

var stayRates = map[string]float64{
	RoomTypeSingle: 3000,
	RoomTypeDouble: 4000,
	RoomTypeSuite:  5000,
}

// StayRate returns the fixed per-stay rate for a room type.
func StayRate(roomType string) float64 {
	if rate, ok := stayRates[roomType]; ok {
		return rate
	}
	return DefaultStayRate
}

// RoomTypeFor returns the category of room number i out of total rooms:
// the first third (integer division) is Single, the next third Double,
// the rest Suite.
func RoomTypeFor(i, total int) string {
	switch {
	case i <= total/3:
		return RoomTypeSingle
	case i <= 2*total/3:
		return RoomTypeDouble
	default:
		return RoomTypeSuite
	}
}

// RoomTypeRate pairs a category with its stay rate.
type RoomTypeRate struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}
