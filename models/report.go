package models

type OccupancyReport struct {
	TotalRooms       int            `json:"totalRooms"`
	Occupied         int            `json:"occupied"`
	Available        int            `json:"available"`
	OccupancyRate    float64        `json:"occupancyRate"`
	ProjectedRevenue float64        `json:"projectedRevenue"`
	OccupiedByType   map[string]int `json:"occupiedByType"`
	MostPopularType  string         `json:"mostPopularType,omitempty"`
}

// OccupiedRoomView is a row of the check-out board.
type OccupiedRoomView struct {
	RoomNumber   int    `json:"roomNumber"`
	RoomType     string `json:"roomType"`
	CustomerID   int    `json:"customerId"`
	CustomerName string `json:"customerName"`
}
