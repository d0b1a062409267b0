package services

import (
	"slices"

	"hotel-frontdesk/models"
)

// ReportService derives occupancy figures from the room inventory.
type ReportService struct {
	Rooms     *RoomService
	Customers CustomerLookup
}

func NewReportService(rooms *RoomService, customers CustomerLookup) *ReportService {
	return &ReportService{Rooms: rooms, Customers: customers}
}

// Occupancy summarizes the current inventory. Projected revenue is the
// sum of the stay rates of every occupied room.
func (s *ReportService) Occupancy() models.OccupancyReport {
	rooms := s.Rooms.All()

	report := models.OccupancyReport{
		TotalRooms:     len(rooms),
		OccupiedByType: map[string]int{},
	}
	for _, r := range rooms {
		if !r.Occupied {
			continue
		}
		report.Occupied++
		report.OccupiedByType[r.Type]++
		report.ProjectedRevenue += models.StayRate(r.Type)
	}
	report.Available = report.TotalRooms - report.Occupied
	if report.TotalRooms > 0 {
		report.OccupancyRate = float64(report.Occupied) * 100 / float64(report.TotalRooms)
	}
	report.MostPopularType = mostPopular(report.OccupiedByType)
	return report
}

// mostPopular picks the type with the most occupied rooms. Ties go to the
// standard categories in ascending order, then to other names
// alphabetically.
func mostPopular(counts map[string]int) string {
	order := slices.Clone(models.RoomTypes)
	var others []string
	for t := range counts {
		if !slices.Contains(models.RoomTypes, t) {
			others = append(others, t)
		}
	}
	slices.Sort(others)
	order = append(order, others...)

	best, bestCount := "", 0
	for _, t := range order {
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}
	return best
}

// OccupiedBoard lists occupied rooms with their guest names resolved.
func (s *ReportService) OccupiedBoard() []models.OccupiedRoomView {
	occupied := s.Rooms.ListOccupied()

	board := make([]models.OccupiedRoomView, 0, len(occupied))
	for _, r := range occupied {
		id, _ := r.Occupant()
		board = append(board, models.OccupiedRoomView{
			RoomNumber:   r.Number,
			RoomType:     r.Type,
			CustomerID:   id,
			CustomerName: CustomerName(s.Customers, id),
		})
	}
	return board
}
