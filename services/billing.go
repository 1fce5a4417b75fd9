package services

import (
	"time"

	"cafe-pos/models"
)

// Bill is the checkout breakdown. Preview and checkout return the same
// shape; the only difference between the two is the write-back.
type Bill struct {
	ElapsedHours     float64 `json:"elapsed_hours"`
	OccupancyCharge  float64 `json:"occupancy_charge"`
	ConsumptionTotal float64 `json:"consumption_total"`
	GrandTotal       float64 `json:"grand_total"`
}

// ComputeBill is a pure function of the session, its orders, the table's
// current hourly rate and the close time. Consumption sums the totals
// frozen on the orders (each already carries its own discount); it never
// re-reads catalog prices. Elapsed time uses time.Sub, so wall-clock
// adjustments between start and close do not distort the charge.
func ComputeBill(session *models.TableSession, orders []models.Order, hourlyRate float64, closeTime time.Time) Bill {
	hours := closeTime.Sub(session.StartTime).Hours()
	occupancy := hours * hourlyRate

	var consumption float64
	for _, order := range orders {
		consumption += order.Total
	}

	return Bill{
		ElapsedHours:     hours,
		OccupancyCharge:  occupancy,
		ConsumptionTotal: consumption,
		GrandTotal:       occupancy + consumption,
	}
}
