package attendance

import "math"

// Status classifies a closed attendance record by its total worked hours.
type Status string

const (
	StatusPresent    Status = "present"
	StatusOvertime   Status = "overtime"
	StatusIncomplete Status = "incomplete"
)

// ClassifyStatus maps total worked hours to a status. Classification happens
// once, at checkout, on the same rounded value that gets persisted:
//
//	hours > 8.0          -> overtime
//	hours < 7.0          -> incomplete
//	7.0 <= hours <= 8.0  -> present
func ClassifyStatus(hours float64) Status {
	switch {
	case hours > 8.0:
		return StatusOvertime
	case hours < 7.0:
		return StatusIncomplete
	default:
		return StatusPresent
	}
}

// RoundHours rounds a fractional hour count to 2 decimal places, the
// precision stored and returned by checkout.
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}
