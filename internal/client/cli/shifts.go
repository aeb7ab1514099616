package cli

import "github.com/dmitrijs2005/macreserve/internal/models"

// shiftWindow is the booked time range for a shift.
type shiftWindow struct {
	Start string
	End   string
}

var shiftWindows = map[models.Shift]shiftWindow{
	models.ShiftMorning:   {Start: "08:00", End: "17:00"},
	models.ShiftAfternoon: {Start: "12:00", End: "21:00"},
}
