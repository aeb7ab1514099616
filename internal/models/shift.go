package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/macreserve/internal/common"
)

// Shift is one of the two fixed daily booking windows.
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
)

// DateLayout is the DD-MM-YYYY form dates are entered and stored in.
const DateLayout = "02-01-2006"

// ClockLayout is the HH:MM form of reservation start and end times.
const ClockLayout = "15:04"

var shiftAliases = map[string]Shift{
	"morning":   ShiftMorning,
	"mañana":    ShiftMorning,
	"manana":    ShiftMorning,
	"afternoon": ShiftAfternoon,
	"tarde":     ShiftAfternoon,
}

// ParseShift accepts "morning"/"afternoon" and the Spanish "mañana"/"tarde",
// ignoring case and surrounding spaces.
func ParseShift(s string) (Shift, error) {
	shift, ok := shiftAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("shift %q: only morning or afternoon: %w", s, common.ErrorInvalidInput)
	}
	return shift, nil
}

func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftAfternoon
}

// ValidateDate checks that date is a real calendar day in DD-MM-YYYY form.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("date %q: expected DD-MM-YYYY: %w", date, common.ErrorInvalidInput)
	}
	return nil
}

// ValidateClock checks an HH:MM clock value.
func ValidateClock(clock string) error {
	if _, err := time.Parse(ClockLayout, clock); err != nil {
		return fmt.Errorf("time %q: expected HH:MM: %w", clock, common.ErrorInvalidInput)
	}
	return nil
}
