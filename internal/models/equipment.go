package models

import "fmt"

type EquipmentStatus string

const (
	EquipmentAvailable EquipmentStatus = "available"
	EquipmentReserved  EquipmentStatus = "reserved"
)

// Equipment is a bookable machine. Status is an advisory display flag; the
// ledger decides availability from active reservations only.
type Equipment struct {
	Code   string          `json:"code"`
	Label  string          `json:"label"`
	Status EquipmentStatus `json:"status"`
}

func (e Equipment) String() string {
	return fmt.Sprintf("%s - %s", e.Code, e.Label)
}
