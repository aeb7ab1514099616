package rpc

import "github.com/dmitrijs2005/macreserve/internal/models"

type PingResponse struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

type ListAvailableRequest struct {
	Date  string `json:"date"`
	Shift string `json:"shift"`
}

type EquipmentList struct {
	Items []models.Equipment `json:"items"`
}

type ReserveRequest struct {
	Equipment string `json:"equipment"`
	Date      string `json:"date"`
	Shift     string `json:"shift"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ReservationReply struct {
	Reservation models.Reservation `json:"reservation"`
}

type ReservationList struct {
	Items []models.Reservation `json:"items"`
}

type ReturnRequest struct {
	ID string `json:"id"`
}

type HistoryRequest struct {
	Equipment string `json:"equipment"`
}
