package dto

type CreateLogisticsRequestDTO struct {
	OrderID        int    `json:"order_id" example:"1"`
	TrackingNumber string `json:"tracking_number" example:"1Z999AA10123456784"`
	Carrier        string `json:"carrier" example:"UPS"`
}

type UpdateLogisticsRequestDTO struct {
	Status          string `json:"status" example:"in_transit"`
	CurrentLocation string `json:"current_location" example:"Berlin hub"`
}
