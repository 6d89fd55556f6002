package dto

import "encoding/json"

type BatchCreateRequestDTO struct {
	Items []map[string]json.RawMessage `json:"items"`
}

type BatchUpdateItemDTO struct {
	ID      int64                      `json:"id" example:"1"`
	Updates map[string]json.RawMessage `json:"updates"`
}

type BatchUpdateRequestDTO struct {
	Items []BatchUpdateItemDTO `json:"items"`
}

type BatchDeleteRequestDTO struct {
	IDs []int64 `json:"ids" example:"1,2,3"`
}

type DeleteResponseDTO struct {
	Message string `json:"message" example:"Deleted successfully"`
	ID      int64  `json:"id" example:"1"`
}

type BatchDeleteResponseDTO struct {
	Message      string `json:"message" example:"Successfully deleted 2 cart_items"`
	DeletedCount int64  `json:"deleted_count" example:"2"`
}
