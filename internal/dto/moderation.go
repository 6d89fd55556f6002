package dto

type ReviewDecisionRequestDTO struct {
	ReviewComment string `json:"review_comment" example:"Looks good"`
}
