package dto

type UpdateUsernameRequestDTO struct {
	Username string `json:"username" example:"neo"`
}

type UpdateAvatarRequestDTO struct {
	AvatarURL string `json:"avatar_url" example:"/images/neo.png"`
}

type AddExperienceRequestDTO struct {
	ActionType string `json:"action_type" example:"solve_help"`
	CustomExp  *int   `json:"custom_exp,omitempty" example:"20"`
	Points     int    `json:"points" example:"10"`
}
