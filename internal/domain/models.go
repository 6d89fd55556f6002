package domain

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	PostTypeHelp  = "help"
	PostTypeDaily = "daily"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const (
	LogisticsStatusShipped   = "shipped"
	LogisticsStatusInTransit = "in_transit"
	LogisticsStatusDelivered = "delivered"
)

type RatingKind string

const (
	RatingProduct RatingKind = "product"
	RatingShop    RatingKind = "shop"
)

const (
	TaskTypeShop = "shop"
	TaskTypePost = "post"
)

type UserProfile struct {
	ID         int       `db:"id"          json:"id"`
	UserID     string    `db:"user_id"     json:"user_id"`
	Username   string    `db:"username"    json:"username"`
	AvatarURL  string    `db:"avatar_url"  json:"avatar_url"`
	Experience int       `db:"experience"  json:"experience"`
	Level      int       `db:"level"       json:"level"`
	Points     int       `db:"points"      json:"points"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
}

type ExperienceLog struct {
	ID               int       `db:"id"                json:"id"`
	UserID           string    `db:"user_id"           json:"user_id"`
	ActionType       string    `db:"action_type"       json:"action_type"`
	ExperienceChange int       `db:"experience_change" json:"experience_change"`
	PointsChange     int       `db:"points_change"     json:"points_change"`
	CreatedAt        time.Time `db:"created_at"        json:"created_at"`
}

type ExperienceResult struct {
	LevelUp      bool `json:"level_up"`
	OldLevel     int  `json:"old_level"`
	NewLevel     int  `json:"new_level"`
	Experience   int  `json:"experience"`
	Points       int  `json:"points"`
	ExpGained    int  `json:"exp_gained"`
	PointsGained int  `json:"points_gained"`
}

type Eligibility struct {
	Eligible       bool `json:"eligible"`
	Level          int  `json:"level"`
	Points         int  `json:"points"`
	RequiredLevel  int  `json:"required_level"`
	RequiredPoints int  `json:"required_points"`
}

type Inspector struct {
	ID          int       `db:"id"           json:"id"`
	UserID      string    `db:"user_id"      json:"user_id"`
	AppointedAt time.Time `db:"appointed_at" json:"appointed_at"`
	AppointedBy string    `db:"appointed_by" json:"appointed_by"`
}

type Shop struct {
	ID            int       `db:"id"             json:"id"`
	UserID        string    `db:"user_id"        json:"user_id"`
	ShopName      string    `db:"shop_name"      json:"shop_name"`
	Description   string    `db:"description"    json:"description"`
	LogoURL       string    `db:"logo_url"       json:"logo_url"`
	Status        string    `db:"status"         json:"status"`
	AverageRating float64   `db:"average_rating" json:"average_rating"`
	CreatedAt     time.Time `db:"created_at"     json:"created_at"`
}

type Post struct {
	ID            int       `db:"id"             json:"id"`
	UserID        string    `db:"user_id"        json:"user_id"`
	Content       string    `db:"content"        json:"content"`
	PostType      string    `db:"post_type"      json:"post_type"`
	IsAnonymous   bool      `db:"is_anonymous"   json:"is_anonymous"`
	ReviewStatus  string    `db:"review_status"  json:"review_status"`
	RewardPoints  int       `db:"reward_points"  json:"reward_points"`
	IsSolved      bool      `db:"is_solved"      json:"is_solved"`
	SolverID      string    `db:"solver_id"      json:"solver_id,omitempty"`
	LikesCount    int       `db:"likes_count"    json:"likes_count"`
	CommentsCount int       `db:"comments_count" json:"comments_count"`
	CreatedAt     time.Time `db:"created_at"     json:"created_at"`
}

// Review is an audit row for a shop or post decision. TargetID holds the
// shop id or the post id depending on the table it was read from.
type Review struct {
	ID            int       `db:"id"             json:"id"`
	TargetID      int       `db:"target_id"      json:"target_id"`
	ApplicantID   string    `db:"applicant_id"   json:"applicant_id"`
	ReviewerID    string    `db:"reviewer_id"    json:"reviewer_id"`
	Status        string    `db:"status"         json:"status"`
	ReviewComment string    `db:"review_comment" json:"review_comment"`
	CreatedAt     time.Time `db:"created_at"     json:"created_at"`
}

type ReviewTask struct {
	ID         int       `db:"id"          json:"id"`
	TaskType   string    `db:"task_type"   json:"task_type"`
	TargetID   int       `db:"target_id"   json:"target_id"`
	AssignedTo string    `db:"assigned_to" json:"assigned_to,omitempty"`
	Status     string    `db:"status"      json:"status"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
}

type Order struct {
	ID          int       `db:"id"           json:"id"`
	UserID      string    `db:"user_id"      json:"user_id"`
	ShopID      int       `db:"shop_id"      json:"shop_id"`
	OrderNumber string    `db:"order_number" json:"order_number"`
	TotalAmount float64   `db:"total_amount" json:"total_amount"`
	Status      string    `db:"status"       json:"status"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
}

type OrderLogistics struct {
	ID              int       `db:"id"               json:"id"`
	OrderID         int       `db:"order_id"         json:"order_id"`
	TrackingNumber  string    `db:"tracking_number"  json:"tracking_number"`
	Carrier         string    `db:"carrier"          json:"carrier"`
	Status          string    `db:"status"           json:"status"`
	CurrentLocation string    `db:"current_location" json:"current_location"`
	UpdatedAt       time.Time `db:"updated_at"       json:"updated_at"`
}

// Rating is a product or shop rating. TargetID is the rated product or shop.
type Rating struct {
	ID        int       `db:"id"         json:"id"`
	TargetID  int       `db:"target_id"  json:"target_id"`
	UserID    string    `db:"user_id"    json:"user_id"`
	Rating    int       `db:"rating"     json:"rating"`
	Comment   string    `db:"comment"    json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type RatingSummary struct {
	AverageRating float64  `json:"average_rating"`
	TotalCount    int      `json:"total_count"`
	Ratings       []Rating `json:"ratings"`
}

type InspectorStatus struct {
	IsInspector bool       `json:"is_inspector"`
	AppointedAt *time.Time `json:"appointed_at,omitempty"`
}

type PendingReviewItems struct {
	Posts []Post `json:"posts"`
	Shops []Shop `json:"shops"`
}
