package entity

import (
	"sort"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/pkg/validate"
)

var moderationStatuses = []string{domain.StatusPending, domain.StatusApproved, domain.StatusRejected}

var registry = map[string]*Schema{}

func register(s *Schema) {
	s.init()
	registry[s.Name] = s
}

// Lookup returns the schema exposed under the route name.
func Lookup(name string) (*Schema, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names lists the registered route names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func createdAt() Field {
	return Field{Name: "created_at", Type: Time}
}

func init() {
	register(&Schema{
		Name:        "shops",
		Table:       "shops",
		OwnerColumn: "user_id",
		Access:      AccessOwner,
		Fields: []Field{
			{Name: "user_id", Type: String},
			{Name: "shop_name", Type: String, Writable: true, Required: true},
			{Name: "description", Type: String, Writable: true},
			{Name: "logo_url", Type: String, Writable: true},
			{Name: "status", Type: String, Enum: moderationStatuses},
			{Name: "average_rating", Type: Float},
			createdAt(),
		},
		OnCreate: func(rec Record) {
			rec["status"] = domain.StatusPending
			rec["average_rating"] = 0.0
		},
	})

	register(&Schema{
		Name:        "products",
		Table:       "products",
		OwnerColumn: "seller_id",
		Access:      AccessOwner,
		Fields: []Field{
			{Name: "seller_id", Type: String},
			{Name: "shop_id", Type: Int, Writable: true, Nullable: true},
			{Name: "name", Type: String, Writable: true, Required: true},
			{Name: "description", Type: String, Writable: true},
			{Name: "price", Type: Float, Writable: true, Required: true},
			{Name: "category", Type: String, Writable: true},
			{Name: "image_url", Type: String, Writable: true},
			{Name: "stock", Type: Int, Writable: true},
			{Name: "status", Type: String, Enum: []string{"active", "inactive"}},
			createdAt(),
		},
	})

	register(&Schema{
		Name:        "posts",
		Table:       "posts",
		OwnerColumn: "user_id",
		Access:      AccessOwner,
		Fields: []Field{
			{Name: "user_id", Type: String},
			{Name: "content", Type: String, Writable: true, Required: true},
			{Name: "post_type", Type: String, Writable: true, Immutable: true, Enum: []string{domain.PostTypeDaily, domain.PostTypeHelp}},
			{Name: "is_anonymous", Type: Bool, Writable: true},
			{Name: "review_status", Type: String, Enum: moderationStatuses},
			{Name: "reward_points", Type: Int, Writable: true},
			{Name: "is_solved", Type: Bool, Writable: true},
			{Name: "solver_id", Type: String, Writable: true, Nullable: true},
			{Name: "likes_count", Type: Int},
			{Name: "comments_count", Type: Int},
			createdAt(),
		},
		OnCreate: func(rec Record) {
			if _, ok := rec["post_type"]; !ok {
				rec["post_type"] = domain.PostTypeDaily
			}
			// help posts wait for an inspector, everything else is published
			if rec["post_type"] == domain.PostTypeHelp {
				rec["review_status"] = domain.StatusPending
			} else {
				rec["review_status"] = domain.StatusApproved
			}
		},
	})

	register(&Schema{
		Name:        "comments",
		Table:       "comments",
		OwnerColumn: "user_id",
		Access:      AccessOwner,
		Fields: []Field{
			{Name: "user_id", Type: String},
			{Name: "post_id", Type: Int, Writable: true, Immutable: true, Required: true},
			{Name: "content", Type: String, Writable: true, Required: true},
			createdAt(),
		},
	})

	register(&Schema{
		Name:        "cart_items",
		Table:       "cart_items",
		OwnerColumn: "user_id",
		Access:      AccessOwner,
		Fields: []Field{
			{Name: "user_id", Type: String},
			{Name: "product_id", Type: Int, Writable: true, Immutable: true, Required: true},
			{Name: "quantity", Type: Int, Writable: true},
			createdAt(),
		},
	})

	register(&Schema{
		Name:        "orders",
		Table:       "orders",
		OwnerColumn: "user_id",
		Access:      AccessOwner,
		Fields: []Field{
			{Name: "user_id", Type: String},
			{Name: "shop_id", Type: Int, Writable: true, Immutable: true, Required: true},
			{Name: "order_number", Type: String},
			{Name: "total_amount", Type: Float, Writable: true},
			{Name: "status", Type: String, Enum: []string{
				domain.OrderStatusPending, domain.OrderStatusPaid, domain.OrderStatusShipped,
				domain.OrderStatusCompleted, domain.OrderStatusCancelled,
			}},
			createdAt(),
		},
		OnCreate: func(rec Record) {
			rec["order_number"] = validate.NewOrderNumber()
			rec["status"] = domain.OrderStatusPending
		},
	})

	register(&Schema{
		Name:        "order_items",
		Table:       "order_items",
		OwnerColumn: "user_id",
		Access:      AccessOwner,
		Fields: []Field{
			{Name: "order_id", Type: Int, Writable: true, Immutable: true, Required: true},
			{Name: "user_id", Type: String},
			{Name: "product_id", Type: Int, Writable: true, Immutable: true, Required: true},
			{Name: "quantity", Type: Int, Writable: true},
			{Name: "price", Type: Float, Writable: true},
			createdAt(),
		},
	})

	register(&Schema{
		Name:   "order_logistics",
		Table:  "order_logistics",
		Access: AccessReadOnly,
		Fields: []Field{
			{Name: "order_id", Type: Int},
			{Name: "tracking_number", Type: String},
			{Name: "carrier", Type: String},
			{Name: "status", Type: String},
			{Name: "current_location", Type: String},
			{Name: "updated_at", Type: Time},
		},
	})

	register(&Schema{
		Name:        "product_ratings",
		Table:       "product_ratings",
		OwnerColumn: "user_id",
		Access:      AccessReadOnly,
		Fields: []Field{
			{Name: "product_id", Type: Int},
			{Name: "user_id", Type: String},
			{Name: "rating", Type: Int},
			{Name: "comment", Type: String},
			createdAt(),
		},
	})

	register(&Schema{
		Name:        "shop_ratings",
		Table:       "shop_ratings",
		OwnerColumn: "user_id",
		Access:      AccessReadOnly,
		Fields: []Field{
			{Name: "shop_id", Type: Int},
			{Name: "user_id", Type: String},
			{Name: "rating", Type: Int},
			{Name: "comment", Type: String},
			createdAt(),
		},
	})

	for _, name := range []string{"shop_reviews", "post_reviews"} {
		target := "shop_id"
		if name == "post_reviews" {
			target = "post_id"
		}
		register(&Schema{
			Name:   name,
			Table:  name,
			Access: AccessReadOnly,
			Fields: []Field{
				{Name: target, Type: Int},
				{Name: "applicant_id", Type: String},
				{Name: "reviewer_id", Type: String},
				{Name: "status", Type: String},
				{Name: "review_comment", Type: String},
				createdAt(),
			},
		})
	}

	register(&Schema{
		Name:   "review_tasks",
		Table:  "review_tasks",
		Access: AccessModerator,
		Fields: []Field{
			{Name: "task_type", Type: String, Writable: true, Immutable: true, Required: true, Enum: []string{domain.TaskTypeShop, domain.TaskTypePost}},
			{Name: "target_id", Type: Int, Writable: true, Immutable: true, Required: true},
			{Name: "assigned_to", Type: String, Writable: true, Nullable: true},
			{Name: "status", Type: String, Writable: true, Enum: moderationStatuses},
			createdAt(),
		},
	})

	register(&Schema{
		Name:   "inspectors",
		Table:  "inspectors",
		Access: AccessReadOnly,
		Fields: []Field{
			{Name: "user_id", Type: String},
			{Name: "appointed_at", Type: Time},
			{Name: "appointed_by", Type: String},
		},
	})

	register(&Schema{
		Name:        "experience_logs",
		Table:       "experience_logs",
		OwnerColumn: "user_id",
		Access:      AccessReadOnly,
		Fields: []Field{
			{Name: "user_id", Type: String},
			{Name: "action_type", Type: String},
			{Name: "experience_change", Type: Int},
			{Name: "points_change", Type: Int},
			createdAt(),
		},
	})

	register(&Schema{
		Name:        "users_extended",
		Table:       "users_extended",
		OwnerColumn: "user_id",
		Access:      AccessReadOnly,
		Fields: []Field{
			{Name: "user_id", Type: String},
			{Name: "username", Type: String},
			{Name: "avatar_url", Type: String},
			{Name: "experience", Type: Int},
			{Name: "level", Type: Int},
			{Name: "points", Type: Int},
			createdAt(),
		},
	})
}
