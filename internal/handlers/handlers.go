package handlers

import (
	"net/http"
	"os"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/marketplace/docs"
	entityhandlers "github.com/GlebRadaev/marketplace/internal/handlers/entities"
	logisticshandlers "github.com/GlebRadaev/marketplace/internal/handlers/logistics"
	moderationhandlers "github.com/GlebRadaev/marketplace/internal/handlers/moderation"
	orderhandlers "github.com/GlebRadaev/marketplace/internal/handlers/orders"
	ratinghandlers "github.com/GlebRadaev/marketplace/internal/handlers/ratings"
	usersystemhandlers "github.com/GlebRadaev/marketplace/internal/handlers/usersystem"
	"github.com/GlebRadaev/marketplace/internal/service"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/GlebRadaev/marketplace/pkg/logger"
	"github.com/GlebRadaev/marketplace/pkg/requestid"
)

type UserSystemHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateUsername(w http.ResponseWriter, r *http.Request)
	UpdateAvatar(w http.ResponseWriter, r *http.Request)
	AddExperience(w http.ResponseWriter, r *http.Request)
	ListExperienceLogs(w http.ResponseWriter, r *http.Request)
	CheckEligibility(w http.ResponseWriter, r *http.Request)
}

type ModerationHandler interface {
	InspectorStatus(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	Tasks(w http.ResponseWriter, r *http.Request)
	PendingShops(w http.ResponseWriter, r *http.Request)
	ApproveShop(w http.ResponseWriter, r *http.Request)
	RejectShop(w http.ResponseWriter, r *http.Request)
	PendingPosts(w http.ResponseWriter, r *http.Request)
	ApprovePost(w http.ResponseWriter, r *http.Request)
	RejectPost(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Pay(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type LogisticsHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByOrder(w http.ResponseWriter, r *http.Request)
	GetByOrderNumber(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type RatingsHandler interface {
	RateProduct(w http.ResponseWriter, r *http.Request)
	RateShop(w http.ResponseWriter, r *http.Request)
	ProductSummary(w http.ResponseWriter, r *http.Request)
	ShopSummary(w http.ResponseWriter, r *http.Request)
}

type EntitiesHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	CreateBatch(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateBatch(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DeleteBatch(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserSystemHandler UserSystemHandler
	ModerationHandler ModerationHandler
	OrderHandler      OrderHandler
	LogisticsHandler  LogisticsHandler
	RatingsHandler    RatingsHandler
	EntitiesHandler   EntitiesHandler

	jwt         auth.JWTServiceInterface
	corsOrigins []string
}

func New(s *service.Services, jwt auth.JWTServiceInterface, corsOrigins []string) *Handlers {
	return &Handlers{
		UserSystemHandler: usersystemhandlers.New(s.Progression),
		ModerationHandler: moderationhandlers.New(s.Moderation),
		OrderHandler:      orderhandlers.New(s.Orders),
		LogisticsHandler:  logisticshandlers.New(s.Logistics),
		RatingsHandler:    ratinghandlers.New(s.Ratings),
		EntitiesHandler:   entityhandlers.New(s.Entities),
		jwt:               jwt,
		corsOrigins:       corsOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		requestid.Middleware,
		logger.AccessLog(os.Stdout),
		cors.Handler(cors.Options{
			AllowedOrigins:   h.corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: !slices.Contains(h.corsOrigins, "*"),
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ratings/product/{id}", h.RatingsHandler.ProductSummary)
		r.Get("/ratings/shop/{id}", h.RatingsHandler.ShopSummary)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwt))

			r.Route("/user_system", func(r chi.Router) {
				r.Get("/profile", h.UserSystemHandler.GetProfile)
				r.Put("/username", h.UserSystemHandler.UpdateUsername)
				r.Put("/avatar", h.UserSystemHandler.UpdateAvatar)
				r.Post("/experience", h.UserSystemHandler.AddExperience)
				r.Get("/experience/logs", h.UserSystemHandler.ListExperienceLogs)
				r.Get("/inspector/eligibility", h.UserSystemHandler.CheckEligibility)
			})
			r.Route("/inspectors", func(r chi.Router) {
				r.Get("/me", h.ModerationHandler.InspectorStatus)
				r.Post("/apply", h.ModerationHandler.Apply)
				r.Get("/tasks", h.ModerationHandler.Tasks)
			})
			r.Route("/shop-reviews", func(r chi.Router) {
				r.Get("/pending", h.ModerationHandler.PendingShops)
				r.Post("/{id}/approve", h.ModerationHandler.ApproveShop)
				r.Post("/{id}/reject", h.ModerationHandler.RejectShop)
			})
			r.Route("/post-reviews", func(r chi.Router) {
				r.Get("/pending", h.ModerationHandler.PendingPosts)
				r.Post("/{id}/approve", h.ModerationHandler.ApprovePost)
				r.Post("/{id}/reject", h.ModerationHandler.RejectPost)
			})
			r.Route("/orders/{id}", func(r chi.Router) {
				r.Post("/pay", h.OrderHandler.Pay)
				r.Post("/cancel", h.OrderHandler.Cancel)
			})
			r.Route("/logistics", func(r chi.Router) {
				r.Post("/", h.LogisticsHandler.Create)
				r.Get("/order/{order_id}", h.LogisticsHandler.GetByOrder)
				r.Get("/order-number/{number}", h.LogisticsHandler.GetByOrderNumber)
				r.Put("/{id}", h.LogisticsHandler.Update)
			})
			r.Route("/ratings", func(r chi.Router) {
				r.Post("/product", h.RatingsHandler.RateProduct)
				r.Post("/shop", h.RatingsHandler.RateShop)
			})
			r.Route("/entities/{name}", func(r chi.Router) {
				r.Get("/", h.EntitiesHandler.List)
				r.Post("/", h.EntitiesHandler.Create)
				r.Get("/all", h.EntitiesHandler.ListAll)
				r.Post("/batch", h.EntitiesHandler.CreateBatch)
				r.Put("/batch", h.EntitiesHandler.UpdateBatch)
				r.Delete("/batch", h.EntitiesHandler.DeleteBatch)
				r.Get("/{id}", h.EntitiesHandler.Get)
				r.Put("/{id}", h.EntitiesHandler.Update)
				r.Delete("/{id}", h.EntitiesHandler.Delete)
			})
		})
	})

	return r
}
