package service

import (
	"time"

	"github.com/GlebRadaev/marketplace/internal/handlers/entities"
	"github.com/GlebRadaev/marketplace/internal/handlers/logistics"
	"github.com/GlebRadaev/marketplace/internal/handlers/moderation"
	"github.com/GlebRadaev/marketplace/internal/handlers/orders"
	"github.com/GlebRadaev/marketplace/internal/handlers/ratings"
	"github.com/GlebRadaev/marketplace/internal/handlers/usersystem"

	"github.com/GlebRadaev/marketplace/internal/repo"
	"github.com/GlebRadaev/marketplace/internal/service/entityservice"
	"github.com/GlebRadaev/marketplace/internal/service/logisticsservice"
	"github.com/GlebRadaev/marketplace/internal/service/moderationservice"
	"github.com/GlebRadaev/marketplace/internal/service/orderservice"
	"github.com/GlebRadaev/marketplace/internal/service/progressionservice"
	"github.com/GlebRadaev/marketplace/internal/service/ratingservice"
)

type Services struct {
	Progression usersystem.Service
	Moderation  moderation.Service
	Orders      orders.Service
	Logistics   logistics.Service
	Ratings     ratings.Service
	Entities    entities.Service
}

// New wires the services over one set of repositories. Rating summaries are
// cached in cache for ttl.
func New(repo *repo.Repositories, cache ratingservice.Cache, ttl time.Duration) *Services {
	progression := progressionservice.New(repo.ProfileRepo, repo.ExperienceLogs, repo.TxManager)
	moderationService := moderationservice.New(repo.InspectorRepo, repo.ShopRepo, repo.PostRepo, repo.ReviewRepo, progression, repo.TxManager)
	orderService := orderservice.New(repo.OrderRepo)
	logisticsService := logisticsservice.New(repo.OrderRepo, repo.ShopRepo, repo.LogisticsRepo, repo.TxManager)
	ratingService := ratingservice.New(repo.RatingRepo, repo.OrderRepo, repo.ShopRepo, cache, ttl, repo.TxManager)
	entityService := entityservice.New(repo.EntityRepo, repo.InspectorRepo)

	return &Services{
		Progression: progression,
		Moderation:  moderationService,
		Orders:      orderService,
		Logistics:   logisticsService,
		Ratings:     ratingService,
		Entities:    entityService,
	}
}
