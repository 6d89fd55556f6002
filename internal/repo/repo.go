package repo

import (
	"github.com/GlebRadaev/marketplace/internal/pg"
	entityrepo "github.com/GlebRadaev/marketplace/internal/repo/entity-repo"
	experiencelogrepo "github.com/GlebRadaev/marketplace/internal/repo/experiencelog-repo"
	inspectorrepo "github.com/GlebRadaev/marketplace/internal/repo/inspector-repo"
	logisticsrepo "github.com/GlebRadaev/marketplace/internal/repo/logistics-repo"
	orderrepo "github.com/GlebRadaev/marketplace/internal/repo/order-repo"
	postrepo "github.com/GlebRadaev/marketplace/internal/repo/post-repo"
	profilerepo "github.com/GlebRadaev/marketplace/internal/repo/profile-repo"
	ratingrepo "github.com/GlebRadaev/marketplace/internal/repo/rating-repo"
	reviewrepo "github.com/GlebRadaev/marketplace/internal/repo/review-repo"
	shoprepo "github.com/GlebRadaev/marketplace/internal/repo/shop-repo"
	"github.com/GlebRadaev/marketplace/internal/service/entityservice"
	"github.com/GlebRadaev/marketplace/internal/service/logisticsservice"
	"github.com/GlebRadaev/marketplace/internal/service/moderationservice"
	"github.com/GlebRadaev/marketplace/internal/service/orderservice"
	"github.com/GlebRadaev/marketplace/internal/service/progressionservice"
	"github.com/GlebRadaev/marketplace/internal/service/ratingservice"
)

// ShopRepo is every view of the shops table the services need.
type ShopRepo interface {
	moderationservice.ShopRepo
	logisticsservice.ShopRepo
	ratingservice.ShopRepo
}

type OrderRepo interface {
	orderservice.Repo
	logisticsservice.OrderRepo
	ratingservice.PurchaseChecker
}

type Repositories struct {
	ProfileRepo    progressionservice.ProfileRepo
	ExperienceLogs progressionservice.LogRepo
	InspectorRepo  moderationservice.InspectorRepo
	ShopRepo       ShopRepo
	PostRepo       moderationservice.PostRepo
	ReviewRepo     moderationservice.ReviewRepo
	OrderRepo      OrderRepo
	LogisticsRepo  logisticsservice.LogisticsRepo
	RatingRepo     ratingservice.RatingRepo
	EntityRepo     entityservice.Repo
	TxManager      pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		ProfileRepo:    profilerepo.New(conn),
		ExperienceLogs: experiencelogrepo.New(conn),
		InspectorRepo:  inspectorrepo.New(conn),
		ShopRepo:       shoprepo.New(conn),
		PostRepo:       postrepo.New(conn),
		ReviewRepo:     reviewrepo.New(conn),
		OrderRepo:      orderrepo.New(conn),
		LogisticsRepo:  logisticsrepo.New(conn),
		RatingRepo:     ratingrepo.New(conn),
		EntityRepo:     entityrepo.New(conn, txManager),
		TxManager:      txManager,
	}
}
