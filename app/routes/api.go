package routes

import (
	"net/http"

	"github.com/shashiranjanraj/bistro/app/controllers"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/app/services"
	"github.com/shashiranjanraj/bistro/pkg/middleware"
	"github.com/shashiranjanraj/bistro/pkg/response"
	"github.com/shashiranjanraj/bistro/pkg/router"
)

// RegisterAPI wires the whole HTTP surface. Paths are kept at the root
// (no /api prefix) because the deployed frontend calls them that way.
func RegisterAPI(r *router.Router, paymentService *services.PaymentService) {
	userRepo := repositories.NewUserRepository()
	menuRepo := repositories.NewMenuRepository()
	reviewRepo := repositories.NewReviewRepository()
	cartRepo := repositories.NewCartRepository()
	paymentRepo := repositories.NewPaymentRepository()

	authController := controllers.NewAuthController()
	userController := controllers.NewUserController(userRepo)
	menuController := controllers.NewMenuController(menuRepo)
	reviewController := controllers.NewReviewController(reviewRepo)
	cartController := controllers.NewCartController(cartRepo)
	paymentController := controllers.NewPaymentController(paymentService, paymentRepo)
	statsController := controllers.NewStatsController(
		services.NewStatsService(userRepo, menuRepo, paymentRepo))

	r.Get("/", "home", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"service": "bistro boss api"})
	})

	// Auth
	r.Post("/jwt", "auth.token", authController.IssueToken)

	// Public surface, shaped after the storefront's calls: browsing, cart
	// edits and checkout itself carry no token.
	r.Post("/users", "users.store", userController.Store)
	r.Get("/menu", "menu.index", menuController.Index)
	r.Get("/menu/{id}", "menu.show", menuController.Show)
	r.Get("/reviews", "reviews.index", reviewController.Index)
	r.Get("/carts", "carts.index", cartController.Index)
	r.Post("/carts", "carts.store", cartController.Store)
	r.Delete("/carts/{id}", "carts.destroy", cartController.Destroy)
	r.Post("/create-payment-intent", "payments.intent", paymentController.CreateIntent)
	r.Post("/payments", "payments.store", paymentController.Store)

	// Signed-in users
	authed := r.Group("", middleware.VerifyToken)
	authed.Get("/users/admin/{email}", "users.checkAdmin", userController.CheckAdmin)
	authed.Post("/reviews", "reviews.store", reviewController.Store)
	authed.Get("/payments/{email}", "payments.history", paymentController.History)

	// Admins. The role is looked up fresh per request, never read from
	// the token.
	admin := r.Group("", middleware.VerifyToken, middleware.RequireAdmin(userRepo))
	admin.Get("/users", "users.index", userController.Index)
	admin.Patch("/users/admin/{id}", "users.promote", userController.Promote)
	admin.Delete("/users/{id}", "users.destroy", userController.Destroy)
	admin.Post("/menu", "menu.store", menuController.Store)
	admin.Patch("/menu/{id}", "menu.update", menuController.Update)
	admin.Delete("/menu/{id}", "menu.destroy", menuController.Destroy)
	admin.Post("/menu/{id}/image", "menu.uploadImage", menuController.UploadImage)
	admin.Get("/admin-states", "stats.dashboard", statsController.Dashboard)
	admin.Get("/order-stats", "stats.orders", statsController.OrderStats)
}
