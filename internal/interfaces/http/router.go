package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	OrderUC    *usecase.OrderUseCase
	ReviewUC   *usecase.ReviewUseCase
	FavoriteUC *usecase.FavoriteUseCase
	UploadsDir string
	JWTSecret  string
}

// Router registra las rutas de la API. La superficie replica el servidor
// legado (rutas en la raíz, /uploads estático); las mutaciones de catálogo y
// la administración de usuarios exigen rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	// Assets subidos, servidos tal como se referencian en los registros
	app.Static("/uploads", deps.UploadsDir)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)
	app.Post("/register", authHandler.Register)

	adminOnly := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin)}

	// Users (lectura pública por compatibilidad con el lookup legado;
	// mutaciones solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	app.Get("/users", userHandler.List)
	app.Get("/users/:id", userHandler.GetByID)
	app.Post("/users", append(adminOnly, userHandler.Create)...)
	app.Put("/users/:id", append(adminOnly, userHandler.Update)...)
	app.Delete("/users/:id", append(adminOnly, userHandler.Delete)...)

	// Products (lectura pública; mutaciones solo admin)
	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/products", productHandler.List)
	app.Get("/products/:id", productHandler.GetByID)
	app.Post("/products", append(adminOnly, productHandler.Create)...)
	app.Put("/products/:id", append(adminOnly, productHandler.Update)...)
	app.Delete("/products/:id", append(adminOnly, productHandler.Delete)...)
	app.Post("/products/maintenance/sweep", append(adminOnly, productHandler.Sweep)...)

	// Categories (lectura pública; mutaciones solo admin)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	app.Get("/categories", categoryHandler.List)
	app.Post("/categories", append(adminOnly, categoryHandler.Create)...)
	app.Put("/categories/:id", append(adminOnly, categoryHandler.Update)...)
	app.Delete("/categories/:id", append(adminOnly, categoryHandler.Delete)...)

	// Orders y Reviews (públicos, como el servidor legado)
	orderHandler := NewOrderHandler(deps.OrderUC)
	app.Get("/orders", orderHandler.List)
	app.Post("/orders", orderHandler.Create)
	app.Put("/orders/:id", orderHandler.Update)

	reviewHandler := NewReviewHandler(deps.ReviewUC)
	app.Get("/reviews", reviewHandler.List)
	app.Post("/reviews", reviewHandler.Create)

	// Favorites del lado servidor
	favoriteHandler := NewFavoriteHandler(deps.FavoriteUC)
	app.Get("/favorites", favoriteHandler.List)
	app.Post("/favorites", favoriteHandler.Create)
	app.Delete("/favorites/:id", favoriteHandler.Delete)
}
