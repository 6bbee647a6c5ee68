package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/infrastructure/assets"
	"github.com/jhoicas/tienda-api/internal/infrastructure/filestore"
	httpRouter "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Contenedor único por proceso: se abre una vez (auto-reparando
	// contenido faltante o malformado) y se inyecta en los repositorios.
	store, err := filestore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir contenedor de datos")
	}
	log.Info().Str("path", cfg.Store.Path).Msg("contenedor de datos listo")

	assetMgr, err := assets.NewManager(cfg.Store.UploadsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar directorio de uploads")
	}

	userRepo := filestore.NewUserRepository(store)
	productRepo := filestore.NewProductRepository(store)
	categoryRepo := filestore.NewCategoryRepository(store)
	orderRepo := filestore.NewOrderRepository(store)
	reviewRepo := filestore.NewReviewRepository(store)
	favoriteRepo := filestore.NewFavoriteRepository(store)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.HashPasswords)
	userUC := usecase.NewUserUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo, assetMgr)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	reviewUC := usecase.NewReviewUseCase(reviewRepo)
	favoriteUC := usecase.NewFavoriteUseCase(favoriteRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		OrderUC:    orderUC,
		ReviewUC:   reviewUC,
		FavoriteUC: favoriteUC,
		UploadsDir: cfg.Store.UploadsDir,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
