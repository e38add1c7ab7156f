package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"menuapi/docs"
	"menuapi/internal/config"
	"menuapi/internal/database"
	handlers "menuapi/internal/http/handler"
	"menuapi/internal/http/middleware"
	"menuapi/internal/otel"
	"menuapi/internal/repository/pgxstore"
	"menuapi/internal/service"
	"menuapi/internal/storage"
)

// Asynchronous entry point: the same routes as cmd/api over the same schema,
// but every database call goes through a native pgx pool and suspends on its
// context instead of blocking in the database/sql layer. Schema migration is
// owned by the sync binary; this one expects the tables to exist.
func main() {
	cfg := config.Load()

	shutdown, err := otel.Init(context.Background(), "menuapi-async", time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		_ = shutdown(context.Background())
	}()

	// Initialize the native pgx connection pool
	pool, err := database.NewPool(context.Background(), cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	menuRepo := pgxstore.NewMenuPgx(pool)
	subRepo := pgxstore.NewSubMenuPgx(pool)
	dishRepo := pgxstore.NewDishPgx(pool)

	menuSvc := service.NewMenuService(menuRepo)
	subSvc := service.NewSubMenuService(menuRepo, subRepo)
	dishSvc := service.NewDishService(subRepo, dishRepo, objStore)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// pgxpool.Pool satisfies the health handler's Pinger directly
	handlers.RegisterRoutes(app, pool, menuSvc, subSvc, dishSvc)

	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.AsyncPort

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
