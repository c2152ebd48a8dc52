package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"harmony-backend/internal/auth"
	"harmony-backend/internal/branch"
	"harmony-backend/internal/config"
	"harmony-backend/internal/contact"
	"harmony-backend/internal/database"
	"harmony-backend/internal/event"
	"harmony-backend/internal/loan"
	"harmony-backend/internal/route"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using process environment")
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		logrus.Fatalf("database connection failed: %v", err)
	}
	defer db.Close(ctx)

	if err := db.EnsureIndexes(ctx); err != nil {
		logrus.Fatalf("index creation failed: %v", err)
	}
	logrus.Info("MongoDB connected")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logrus.WithError(err).Error("unexpected error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	contacts := contact.NewStore(db.Contacts())
	branches := branch.NewStore(db.Branches())
	roots := route.NewStore(db.Roots())
	events := event.NewStore(db.Events())
	admins := auth.NewAdminStore(db.Admins())

	// Contact form
	app.Post("/Contact", contact.CreateHandler(contacts))
	app.Get("/ContactMessages", contact.ListHandler(contacts))
	app.Get("/ContactMessages/:id", contact.GetHandler(contacts))
	app.Delete("/ContactMessages/:id", contact.DeleteHandler(contacts))

	// Branches
	app.Post("/branches", branch.CreateHandler(branches))
	app.Get("/branches", branch.ListHandler(branches))
	app.Get("/branches/:id", branch.GetHandler(branches))
	app.Put("/branches/:id", branch.UpdateHandler(branches))
	app.Delete("/branches/:id", branch.DeleteHandler(branches))

	// Roots
	app.Post("/roots", route.CreateHandler(roots))
	app.Get("/roots", route.ListHandler(roots))
	app.Get("/roots/:id", route.GetHandler(roots))
	app.Put("/roots/:id", route.UpdateHandler(roots))
	app.Delete("/roots/:id", route.DeleteHandler(roots))

	// Events
	app.Post("/events", event.CreateHandler(events))
	app.Get("/events", event.ListHandler(events))
	app.Get("/events/:id", event.GetHandler(events))
	app.Put("/events/:id", event.UpdateHandler(events))
	app.Delete("/events/:id", event.DeleteHandler(events))
	app.Get("/api/events", event.ListHandler(events)) // legacy alias used by the events page poller

	// Loan calculator
	app.Post("/loan/calculate", loan.CalculateHandler())

	// Admin auth
	adminRoutes := app.Group("/admin")
	adminRoutes.Post("/signup", auth.SignupHandler(admins))
	adminRoutes.Post("/login", auth.LoginHandler(cfg, admins))

	protected := adminRoutes.Group("", auth.JWTMiddleware(cfg), auth.RequireAdmin())
	protected.Post("/change-password", auth.ChangePasswordHandler(admins))
	protected.Get("/dashboard", auth.DashboardHandler())

	go func() {
		logrus.Infof("server listening on port %s", cfg.HTTPPort)
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)
	<-signalChan

	logrus.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logrus.Errorf("shutdown error: %v", err)
	}
}
