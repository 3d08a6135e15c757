package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/digitopia/membership-backend-go/internal/config"
	appHTTP "github.com/digitopia/membership-backend-go/internal/handler/http"
	"github.com/digitopia/membership-backend-go/internal/pkg/database"
	"github.com/digitopia/membership-backend-go/internal/pkg/events"
	"github.com/digitopia/membership-backend-go/internal/pkg/jwt"
	"github.com/digitopia/membership-backend-go/internal/repository/postgresql"
	organizationService "github.com/digitopia/membership-backend-go/internal/service/organization"
	userService "github.com/digitopia/membership-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	redisClient := events.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer redisClient.Close()

	publisher := events.NewRedisPublisher(redisClient)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "registry-api"),
		slog.String("env", cfg.App.Env),
	)

	userRepo := postgresql.NewUserRepository(db)
	organizationRepo := postgresql.NewOrganizationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	userSvc := userService.NewUserService(userRepo, publisher, cfg.Events.UserTopic)
	organizationSvc := organizationService.NewOrganizationService(organizationRepo)

	// The membership consumer runs alongside the HTTP shell with its own
	// consumer group, so redelivery tracking is independent of any other
	// subscriber of the invitation stream.
	consumerName, err := os.Hostname()
	if err != nil {
		consumerName = "registry-api"
	}
	consumer := events.NewConsumer(
		redisClient,
		cfg.Events.InvitationTopic,
		cfg.Events.ConsumerGroup,
		consumerName,
		logger,
	)
	listener := userService.NewMembershipListener(userRepo, publisher, cfg.Events.UserTopic, logger)
	listener.Register(consumer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Event consumer stopped", "error", err)
		}
	}()

	userHandler := appHTTP.NewUserHandler(userSvc)
	organizationHandler := appHTTP.NewOrganizationHandler(organizationSvc)
	router := appHTTP.NewRegistryRouter(JWTService, userHandler, organizationHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Registry service running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
