package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/digitopia/membership-backend-go/internal/config"
	appHTTP "github.com/digitopia/membership-backend-go/internal/handler/http"
	"github.com/digitopia/membership-backend-go/internal/pkg/cron"
	"github.com/digitopia/membership-backend-go/internal/pkg/database"
	"github.com/digitopia/membership-backend-go/internal/pkg/events"
	"github.com/digitopia/membership-backend-go/internal/pkg/jwt"
	"github.com/digitopia/membership-backend-go/internal/repository/postgresql"
	invitationService "github.com/digitopia/membership-backend-go/internal/service/invitation"
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

	invitationRepo := postgresql.NewInvitationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	invitationSvc := invitationService.NewInvitationService(
		invitationRepo,
		publisher,
		cfg.Events.InvitationTopic,
		cfg.Invitation.Retention,
	)

	scheduler := cron.NewScheduler()
	invitationJobs := cron.NewInvitationJobs(invitationSvc, cfg.Invitation.SweepSchedule)
	if err := invitationJobs.RegisterJobs(scheduler); err != nil {
		log.Fatal("Failed to register cron jobs:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	invitationHandler := appHTTP.NewInvitationHandler(invitationSvc)
	router := appHTTP.NewInvitationRouter(JWTService, invitationHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Invitation service running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
