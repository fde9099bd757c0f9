package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"DoctorsPortal/Controllers"
	"DoctorsPortal/CronJobs"
	"DoctorsPortal/Mailer"
	"DoctorsPortal/Models"
	"DoctorsPortal/Routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	uri := os.Getenv("DB_URI")
	if uri == "" {
		log.Fatal().Msg("DB_URI environment variable not set")
	}
	if os.Getenv("ACCESS_TOKEN_SECRET") == "" {
		log.Fatal().Msg("ACCESS_TOKEN_SECRET environment variable not set")
	}
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := Models.Connect(ctx, uri)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := store.EnsureIndexes(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to build indexes")
	}

	mailer := Mailer.New(os.Getenv("SENDGRID_API_KEY"), os.Getenv("EMAIL_SENDER"))
	api := Controllers.NewAPI(store, mailer, os.Getenv("BOOKING_REQUIRE_IDENTITY") == "true")

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))
	Routes.ConfigRoutes(router, api, store.Users)

	reminderService := CronJobs.NewBookingReminder(store.Bookings, mailer)
	scheduler := reminderService.StartReminderCron()

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", port).Msg("doctors portal server is running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	scheduler.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("database disconnect failed")
	}
}
