package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/athar-cms/athar/internal/db"
	"github.com/athar-cms/athar/internal/events"
	"github.com/athar-cms/athar/internal/reconciler"
	"github.com/athar-cms/athar/internal/translate"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	env := LoadEnvironment()
	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore()
	storageSystem := InitStorage(env)

	// redis is optional; without it translations are simply uncached
	var redisClient *redis.Client
	if env.RedisAddress != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     env.RedisAddress,
			Username: env.RedisUsername,
			Password: env.RedisPassword,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("redis ping")
		}
	}

	translator := translate.New(env.TranslateEndpoint, env.TranslateAPIKey, redisClient)

	// MQTT is optional; without a broker, visibility changes are not broadcast
	var publisher events.Publisher = events.Nop{}
	if env.MQTTBrokerURL != "" {
		mqttPublisher, err := events.NewMQTTPublisher(env.MQTTBrokerURL, "athar-server")
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt connect")
		}
		defer mqttPublisher.Close()
		publisher = mqttPublisher
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rec := reconciler.New(store, publisher, env.ReconcileInterval)
	go rec.Run(ctx)

	r := gin.Default()
	RegisterRoutes(r, env, store, storageSystem, publisher, translator)

	srv := &http.Server{
		Addr:    env.ServerAddress,
		Handler: r,
	}

	go func() {
		log.Info().Str("address", env.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
