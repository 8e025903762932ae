package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"ep-server/catalog"
	"ep-server/config"
	"ep-server/dao/redis"
	"ep-server/db"
	"ep-server/server"
	"ep-server/server/handlers"
	services "ep-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	PlanCacheDao           *redis.RedisPlanCacheDAO
	Catalog                *catalog.Catalog
	PlannerService         *services.PlannerService
	VenueHandler           *handlers.VenueHandler
	PlanHandler            *handlers.PlanHandler
	OptionsHandler         *handlers.OptionsHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	EventPlannerHttpServer *server.EventPlannerHttpServer
}

// NewContainer initializes and wires up all dependencies. Loading the venue
// catalog is the single initialization path; a load failure aborts startup
// with no partial table.
func NewContainer(env string) (*Container, error) {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client - using the in-memory mock outside prod
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		log.Printf("Using prod redis client")
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewCacheRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}

	// Initialize plan cache DAO
	planCacheDao := redis.NewRedisPlanCacheDAO(redisClient, config.FILTER_CACHE_TTL_MINUTES*time.Minute)

	// Load the venue catalog once; it stays immutable for the whole run.
	venueCatalog, err := catalog.Load(config.VenuesCSVPath())
	if err != nil {
		return nil, err
	}

	// Initialize service layer
	plannerService := services.NewPlannerService(venueCatalog, planCacheDao)

	// Initialize handlers
	venueHandler := handlers.NewVenueHandler(plannerService)
	planHandler := handlers.NewPlanHandler(plannerService)
	optionsHandler := handlers.NewOptionsHandler(plannerService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(venueHandler, planHandler, optionsHandler, muxRouter)

	// Initialize event planner server
	eventPlannerHttpServer := server.NewEventPlannerHttpServer(router, muxRouter, config.ServerAddress())

	return &Container{
		RedisClient:            redisClient,
		PlanCacheDao:           planCacheDao,
		Catalog:                venueCatalog,
		PlannerService:         plannerService,
		VenueHandler:           venueHandler,
		PlanHandler:            planHandler,
		OptionsHandler:         optionsHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		EventPlannerHttpServer: eventPlannerHttpServer,
	}, nil
}
