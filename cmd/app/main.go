package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/pvoloshyn/airdesk/config"
	"github.com/pvoloshyn/airdesk/internal/bootstrap"
	"github.com/pvoloshyn/airdesk/internal/cache"
	"github.com/pvoloshyn/airdesk/internal/kafka"
	"github.com/pvoloshyn/airdesk/internal/repository"
	"github.com/pvoloshyn/airdesk/internal/service/catalog"
	"github.com/pvoloshyn/airdesk/internal/service/crew"
	"github.com/pvoloshyn/airdesk/internal/service/fleet"
	"github.com/pvoloshyn/airdesk/internal/service/flights"
	"github.com/pvoloshyn/airdesk/internal/service/orders"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	cityRepo := repository.NewCityRepository(pool)
	airportRepo := repository.NewAirportRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	memberRepo := repository.NewCrewMemberRepository(pool)
	groupRepo := repository.NewCrewGroupRepository(pool)
	typeRepo := repository.NewAirplaneTypeRepository(pool)
	airplaneRepo := repository.NewAirplaneRepository(pool)
	seatRepo := repository.NewSeatConfigurationRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	services := bootstrap.Services{
		Catalog: catalog.NewCatalogService(cityRepo, airportRepo, routeRepo),
		Crew:    crew.NewCrewService(roleRepo, memberRepo, groupRepo, flightRepo),
		Fleet:   fleet.NewFleetService(typeRepo, airplaneRepo, seatRepo),
		Flights: flights.NewFlightService(flightRepo, redisCache),
		Orders: orders.NewOrderService(
			orderRepo,
			flightRepo,
			seatRepo,
			producer,
			cfg.Kafka.OrdersTopic,
			orders.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		),
	}

	if err := bootstrap.Run(ctx, cfg, services); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
