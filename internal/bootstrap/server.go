package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pvoloshyn/airdesk/api"
	"github.com/pvoloshyn/airdesk/config"
	"github.com/pvoloshyn/airdesk/internal/service/catalog"
	"github.com/pvoloshyn/airdesk/internal/service/crew"
	"github.com/pvoloshyn/airdesk/internal/service/fleet"
	"github.com/pvoloshyn/airdesk/internal/service/flights"
	"github.com/pvoloshyn/airdesk/internal/service/orders"
)

type Services struct {
	Catalog catalog.CatalogUseCase
	Crew    crew.CrewUseCase
	Fleet   fleet.FleetUseCase
	Flights flights.FlightUseCase
	Orders  orders.OrderUseCase
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, services Services) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(services),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(services Services) *gin.Engine {
	engine := gin.Default()

	v1 := engine.Group("/api/v1")

	api.NewCityHandler(services.Catalog).Register(v1.Group("/cities"))
	api.NewAirportHandler(services.Catalog).Register(v1.Group("/airports"))
	api.NewRouteHandler(services.Catalog).Register(v1.Group("/routes"))

	crewHandler := api.NewCrewHandler(services.Crew)
	crewHandler.RegisterRoles(v1.Group("/roles"))
	crewHandler.RegisterMembers(v1.Group("/crew-members"))
	crewHandler.RegisterGroups(v1.Group("/crew-groups"))

	fleetHandler := api.NewFleetHandler(services.Fleet)
	fleetHandler.RegisterTypes(v1.Group("/airplane-types"))
	fleetHandler.RegisterAirplanes(v1.Group("/airplanes"))
	fleetHandler.RegisterSeatConfigurations(v1.Group("/seat-configurations"))

	api.NewFlightHandler(services.Flights).Register(v1.Group("/flights"))
	api.NewOrderHandler(services.Orders).Register(v1.Group("/orders"))

	return engine
}
