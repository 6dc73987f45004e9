package api

import (
	"time"

	"employees/internal/app/server/api/http/apierror"
	employeeAPI "employees/internal/app/server/api/http/employee"
	healthAPI "employees/internal/app/server/api/http/health"
	"employees/internal/app/server/api/http/middleware"
	"employees/internal/app/server/api/http/middleware/logger"
	"employees/internal/domain/employee"
	"employees/internal/infrastructure/storage"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health   *healthAPI.Handler
	Employee *employeeAPI.Handler
}

// New builds the router with every operation registered. Anything that
// matches no route, or no method of a route, answers 404.
func New(store storage.Storage, log *slog.Logger, requestTimeout time.Duration) *chi.Mux {
	huma.NewError = apierror.New

	mux := chi.NewMux()
	mux.Use(chimw.RealIP, chimw.Recoverer)
	if requestTimeout > 0 {
		mux.Use(chimw.Timeout(requestTimeout))
	}
	mux.NotFound(apierror.NotFound)
	mux.MethodNotAllowed(apierror.NotFound)

	config := huma.DefaultConfig("Employees API", "1.0.0")
	// keep response bodies free of $schema links
	config.CreateHooks = nil

	humaAPI := humachi.New(mux, config)

	h := handlers(store, log)
	h.Health.SetupRoutes(humaAPI)
	h.Employee.SetupRoutes(humaAPI)

	return mux
}

func handlers(store storage.Storage, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	employeeService := employee.NewService(store.Employees(), log)
	middlewares.Add(loggerMW.Middleware())
	employeeHandler := employeeAPI.NewHandler(employeeService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Employee: employeeHandler,
	}
}
