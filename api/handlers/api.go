package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/motorlog/motorlog-api/api"
	"github.com/motorlog/motorlog-api/api/scheduler"
	"github.com/motorlog/motorlog-api/config"
	"github.com/motorlog/motorlog-api/databases"
	"github.com/motorlog/motorlog-api/sheets"
)

// App stores the router and the sheet store, so it can be reused
type App struct {
	Router *mux.Router
	Config config.Config

	store     sheets.TabularStore
	scheduler *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	m := api.MiddlewareConfig{Config: &a.Config}
	m.SetupGoGuardian()

	// router seeded with the health route
	r := api.New()

	v := Vehicle{DB: databases.NewVehicleDatabase(a.store)}
	p := Provider{DB: databases.NewProviderDatabase(a.store)}
	s := Service{DB: databases.NewServiceDatabase(a.store)}
	rep := Report{
		SDB: databases.NewServiceDatabase(a.store),
		VDB: databases.NewVehicleDatabase(a.store),
		PDB: databases.NewProviderDatabase(a.store),
	}

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", http.HandlerFunc(m.CreateToken)).Methods("POST")
	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/vehicles", api.Middleware(http.HandlerFunc(v.VehicleHandler))).Methods("GET")
	apiCreate.Handle("/vehicles", api.Middleware(http.HandlerFunc(v.CreateVehicleHandler))).Methods("POST")
	apiCreate.Handle("/vehicles/search", api.Middleware(http.HandlerFunc(v.VehicleSearchHandler))).Methods("GET")
	apiCreate.Handle("/vehicle/{vehicle_id}", api.Middleware(http.HandlerFunc(v.UpdateVehicleHandler))).Methods("PUT")
	apiCreate.Handle("/vehicle/{vehicle_id}", api.Middleware(http.HandlerFunc(v.DeleteVehicleHandler))).Methods("DELETE")

	apiCreate.Handle("/providers", api.Middleware(http.HandlerFunc(p.ProviderHandler))).Methods("GET")
	apiCreate.Handle("/providers", api.Middleware(http.HandlerFunc(p.CreateProviderHandler))).Methods("POST")
	apiCreate.Handle("/providers/search", api.Middleware(http.HandlerFunc(p.ProviderSearchHandler))).Methods("GET")
	apiCreate.Handle("/provider/{provider_id}", api.Middleware(http.HandlerFunc(p.UpdateProviderHandler))).Methods("PUT")
	apiCreate.Handle("/provider/{provider_id}", api.Middleware(http.HandlerFunc(p.DeleteProviderHandler))).Methods("DELETE")

	apiCreate.Handle("/services", api.Middleware(http.HandlerFunc(s.ServiceHandler))).Methods("GET")
	apiCreate.Handle("/services", api.Middleware(http.HandlerFunc(s.CreateServiceHandler))).Methods("POST")
	apiCreate.Handle("/services/search", api.Middleware(http.HandlerFunc(s.ServiceSearchHandler))).Methods("GET")
	apiCreate.Handle("/service/{service_id}", api.Middleware(http.HandlerFunc(s.UpdateServiceHandler))).Methods("PUT")
	apiCreate.Handle("/service/{service_id}", api.Middleware(http.HandlerFunc(s.DeleteServiceHandler))).Methods("DELETE")

	apiCreate.Handle("/reports/history", api.Middleware(http.HandlerFunc(rep.ServiceHistoryHandler))).Methods("GET")
	apiCreate.Handle("/reports/spend", api.Middleware(http.HandlerFunc(rep.SpendSummaryHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the sheet store and create a router
func (a *App) Initialize() error {

	client, err := sheets.NewClient(context.Background(), &a.Config)
	if err != nil {
		// no spreadsheet, nothing to serve
		zap.S().With(err).Error("failed to create sheets client")
		return err
	}
	a.store = sheets.NewStore(client)
	zap.S().Info("motorlog-api has connected to the spreadsheet")

	// initialize api router
	a.initializeRoutes()

	// the reminder scheduler only runs when mail is configured
	if a.Config.ReminderTo != "" && a.Config.SendgridKey != "" {
		a.scheduler = scheduler.New(&a.Config,
			databases.NewServiceDatabase(a.store),
			databases.NewVehicleDatabase(a.store),
			databases.NewProviderDatabase(a.store),
		)
		if err := a.scheduler.Start(); err != nil {
			zap.S().With(err).Error("failed to start reminder scheduler")
			return err
		}
	}
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}
