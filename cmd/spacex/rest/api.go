package rest

import (
	"context"
	"net/http"

	ihttp "github.com/tjper/spacex/internal/http"
	"github.com/tjper/spacex/internal/launch"
	"github.com/tjper/spacex/internal/spacex"
	"github.com/tjper/spacex/internal/validator"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type IClient interface {
	FetchLaunchDetail(context.Context, string) (*spacex.LaunchDetail, error)
}

type IFavorites interface {
	launch.Favorites
	LoadAll(context.Context) []spacex.LaunchDetail
}

func NewAPI(
	logger *zap.Logger,
	client IClient,
	list *launch.List,
	favorites IFavorites,
	healthz http.Handler,
) *API {
	api := API{
		Mux:       chi.NewRouter(),
		logger:    logger,
		valid:     validator.New(),
		client:    client,
		list:      list,
		favorites: favorites,
	}

	api.Mux.Use(
		ihttp.RequestIDMiddleware(),
		middleware.RequestLogger(ihttp.NewZapLogFormatter(logger)),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{ihttp.RequestIDHeader},
			MaxAge:         300,
		}),
	)

	api.Mux.Method(http.MethodGet, "/healthz", healthz)

	api.Mux.Route("/v1", func(router chi.Router) {
		router.Method(http.MethodGet, "/launches", Launches{API: api})
		router.Method(http.MethodGet, "/launches/{launchID}", Launch{API: api})

		router.Method(http.MethodGet, "/saved", Saved{API: api})
		router.Method(http.MethodPut, "/saved/{launchID}", SaveLaunch{API: api})
		router.Method(http.MethodDelete, "/saved/{launchID}", UnsaveLaunch{API: api})
	})

	return &api
}

type API struct {
	Mux *chi.Mux

	logger    *zap.Logger
	valid     *validatorv10.Validate
	client    IClient
	list      *launch.List
	favorites IFavorites
}
