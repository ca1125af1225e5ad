package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/voyago/travel-order-service/internal/app/config"
	"github.com/voyago/travel-order-service/internal/app/controller/http/auth"
	"github.com/voyago/travel-order-service/internal/app/controller/http/middleware/logger"
	"github.com/voyago/travel-order-service/internal/app/controller/http/middleware/token"
	"github.com/voyago/travel-order-service/internal/app/controller/http/orders"
	httputils "github.com/voyago/travel-order-service/internal/app/controller/http/utils"
	"github.com/voyago/travel-order-service/internal/app/notifier"
	storage "github.com/voyago/travel-order-service/internal/app/storage/api/model"
	"github.com/voyago/travel-order-service/internal/app/tokenstore"
	orders_usecase "github.com/voyago/travel-order-service/internal/app/usecase/orders"
)

type HTTPServer struct {
	server *http.Server

	config  config.Config
	storage storage.Storage

	notifier      notifier.Notifier
	tokens        tokenstore.TokenStore
	authenticator auth.AuthUser
	orders        orders.Order
}

func New(config config.Config, storage storage.Storage) (*HTTPServer, error) {
	tokens, err := tokenstore.InitTokenStore(context.Background(), config)
	if err != nil {
		return nil, err
	}

	orderNotifier := notifier.InitNotifier(config)

	authenticator := auth.New(storage, tokens, config)
	orderService := orders_usecase.New(storage, orderNotifier)
	orderHandlers := orders.New(orderService)

	tokenParser := token.New(config.JWTSecret, tokens)
	mux := createMux(tokenParser, authenticator, orderHandlers, storage)

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: mux,
	}

	instance := &HTTPServer{
		server:        server,
		config:        config,
		storage:       storage,
		notifier:      orderNotifier,
		tokens:        tokens,
		authenticator: authenticator,
		orders:        orderHandlers,
	}

	return instance, nil
}

func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")
	err := s.server.Shutdown(context.Background())
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}

	if err := s.notifier.Close(); err != nil {
		zap.L().Error("error while closing notifier", zap.Error(err))
	}

	if err := s.tokens.Close(); err != nil {
		zap.L().Error("error while closing token store", zap.Error(err))
	}
}

func createMux(tokenParser token.Parser, authenticator auth.AuthUser, orderHandlers orders.Order, storage storage.Storage) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)
	r.Use(tokenParser.Middleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authenticator.Register())
		r.Post("/auth/login", authenticator.Login())
		r.Post("/auth/refresh", authenticator.Refresh())
		r.Post("/auth/logout", authenticator.Logout())
		r.Get("/me", authenticator.Me())

		r.Route("/travel-orders", func(r chi.Router) {
			r.Post("/", orderHandlers.CreateOrder())
			r.Get("/", orderHandlers.GetOrders())
			r.Get("/{id}", orderHandlers.GetOrder())
			r.Patch("/{id}/approve", orderHandlers.ApproveOrder())
			r.Put("/{id}/approve", orderHandlers.ApproveOrder())
			r.Patch("/{id}/cancel", orderHandlers.CancelOrder())
			r.Put("/{id}/cancel", orderHandlers.CancelOrder())
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ping", pingHandler(storage))

	return r
}

func pingHandler(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		if err := storage.Ping(ctx); err != nil {
			zap.L().Error("error while pinging storage", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
