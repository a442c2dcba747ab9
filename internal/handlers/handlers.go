package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/cheapy/docs"
	authhandlers "github.com/GlebRadaev/cheapy/internal/handlers/auth"
	eventhandlers "github.com/GlebRadaev/cheapy/internal/handlers/events"
	settlementhandlers "github.com/GlebRadaev/cheapy/internal/handlers/settlements"
	transactionhandlers "github.com/GlebRadaev/cheapy/internal/handlers/transactions"
	userhandlers "github.com/GlebRadaev/cheapy/internal/handlers/users"
	"github.com/GlebRadaev/cheapy/internal/service"
	"github.com/GlebRadaev/cheapy/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EventHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Finish(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CountForAdmin(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Count(w http.ResponseWriter, r *http.Request)
}

type SettlementHandler interface {
	KittyBalance(w http.ResponseWriter, r *http.Request)
	ParticipantCount(w http.ResponseWriter, r *http.Request)
	NetBalance(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Summaries(w http.ResponseWriter, r *http.Request)
}

type Metrics interface {
	Middleware(next http.Handler) http.Handler
	Handler() http.Handler
}

type Handlers struct {
	AuthHandler        AuthHandler
	UserHandler        UserHandler
	EventHandler       EventHandler
	TransactionHandler TransactionHandler
	SettlementHandler  SettlementHandler

	JWTService  auth.JWTServiceInterface
	Metrics     Metrics
	CORSOrigins []string
}

func New(s *service.Services, metrics Metrics, corsOrigins []string) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		UserHandler:        userhandlers.New(s.UserService),
		EventHandler:       eventhandlers.New(s.EventService),
		TransactionHandler: transactionhandlers.New(s.TransactionService),
		SettlementHandler:  settlementhandlers.New(s.SettlementService),
		JWTService:         s.JWTService,
		Metrics:            metrics,
		CORSOrigins:        corsOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.New(cors.Options{
			AllowedOrigins: h.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			ExposedHeaders: []string{"Authorization"},
		}).Handler,
	)
	if h.Metrics != nil {
		r.Use(h.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", h.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.JWTService))

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", h.UserHandler.List)
			r.Get("/{id}", h.UserHandler.Get)
			r.Delete("/{id}", h.UserHandler.Delete)
		})
		r.Route("/api/events", func(r chi.Router) {
			r.Post("/", h.EventHandler.Create)
			r.Get("/", h.EventHandler.List)
			r.Get("/count", h.EventHandler.CountForAdmin)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.EventHandler.Get)
				r.Delete("/", h.EventHandler.Delete)
				r.Post("/finish", h.EventHandler.Finish)
				r.Get("/kitty-balance", h.SettlementHandler.KittyBalance)
				r.Get("/participant-count", h.SettlementHandler.ParticipantCount)
				r.Get("/net-balance", h.SettlementHandler.NetBalance)
				r.Get("/summary", h.SettlementHandler.Summary)
			})
		})
		r.Route("/api/transactions", func(r chi.Router) {
			r.Post("/", h.TransactionHandler.Add)
			r.Get("/", h.TransactionHandler.List)
			r.Get("/count", h.TransactionHandler.Count)
			r.Get("/{id}", h.TransactionHandler.Get)
			r.Delete("/{id}", h.TransactionHandler.Delete)
		})
		r.Get("/api/summaries", h.SettlementHandler.Summaries)
	})

	return r
}
