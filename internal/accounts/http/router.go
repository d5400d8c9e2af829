package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/solwayhq/accounts/internal/accounts/service"
	"github.com/solwayhq/accounts/internal/accounts/store"
	"github.com/solwayhq/accounts/pkg/httpx"
	"github.com/solwayhq/accounts/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	TokenService        *service.TokenService
	LoginService        *service.LoginService
	RegistrationService *service.RegistrationService
	UserService         *service.UserService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Default middleware chain applied to every route.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{
		LoginService: r.LoginService,
		CookieTTL:    r.TokenService.TTL(),
	}
	r.Mux.Handle("POST /api/auth/login", loginHandler)

	r.Mux.Handle("POST /api/auth/logout", &LogoutHandler{})
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		RegistrationService: r.RegistrationService,
		UserService:         r.UserService,
	}

	r.Mux.Handle("POST /api/users", http.HandlerFunc(h.HandleCreate))

	// Listing requires a valid session token, bearer header or cookie.
	r.Mux.Handle("GET /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.TokenService.Verifier()),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
