package httpx

import (
	"log/slog"
	"net/http"

	"github.com/dstokens/tokens-api/internal/core"
	"github.com/dstokens/tokens-api/internal/ports"
	"github.com/dstokens/tokens-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth        *service.AuthService
	GitHubProxy *service.GitHubProxyService
	Designs     *service.DesignSystemService
	Collections *service.TokenCollectionService
	Groups      *service.TokenGroupService
	Tokens      *service.TokenService

	Sessions ports.SessionIssuer
	Users    core.UserRepository

	CallbackPath string
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router. The returned handler is
// already wrapped with the callback interceptor so provisional OAuth
// redirects are completed before they leave the server.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CallbackPath: services.CallbackPath,
		Logger:       logger,
	}
	githubHandlers := &GitHubHandlers{Svc: services.GitHubProxy}
	designHandlers := &DesignSystemHandlers{Svc: services.Designs}
	collectionHandlers := &TokenCollectionHandlers{Svc: services.Collections}
	groupHandlers := &TokenGroupHandlers{Svc: services.Groups}
	tokenHandlers := &TokenHandlers{Svc: services.Tokens}

	requireAuth := RequireAuth(services.Sessions, services.Users)

	registerAuthRoutes(mux, authHandlers, requireAuth)
	registerGitHubRoutes(mux, githubHandlers, requireAuth)
	registerDesignSystemRoutes(mux, designHandlers, requireAuth)
	registerCRUD(mux, crudRoutes{
		Base:       "/api/token-collections",
		Create:     collectionHandlers.Create,
		List:       collectionHandlers.List,
		GetByID:    collectionHandlers.GetByID,
		Update:     collectionHandlers.Update,
		Delete:     collectionHandlers.Delete,
		Middleware: requireAuth,
	})
	registerCRUD(mux, crudRoutes{
		Base:       "/api/token-groups",
		Create:     groupHandlers.Create,
		List:       groupHandlers.List,
		GetByID:    groupHandlers.GetByID,
		Update:     groupHandlers.Update,
		Delete:     groupHandlers.Delete,
		Middleware: requireAuth,
	})
	registerCRUD(mux, crudRoutes{
		Base:       "/api/tokens",
		Create:     tokenHandlers.Create,
		List:       tokenHandlers.List,
		GetByID:    tokenHandlers.GetByID,
		Update:     tokenHandlers.Update,
		Delete:     tokenHandlers.Delete,
		Middleware: requireAuth,
	})

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	interceptor := CallbackInterceptor(CallbackInterceptorOptions{
		Auth:         services.Auth,
		CallbackPath: services.CallbackPath,
		CookieDomain: services.CookieDomain,
		Logger:       logger,
	})
	return interceptor(PromoteJWTCookie()(mux))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, requireAuth func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/connect/github", h.Begin)
	mux.HandleFunc("GET /api/connect/github/callback", h.Callback)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.Handle("GET /api/users/me", requireAuth(http.HandlerFunc(h.Me)))
}

func registerGitHubRoutes(mux *http.ServeMux, h *GitHubHandlers, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("POST /api/github/create-repo", requireAuth(http.HandlerFunc(h.CreateRepo)))
	mux.Handle("GET /api/github/repos", requireAuth(http.HandlerFunc(h.ListRepos)))
}

func registerDesignSystemRoutes(mux *http.ServeMux, h *DesignSystemHandlers, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("POST /api/design-systems/connect", requireAuth(http.HandlerFunc(h.Connect)))
	mux.Handle("GET /api/design-systems", requireAuth(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/design-systems/{id}", requireAuth(http.HandlerFunc(h.GetByID)))
}

// crudRoutes registers standard CRUD routes for a resource base path, applying Middleware if non-nil.
type crudRoutes struct {
	Base       string
	Create     http.HandlerFunc
	List       http.HandlerFunc
	GetByID    http.HandlerFunc
	Update     http.HandlerFunc
	Delete     http.HandlerFunc
	Middleware func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		if cfg.Middleware != nil {
			return cfg.Middleware(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Delete))
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
