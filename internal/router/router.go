package router

import (
	"fmt"
	"net/http"

	"adoptme/internal/adapters/auth/jwtsession"
	"adoptme/internal/adapters/auth/revoker"
	imgstore "adoptme/internal/adapters/images"
	"adoptme/internal/adapters/storage"
	"adoptme/internal/config"
	_ "adoptme/internal/docs"
	"adoptme/internal/domain/adoptions"
	"adoptme/internal/domain/mocks"
	"adoptme/internal/domain/pets"
	"adoptme/internal/domain/sessions"
	"adoptme/internal/domain/users"
	"adoptme/internal/middleware"
	"adoptme/internal/platform/logger"
	"adoptme/internal/platform/metrics"
	"adoptme/internal/platform/respond"
	"adoptme/internal/ports/auth"
	"adoptme/internal/ports/images"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// imagesPrefix es donde se sirven las imágenes del store fs.
const imagesPrefix = "/img"

type Options struct {
	// Config nil => config.Default() (todo en memoria).
	Config *config.Config
	Logger logger.Logger

	// Backend nil => repos en memoria. El router no lo cierra.
	Backend *storage.Backend

	// Revoker nil => revocaciones en memoria.
	Revoker auth.Revoker

	// Images nil => disco local en Config.Images.Dir.
	// Con driver fs se sirve /img desde el Dir del store.
	Images images.Store

	// Metrics nil => se crea uno propio.
	Metrics *metrics.Metrics

	// HashCost de bcrypt; 0 usa el default. Los tests lo bajan.
	HashCost int
}

func NewRouter(opts Options) (http.Handler, error) {
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	backend := opts.Backend
	if backend == nil {
		backend = storage.NewMemory()
	}
	rev := opts.Revoker
	if rev == nil {
		rev = revoker.NewMemory()
	}
	imgs := opts.Images
	if imgs == nil {
		imgs = &imgstore.FSStore{Dir: cfg.Images.Dir, PublicPrefix: imagesPrefix}
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	ttl, err := cfg.SessionTTL()
	if err != nil {
		return nil, err
	}
	issuer, err := jwtsession.NewIssuer(cfg.Auth.JWTSecret, ttl, rev)
	if err != nil {
		return nil, fmt.Errorf("session issuer: %w", err)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))
	r.Use(m.Middleware)
	r.Use(middleware.SecurityHeaders)

	r.Use(middleware.AuthContext(issuer, cfg.CookieName(), log))

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/api/docs", http.RedirectHandler("/api/docs/index.html", http.StatusMovedPermanently).ServeHTTP)
	r.Get("/api/docs/*", httpSwagger.Handler(httpSwagger.URL("/api/docs/doc.json")))

	if cfg.Images.Driver == config.ImagesFS {
		dir := cfg.Images.Dir
		if fsStore, ok := imgs.(*imgstore.FSStore); ok {
			dir = fsStore.Dir
		}
		fs := http.StripPrefix(imagesPrefix+"/", http.FileServer(http.Dir(dir)))
		r.Get(imagesPrefix+"/*", fs.ServeHTTP)
	}

	// Services por módulo
	usersSvc := users.NewService(backend.Users,
		users.WithIDGenerator(backend.NewID),
		users.WithHashCost(opts.HashCost),
	)
	petsSvc := pets.NewService(backend.Pets, pets.WithIDGenerator(backend.NewID))
	adoptionsSvc := adoptions.NewService(backend.Adoptions, usersSvc, petsSvc,
		adoptions.WithIDGenerator(backend.NewID),
		adoptions.WithLogger(log),
	)
	sessionsSvc := sessions.NewService(usersSvc, issuer)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, log)
	pets.RegisterRoutes(r, petsSvc, imgs, log)
	adoptions.RegisterRoutes(r, adoptionsSvc, m, log)
	sessions.RegisterRoutes(r, sessionsSvc, cfg.CookieName(), log)

	if cfg.Mocks.Enabled {
		gen := mocks.NewGenerator(mocks.WithHashCost(opts.HashCost))
		mocks.RegisterRoutes(r, mocks.NewService(gen, usersSvc, petsSvc, log), log)
	}

	log.Info("router ready", map[string]any{
		"storage": backend.Driver,
		"images":  cfg.Images.Driver,
		"mocks":   cfg.Mocks.Enabled,
	})
	return r, nil
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	respond.Error(w, http.StatusNotFound, "Route not found")
}
