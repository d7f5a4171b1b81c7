package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"vacunapet/internal/adapters/auth/sessions"
	mem "vacunapet/internal/adapters/storage/memory"
	pg "vacunapet/internal/adapters/storage/postgres"
	"vacunapet/internal/domain/owners"
	"vacunapet/internal/domain/pets"
	"vacunapet/internal/domain/records"
	"vacunapet/internal/middleware"
	"vacunapet/internal/platform/httpjson"
	"vacunapet/internal/web"

	_ "vacunapet/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Tope para bodies JSON de la API; los uploads web van aparte
// (multipart con su propio límite).
const maxAPIBody = 8 << 20

type Options struct {
	Logger zerolog.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	SessionSecret string
	SessionTTL    time.Duration
	SessionCookie string

	UploadDir string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	sessionMgr := sessions.NewManager(opts.SessionSecret, opts.SessionTTL, opts.SessionCookie)
	r.Use(middleware.SessionContext(sessionMgr, sessionMgr.CookieName()))

	var (
		ownersRepo  owners.Repository
		petsRepo    pets.Repository
		recordsRepo records.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		ownersRepo = pg.NewOwnersRepo(db)
		petsRepo = pg.NewPetsRepo(db)
		recordsRepo = pg.NewRecordsRepo(db)
	} else {
		store := mem.NewStore()
		ownersRepo = store.Owners()
		petsRepo = store.Pets()
		recordsRepo = store.Records()
	}

	// Services por módulo
	ownersSvc := owners.NewService(ownersRepo)
	petsSvc := pets.NewService(petsRepo)
	recordsSvc := records.NewService(recordsRepo)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		httpjson.OK(w, http.StatusOK, "pong", nil)
	})

	// Superficie web con sesión
	webHandlers := web.NewHandlers(ownersSvc, petsSvc, sessionMgr, opts.UploadDir, opts.Logger)
	webHandlers.RegisterRoutes(r)

	// Fotos subidas desde la web
	uploadsFS := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadDir)))
	r.Get("/uploads/*", uploadsFS.ServeHTTP)

	// API JSON para la app móvil
	r.Route("/api", func(api chi.Router) {
		api.Use(limitBody(maxAPIBody))

		api.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
			httpjson.OK(w, http.StatusOK, "pong", nil)
		})

		owners.RegisterRoutes(api, ownersSvc)
		pets.RegisterRoutes(api, petsSvc, ownersSvc)
		records.RegisterRoutes(api, recordsSvc, petsSvc)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}

func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
