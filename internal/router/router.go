package router

import (
	"database/sql"
	"net/http"
	"os"

	"kitty-registry/internal/adapters/random/blakedna"
	"kitty-registry/internal/adapters/storage/bolt"
	mem "kitty-registry/internal/adapters/storage/memory"
	pg "kitty-registry/internal/adapters/storage/postgres"
	"kitty-registry/internal/domain/events"
	"kitty-registry/internal/domain/kitties"
	"kitty-registry/internal/middleware"
	"kitty-registry/internal/platform/logger"
	"kitty-registry/internal/ports/auth"

	_ "kitty-registry/docs" // spec swagger generado (swag init)

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Storage: si viene DB usa Postgres; si viene Bolt usa BoltDB;
	// si no viene ninguno, in-memory.
	DB   *sql.DB
	Bolt *bolt.Store

	// Fuente de DNA pseudo-aleatorio. Si es nil, se usa BLAKE2b con seed
	// de crypto/rand. Los tests inyectan una fuente determinística.
	DNA kitties.DNASource

	// Logger para el access log. Si es nil, no se loguean requests.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		kittyRepo kitties.Repository
		counter   kitties.CounterStore
		eventRepo events.Repository
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

	boltStore := opts.Bolt
	if db == nil && boltStore == nil {
		if path := os.Getenv("KITTY_DB_PATH"); path != "" {
			opened, err := bolt.Open(path)
			if err == nil {
				boltStore = opened
			}
		}
	}

	switch {
	case db != nil:
		kittyRepo = pg.NewKittiesRepo(db)
		counter = pg.NewCounterStore(db)
		eventRepo = pg.NewEventsRepo(db)
	case boltStore != nil:
		kittyRepo = bolt.NewKittiesRepo(boltStore)
		counter = bolt.NewCounterStore(boltStore)
		eventRepo = bolt.NewEventsRepo(boltStore)
	default:
		kittyRepo = mem.NewKittyRepo()
		counter = mem.NewCounterStore()
		eventRepo = mem.NewEventRepo()
	}

	dna := opts.DNA
	if dna == nil {
		dna = blakedna.NewSource(blakedna.CryptoOracle{})
	}

	// Services por módulo. El registro emite sus eventos de ciclo de vida
	// al servicio de eventos vía el sink.
	eventsSvc := events.NewService(eventRepo)
	kittiesSvc := kitties.NewService(kittyRepo, counter, dna, events.NewSink(eventsSvc))

	// Rutas por módulo
	kitties.RegisterRoutes(r, kittiesSvc)
	events.RegisterRoutes(r, eventsSvc, kittiesSvc)

	return r
}
