package application

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/surajmeruva0786/DigiGov10/internal/auth"
	"github.com/surajmeruva0786/DigiGov10/internal/catalog"
	"github.com/surajmeruva0786/DigiGov10/internal/config"
	"github.com/surajmeruva0786/DigiGov10/internal/events"
	"github.com/surajmeruva0786/DigiGov10/internal/handler"
	"github.com/surajmeruva0786/DigiGov10/internal/i18n"
	"github.com/surajmeruva0786/DigiGov10/internal/router"
	"github.com/surajmeruva0786/DigiGov10/internal/service"
	"github.com/surajmeruva0786/DigiGov10/internal/store"
)

// OpenStore selects the persistence backend: Redis when REDIS_URL is set,
// the file-backed store otherwise. The returned publisher is nil for the
// file backend (no stream to publish to).
func OpenStore(ctx context.Context, cfg *config.Config) (store.Store, *events.RedisPublisher, error) {
	if cfg.RedisURL != "" {
		rdb, err := store.Dial(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(rdb), events.NewRedisPublisher(rdb, cfg.EventStream), nil
	}
	st, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return st, nil, nil
}

// API is the HTTP application (mode api).
type API struct {
	cfg     *config.Config
	httpSrv *http.Server
}

func NewAPI(cfg *config.Config) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	ctx := context.Background()

	st, publisher, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	messages, err := i18n.New()
	if err != nil {
		return nil, fmt.Errorf("i18n: %w", err)
	}
	schemeCatalog, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	var complaintPublisher events.ComplaintEventPublisher
	if publisher != nil {
		complaintPublisher = publisher
	}
	complaintSvc, err := service.NewComplaintService(ctx, st, complaintPublisher)
	if err != nil {
		return nil, fmt.Errorf("complaints: %w", err)
	}
	if n, err := complaintSvc.SeedSampleData(ctx); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	} else if n > 0 {
		log.Printf("seed: inserted %d sample complaints", n)
	}

	authSvc, err := auth.NewService(ctx, st, auth.AcceptAll(), []byte(cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}

	complaintHandler := handler.NewComplaintHandler(complaintSvc, messages, cfg.DefaultLang)
	schemeHandler := handler.NewSchemeHandler(schemeCatalog, messages, cfg.DefaultLang)
	authHandler := handler.NewAuthHandler(authSvc, messages, cfg.DefaultLang)

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(complaintHandler, schemeHandler, authHandler, authSvc),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{cfg: cfg, httpSrv: httpSrv}, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func (a *API) Run(ctx context.Context) error {
	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	log.Printf("HTTP server listening on %s", a.httpSrv.Addr)
	log.Printf("  Swagger UI:    %s/swagger", base)
	log.Printf("  Swagger spec:  %s/swagger/openapi.json", base)
	log.Printf("  Health:        %s/health", base)
	log.Printf("  API v1:        %s/api/v1/", base)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
