package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jjrsoftware/backend/internal/config"
	"github.com/jjrsoftware/backend/internal/content"
	"github.com/jjrsoftware/backend/internal/handler"
	"github.com/jjrsoftware/backend/internal/logging"
	"github.com/jjrsoftware/backend/internal/repository"
	"github.com/jjrsoftware/backend/internal/search"
	"github.com/jjrsoftware/backend/internal/service"
	"github.com/jjrsoftware/backend/internal/storage"
	"github.com/jjrsoftware/backend/pkg/sheets"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	catalog, err := content.LoadCatalog()
	if err != nil {
		logging.Fatal("failed to load content catalog", "error", err)
	}
	engine := search.NewEngine(content.BuildIndex(catalog))

	blogRepo := repository.NewPgBlogRepository(pool)
	leadRepo := repository.NewPgLeadRepository(pool)

	coverStore := storage.NewLocalStorage(cfg.UploadsDir, cfg.UploadsBaseURL)
	blogService := service.NewBlogService(blogRepo, coverStore)

	var sink service.LeadSink
	switch cfg.LeadProvider {
	case config.ProviderGoogleSheets:
		sink = service.NewSheetsSink(sheets.NewClient(cfg.SheetsURL))
	default:
		sink = service.NewStoreSink(leadRepo)
	}
	slog.Info("lead sink selected", "provider", cfg.LeadProvider)
	leadService := service.NewLeadService(sink)

	h := handler.New(pool, cfg.FrontendURL)
	searchHandler := handler.NewSearchHandler(engine)
	blogHandler := handler.NewBlogHandler(blogService, cfg.BlogAdmin)
	leadHandler := handler.NewLeadHandler(leadService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/search", searchHandler.Search)

	mux.HandleFunc("GET /api/blogs", blogHandler.List)
	mux.HandleFunc("GET /api/blogs/nav", blogHandler.Nav)
	mux.HandleFunc("GET /api/blogs/{slug}", blogHandler.Get)

	// Admin surface. Routed unconditionally; the handler answers 404
	// unless BLOG_ADMIN_ENABLED=true.
	mux.HandleFunc("POST /api/blogs", blogHandler.Create)
	mux.HandleFunc("POST /api/blogs/cover", blogHandler.UploadCover)

	mux.HandleFunc("POST /api/leads", leadHandler.Submit)

	// Uploaded cover images.
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))

	server := &http.Server{
		Addr:         ":8080",
		Handler:      handler.RequestLogger(h.CORS(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
