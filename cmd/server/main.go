package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/queries"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/queries/get_product"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/queries/list_categories"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/queries/search_products"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/repo"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/search"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/usecases/create_order"
	"github.com/murkotick/bakery-catalog-service/internal/config"
	"github.com/murkotick/bakery-catalog-service/internal/pkg/clock"
	"github.com/murkotick/bakery-catalog-service/internal/pkg/logger"
	"github.com/murkotick/bakery-catalog-service/internal/pkg/mongodb"
	httpcatalog "github.com/murkotick/bakery-catalog-service/internal/transport/http/catalog"
	"github.com/murkotick/bakery-catalog-service/internal/transport/http/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zl.Sync() }()

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		zl.Info("shutdown signal received")
		cancel()
	}()

	db, err := mongodb.NewAdapter(mongodb.Config{
		URI:              cfg.Mongo.URI,
		Database:         cfg.Mongo.Database,
		ConnectTimeout:   config.GetDuration(cfg.Mongo.ConnectTimeout),
		OperationTimeout: config.GetDuration(cfg.Mongo.OperationTimeout),
	}, zl)
	if err != nil {
		zl.Fatal("mongodb connect failed", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	clk := clock.RealClock{}
	readModel := queries.NewMongoReadModel(db)
	orderRepo := repo.NewOrderRepo(db)

	cmds := httpcatalog.Commands{
		CreateOrder: create_order.NewInteractor(orderRepo, clk),
	}
	qrys := httpcatalog.Queries{
		Search:     search_products.NewHandler(readModel),
		Get:        get_product.NewHandler(readModel),
		Categories: list_categories.NewHandler(readModel),
	}
	limits := search.Limits{
		DefaultPageSize: cfg.Catalog.DefaultPageSize,
		MaxPageSize:     cfg.Catalog.MaxPageSize,
	}

	h := httpcatalog.NewHandler(cmds, qrys, limits, db, zl)
	router := httpcatalog.NewRouter(h, middleware.CORSConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: cfg.CORS.AllowedMethods,
		AllowedHeaders: cfg.CORS.AllowedHeaders,
	}, zl)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.HTTP.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.HTTP.WriteTimeout),
	}

	go func() {
		zl.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("http serve failed", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(), config.GetDuration(cfg.HTTP.ShutdownTimeout))
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Warn("graceful shutdown incomplete, closing", zap.Error(err))
		_ = srv.Close()
	}

	zl.Info("server stopped")
}
