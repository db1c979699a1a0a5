package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Config holds MongoDB adapter configuration.
type Config struct {
	URI              string
	Database         string
	ConnectTimeout   time.Duration
	OperationTimeout time.Duration
}

// Adapter owns the MongoDB client and database handle. It is created once at
// startup and injected into repositories and read models; request handlers
// never reach for a process-global connection.
type Adapter struct {
	client   *mongo.Client
	database string
	timeout  time.Duration
	log      *zap.Logger
}

// NewAdapter connects to MongoDB and verifies connectivity with a ping.
// It does not create collections or indexes.
func NewAdapter(cfg Config, log *zap.Logger) (*Adapter, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongodb URI is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("mongodb database is required")
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Info("mongodb connection established", zap.String("database", cfg.Database))
	return &Adapter{
		client:   client,
		database: cfg.Database,
		timeout:  cfg.OperationTimeout,
		log:      log,
	}, nil
}

func (a *Adapter) Database() *mongo.Database {
	return a.client.Database(a.database)
}

func (a *Adapter) Collection(name string) *mongo.Collection {
	return a.Database().Collection(name)
}

// OperationContext derives a context bounded by the configured operation
// timeout, unless the caller already set a deadline.
func (a *Adapter) OperationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *Adapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx, readpref.Primary())
}

// HealthCheck pings the primary with a short budget so the health endpoint
// answers quickly even when the store is down.
func (a *Adapter) HealthCheck(ctx context.Context) error {
	hcCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := a.Ping(hcCtx); err != nil {
		a.log.Error("mongodb health check failed", zap.Error(err))
		return fmt.Errorf("mongodb health check failed: %w", err)
	}
	return nil
}

func (a *Adapter) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("close mongodb connection: %w", err)
	}
	return nil
}
