package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bakery-catalog-service/internal/config"
	"github.com/murkotick/bakery-catalog-service/internal/models/m_product"
	"github.com/murkotick/bakery-catalog-service/internal/pkg/logger"
	"github.com/murkotick/bakery-catalog-service/internal/pkg/mongodb"
)

// A small seeding helper that loads seed/products.json into the products
// collection. Entries are validated through the domain constructor, so a bad
// seed file fails loudly instead of planting malformed catalog documents.
//
// Usage:
//
//	export MONGODB_URI=mongodb://localhost:27017
//	go run ./cmd/seed -file seed/products.json
func main() {
	file := flag.String("file", "seed/products.json", "path to the product seed file")
	drop := flag.Bool("drop", false, "drop the products collection before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl := logger.New(cfg.Logging.Level, "console")
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entries, err := readSeedFile(*file)
	if err != nil {
		zl.Fatal("read seed file", zap.String("file", *file), zap.Error(err))
	}
	if len(entries) == 0 {
		zl.Fatal("seed file contains no products", zap.String("file", *file))
	}

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

	coll := db.Collection(m_product.CollectionName)
	if *drop {
		if err := coll.Drop(ctx); err != nil {
			zl.Fatal("drop products collection", zap.Error(err))
		}
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(entries))
	for i, e := range entries {
		var desc *string
		if e.Description != "" {
			desc = &e.Description
		}

		p, err := domain.NewProduct(uuid.New().String(), e.Name, e.Description, e.Category, e.Price, e.Available, now)
		if err != nil {
			zl.Fatal("invalid seed entry",
				zap.Int("index", i),
				zap.String("name", e.Name),
				zap.Error(err),
			)
		}

		docs = append(docs, m_product.BuildInsertDoc(
			p.ID(), p.Name(), desc, p.Category(), p.Price(), p.Available(), p.CreatedAt(),
		))
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		zl.Fatal("insert seed products", zap.Error(err))
	}

	var categories []string
	if cats, err := coll.Distinct(ctx, m_product.FieldCategory, bson.M{}); err == nil {
		for _, c := range cats {
			if s, ok := c.(string); ok {
				categories = append(categories, s)
			}
		}
	}

	fmt.Printf("Seeded %d products into %s (%d categories)\n",
		len(res.InsertedIDs), cfg.Mongo.Database, len(categories))
}

type seedEntry struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
}

func readSeedFile(path string) ([]seedEntry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []seedEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, nil
}
