package app

import (
	"context"
	"log"
	"time"

	"smartapplyhub/internal/config"
	"smartapplyhub/internal/database"
	dbpostgres "smartapplyhub/internal/database/postgres"
	"smartapplyhub/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	rc := cache.NewRedis(cfg.Redis, log.Default())

	return &Container{Config: cfg, DB: db, Cache: rc}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
