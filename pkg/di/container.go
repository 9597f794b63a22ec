// Package di wires the mock backend together: store, seeder, DAOs, the
// optional read cache, resource services, the route registry and the HTTP
// surface.
package di

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/goliatone/go-mock-backend/cache"
	"github.com/goliatone/go-mock-backend/config"
	"github.com/goliatone/go-mock-backend/dao"
	"github.com/goliatone/go-mock-backend/daocache"
	"github.com/goliatone/go-mock-backend/entity"
	"github.com/goliatone/go-mock-backend/httpapi"
	"github.com/goliatone/go-mock-backend/internal/logging"
	"github.com/goliatone/go-mock-backend/router"
	"github.com/goliatone/go-mock-backend/service"
	"github.com/goliatone/go-mock-backend/store"
)

// Container holds the singleton components of one backend instance.
type Container struct {
	config        config.Config
	logger        *slog.Logger
	store         *store.Store
	cacheService  cache.CacheService
	keySerializer cache.KeySerializer
	daos          map[entity.Kind]dao.DAO
	services      []service.RouteProvider
	registry      *router.Registry
	metrics       *httpapi.Metrics
}

// NewContainer builds every component described by cfg and registers all
// resource routes. It fails on invalid configuration or a route conflict.
func NewContainer(cfg config.Config, logger *slog.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}

	c := &Container{
		config:        cfg,
		logger:        logger,
		keySerializer: cache.NewDefaultKeySerializer(),
		daos:          make(map[entity.Kind]dao.DAO),
		registry:      router.NewRegistry(router.WithLogger(logger)),
		metrics:       httpapi.NewMetrics(),
	}

	c.store = store.New(cfg.Seed.Seeder(logger), store.WithLogger(logger))

	if cfg.Cache.Enabled {
		svc, err := cache.NewCacheService(cfg.Cache)
		if err != nil {
			return nil, fmt.Errorf("build cache: %w", err)
		}
		c.cacheService = svc
	}

	for _, b := range service.Bindings() {
		c.daos[b.Kind] = NewCachedDAO(c, dao.New(c.store, b.Kind, b.IDField, dao.WithLogger(logger)))
	}

	c.services = service.NewAll(c.daos, service.WithLogger(logger))
	for _, p := range c.services {
		if err := c.registry.Register(p.Routes()...); err != nil {
			return nil, err
		}
	}

	logger.Debug("container ready",
		"routes", len(c.registry.Routes()),
		"cache", cfg.Cache.Enabled,
		"seed_file", cfg.Seed.File,
	)
	return c, nil
}

// NewContainerWithDefaults builds a container from config.DefaultConfig.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(config.DefaultConfig(), nil)
}

// NewCachedDAO wraps base with the container's read cache. When the cache is
// disabled base is returned as is.
func NewCachedDAO(c *Container, base dao.DAO) dao.DAO {
	if c.cacheService == nil {
		return base
	}
	return daocache.New(base, c.cacheService,
		daocache.WithKeySerializer(c.keySerializer),
		daocache.WithLogger(c.logger),
	)
}

// Initialize seeds the store now instead of on the first request.
func (c *Container) Initialize(ctx context.Context) error {
	return c.store.Initialize(ctx)
}

func (c *Container) Config() config.Config { return c.config }

func (c *Container) Logger() *slog.Logger { return c.logger }

func (c *Container) Store() *store.Store { return c.store }

// CacheService is nil when the read cache is disabled.
func (c *Container) CacheService() cache.CacheService { return c.cacheService }

func (c *Container) KeySerializer() cache.KeySerializer { return c.keySerializer }

// DAO returns the data access object serving kind.
func (c *Container) DAO(kind entity.Kind) dao.DAO { return c.daos[kind] }

func (c *Container) Registry() *router.Registry { return c.registry }

func (c *Container) Metrics() *httpapi.Metrics { return c.metrics }

// Handler returns the full HTTP surface.
func (c *Container) Handler() http.Handler {
	return httpapi.NewMux(httpapi.MuxOptions{
		Registry: c.registry,
		Config:   c.config.Server,
		Metrics:  c.metrics,
		Logger:   c.logger,
	})
}

// Server returns an HTTP server for Handler bound to the configured address.
func (c *Container) Server() *httpapi.Server {
	return httpapi.NewServer(c.config.Server, c.Handler(), c.logger)
}
