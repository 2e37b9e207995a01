package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/registryrepo"
	"warehouse/internal/adapters/out/redis/resolvercache"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"
	"warehouse/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	resolver   ports.EntityResolver
	now        clock.Now
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var resolver ports.EntityResolver = registryrepo.NewGormEntityResolver(gormDB, resolveTimeout(config))

	// Redis is optional; without it the registry is resolved from postgres
	// on every lookup.
	if config.RedisHost != "" {
		client := redis.NewClient(&redis.Options{Addr: config.RedisHost})
		resolver = resolvercache.NewCachingEntityResolver(resolver, client, resolvercache.DefaultTTL)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		resolver:   resolver,
		now:        clock.System,
		logger:     logger,
	}
}

func resolveTimeout(config Config) time.Duration {
	ms, err := strconv.Atoi(config.ResolveTimeoutMs)
	if err != nil || ms <= 0 {
		return registryrepo.DefaultResolveTimeout
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *CompositionRoot) transportationUoWFactory() commands.TransportationUoWFactory {
	return FuncTransportationUoWFactory(func() commands.TransportationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateTransportationCommandHandler() commands.CreateTransportationCommandHandler {
	return commands.NewCreateTransportationCommandHandler(c.transportationUoWFactory(), c.resolver, c.now)
}

func (c *CompositionRoot) CreateUpdateTransportationCommandHandler() commands.UpdateTransportationCommandHandler {
	return commands.NewUpdateTransportationCommandHandler(c.transportationUoWFactory(), c.resolver, c.now)
}

func (c *CompositionRoot) CreateDeleteTransportationCommandHandler() commands.DeleteTransportationCommandHandler {
	return commands.NewDeleteTransportationCommandHandler(c.transportationUoWFactory())
}

func (c *CompositionRoot) CreateStartTransportationCommandHandler() commands.StartTransportationCommandHandler {
	return commands.NewStartTransportationCommandHandler(c.transportationUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateCompleteTransportationCommandHandler() commands.CompleteTransportationCommandHandler {
	return commands.NewCompleteTransportationCommandHandler(c.transportationUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateCancelTransportationCommandHandler() commands.CancelTransportationCommandHandler {
	return commands.NewCancelTransportationCommandHandler(c.transportationUoWFactory())
}

func (c *CompositionRoot) CreateGetTransportationByIDQueryHandler() queries.GetTransportationByIDQueryHandler {
	return queries.NewGetTransportationByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTransportationsQueryHandler() queries.ListTransportationsQueryHandler {
	return queries.NewListTransportationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverduePlannedQueryHandler() queries.GetOverduePlannedQueryHandler {
	return queries.NewGetOverduePlannedQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverduePlannedQueryHandler(), c.now, c.logger)
}

type FuncTransportationUoWFactory func() commands.TransportationUoW

func (f FuncTransportationUoWFactory) Create() commands.TransportationUoW {
	return f()
}
