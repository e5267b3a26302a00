package main

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visit-map-api/infrastructure/cache/badgerstore"
	"github.com/vfg2006/visit-map-api/infrastructure/database/postgres"
	"github.com/vfg2006/visit-map-api/infrastructure/repository"
	"github.com/vfg2006/visit-map-api/internal/api"
	"github.com/vfg2006/visit-map-api/internal/config"
	"github.com/vfg2006/visit-map-api/internal/scheduler"
	"github.com/vfg2006/visit-map-api/internal/usecases/mapping"
	"github.com/vfg2006/visit-map-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	cacheDB := cachedb(cfg.Cache)
	defer func() {
		if err := cacheDB.Close(); err != nil {
			logrus.WithError(err).Error("Erro ao fechar o cache")
		}
	}()

	visitRepo := repository.NewBreakerVisitRepository(repository.NewVisitRepository(pgConn), cfg.SourceBreaker)
	filterRepo := repository.NewFilterRepository(pgConn)

	datasetCache := badgerstore.NewDatasetCache(cacheDB, cfg.Cache.TTL)
	currentStore := badgerstore.NewCurrentDatasetStore(cacheDB)

	mapService := mapping.NewService(visitRepo, filterRepo, datasetCache, currentStore)

	cacheMaintenanceService := scheduler.NewCacheMaintenanceService(
		badgerstore.NewMaintainer(cacheDB, cfg.CacheMaintenance.DiscardRatio),
		cfg,
	)

	if err := cacheMaintenanceService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de manutenção do cache")
	} else {
		logrus.Info("Agendador de manutenção do cache iniciado com sucesso")
	}

	server, err := api.New(cfg, mapService, cacheMaintenanceService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// cachedb abre o BadgerDB usado pelo cache de consultas e pelo dataset atual
func cachedb(cacheConfig config.Cache) *badger.DB {
	db, err := badgerstore.Open(cacheConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o cache")
	}

	logrus.WithFields(logrus.Fields{
		"dir":       cacheConfig.Dir,
		"in_memory": cacheConfig.InMemory,
		"ttl":       cacheConfig.TTL.String(),
	}).Info("Cache de datasets aberto com sucesso")
	return db
}
