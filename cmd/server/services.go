package main

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/vtm-api/internal/database"
	"github.com/KirkDiggler/vtm-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/vtm-api/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/dice"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/history"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/initiative"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/vitae"
	"github.com/KirkDiggler/vtm-api/internal/pkg/clock"
	"github.com/KirkDiggler/vtm-api/internal/pkg/idgen"
	"github.com/KirkDiggler/vtm-api/internal/pkg/roller"
	redisclient "github.com/KirkDiggler/vtm-api/internal/redis"
	initiativeorders "github.com/KirkDiggler/vtm-api/internal/repositories/initiative_orders"
	rolllog "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log"
)

// Service names reported by the health server
var serviceNames = []string{
	v1alpha1.DiceService_ServiceDesc.ServiceName,
	v1alpha1.VitaeService_ServiceDesc.ServiceName,
	v1alpha1.InitiativeService_ServiceDesc.ServiceName,
}

// stores are the repositories for the configured backend
type stores struct {
	rollLog    rolllog.Repository
	initiative initiativeorders.Repository
	closers    []func() error
}

func openStores(ctx context.Context, cfg *serverConfig, clk clock.Clock) (*stores, error) {
	switch cfg.Storage {
	case StorageRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable").
				WithMeta("redis_addr", cfg.RedisAddr)
		}
		return redisStores(client, cfg, clk)

	case StorageSQLite:
		db, err := database.OpenSQLite(cfg.SQLiteDSN)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open sqlite")
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get sqlite handle")
		}
		rolls, err := rolllog.NewSQLRepository(&rolllog.SQLConfig{DB: db, Clock: clk})
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		// Orders are short lived; only history goes to disk
		return &stores{
			rollLog:    rolls,
			initiative: initiativeorders.NewInMemoryRepository(),
			closers:    []func() error{sqlDB.Close},
		}, nil

	default:
		rolls, err := rolllog.NewInMemoryRepository(&rolllog.InMemoryConfig{
			Clock:      clk,
			MaxEntries: cfg.RollHistoryLimit,
		})
		if err != nil {
			return nil, err
		}
		return &stores{
			rollLog:    rolls,
			initiative: initiativeorders.NewInMemoryRepository(),
		}, nil
	}
}

func redisStores(client redisclient.Client, cfg *serverConfig, clk clock.Clock) (*stores, error) {
	rolls, err := rolllog.NewRedisRepository(&rolllog.RedisConfig{
		Client:     client,
		Clock:      clk,
		MaxEntries: cfg.RollHistoryLimit,
		TTL:        cfg.RollHistoryTTL,
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	orders, err := initiativeorders.NewRedisRepository(&initiativeorders.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return &stores{
		rollLog:    rolls,
		initiative: orders,
		closers:    []func() error{client.Close},
	}, nil
}

func (s *stores) Close() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			slog.Warn("Failed to close store", "error", err)
		}
	}
}

// services holds the handlers the server registers
type services struct {
	dice       *v1alpha1.DiceHandler
	vitae      *v1alpha1.VitaeHandler
	initiative *v1alpha1.InitiativeHandler
}

func buildServices(st *stores, clk clock.Clock, src roller.Source) (*services, error) {
	recorder, err := history.NewRecorder(&history.Config{
		RollLog:     st.rollLog,
		IDGenerator: idgen.NewUUID("roll"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create roll recorder")
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{Recorder: recorder, Source: src})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dice orchestrator")
	}
	vitaeService, err := vitae.NewOrchestrator(&vitae.Config{Recorder: recorder, Source: src})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vitae orchestrator")
	}
	initiativeService, err := initiative.NewOrchestrator(&initiative.Config{
		Repository:  st.initiative,
		IDGenerator: idgen.NewUUID(""),
		Clock:       clk,
		Source:      src,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create initiative orchestrator")
	}

	diceHandler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{DiceService: diceService})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dice handler")
	}
	vitaeHandler, err := v1alpha1.NewVitaeHandler(&v1alpha1.VitaeHandlerConfig{VitaeService: vitaeService})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vitae handler")
	}
	initiativeHandler, err := v1alpha1.NewInitiativeHandler(&v1alpha1.InitiativeHandlerConfig{
		InitiativeService: initiativeService,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create initiative handler")
	}

	return &services{
		dice:       diceHandler,
		vitae:      vitaeHandler,
		initiative: initiativeHandler,
	}, nil
}

func (s *services) register(srv grpc.ServiceRegistrar) {
	v1alpha1.RegisterDiceServiceServer(srv, s.dice)
	v1alpha1.RegisterVitaeServiceServer(srv, s.vitae)
	v1alpha1.RegisterInitiativeServiceServer(srv, s.initiative)
}
