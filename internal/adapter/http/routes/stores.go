package routes

import (
	"context"
	"fmt"

	"resource_management/internal/adapter/persistence/repository"
	"resource_management/internal/infrastructure/config"
	"resource_management/internal/infrastructure/database"
	"resource_management/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type stores struct {
	accounts interfaces.IAccountRepository
	demands  interfaces.IDemandRepository
	close    func()
}

func openStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverDynamoDB:
		return openDynamoStores(ctx, cfg, logger)
	default:
		return openPostgresStores(ctx, cfg, logger)
	}
}

func openPostgresStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*stores, error) {
	db, err := database.NewConnection(ctx, &database.Config{
		URL:             cfg.Database.ConnectionString(),
		MaxConnections:  cfg.Database.MaxConnections,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if cfg.Database.RunMigrations {
		if err := database.RunMigrations(db, logger); err != nil {
			db.Close()
			return nil, err
		}
	}

	logger.Info("Connected to PostgreSQL",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)
	return &stores{
		accounts: repository.NewAccountPostgresRepository(db.Pool),
		demands:  repository.NewDemandPostgresRepository(db.Pool),
		close:    db.Close,
	}, nil
}

func openDynamoStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*stores, error) {
	dcfg := database.DynamoDBConfig{
		Region:          cfg.DynamoDB.Region,
		AccessKeyID:     cfg.DynamoDB.AccessKeyID,
		SecretAccessKey: cfg.DynamoDB.SecretAccessKey,
		Endpoint:        cfg.DynamoDB.Endpoint,
		AccountsTable:   cfg.DynamoDB.AccountsTable,
		DemandsTable:    cfg.DynamoDB.DemandsTable,
		CountersTable:   cfg.DynamoDB.CountersTable,
	}

	ddb, err := database.ConnectDynamoDB(ctx, dcfg)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}

	if cfg.DynamoDB.EnsureTables {
		if err := database.EnsureDynamoTables(ctx, ddb, dcfg, logger); err != nil {
			return nil, err
		}
	}

	logger.Info("Connected to DynamoDB",
		zap.String("region", dcfg.Region),
		zap.String("endpoint", dcfg.Endpoint),
	)
	return &stores{
		accounts: repository.NewAccountDynamoRepository(ddb, dcfg.AccountsTable),
		demands:  repository.NewDemandDynamoRepository(ddb, dcfg.DemandsTable, dcfg.AccountsTable, dcfg.CountersTable),
		close:    func() {},
	}, nil
}
