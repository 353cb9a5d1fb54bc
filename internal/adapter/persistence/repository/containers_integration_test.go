//go:build integration

package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"resource_management/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// testPostgres holds a shared PostgreSQL container with migrations applied.
type testPostgres struct {
	Container testcontainers.Container
	DB        *database.DB
}

var (
	sharedPostgres     *testPostgres
	sharedPostgresOnce sync.Once
	sharedPostgresErr  error
)

func getTestPostgres(t *testing.T) *testPostgres {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedPostgresOnce.Do(func() {
		sharedPostgres, sharedPostgresErr = setupTestPostgres()
	})
	if sharedPostgresErr != nil {
		t.Fatalf("Failed to setup test database: %v", sharedPostgresErr)
	}

	resetPostgres(t, sharedPostgres.DB)
	return sharedPostgres
}

func setupTestPostgres() (*testPostgres, error) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_DB":       "resource_management",
				"POSTGRES_USER":     "resource",
				"POSTGRES_PASSWORD": "test_password",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            fmt.Sprintf("postgres://resource:test_password@%s:%s/resource_management?sslmode=disable", host, port.Port()),
		MaxConnections: 5,
	})
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(db, zap.NewNop()); err != nil {
		return nil, err
	}
	return &testPostgres{Container: container, DB: db}, nil
}

func resetPostgres(t *testing.T, db *database.DB) {
	t.Helper()
	if _, err := db.Exec(context.Background(), `TRUNCATE demands, accounts RESTART IDENTITY`); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// testDynamo holds a shared DynamoDB Local container. Each test gets its
// own table names so state never leaks between tests.
type testDynamo struct {
	Container testcontainers.Container
	Client    *dynamodb.Client
	Endpoint  string
}

var (
	sharedDynamo     *testDynamo
	sharedDynamoOnce sync.Once
	sharedDynamoErr  error
)

func getTestDynamo(t *testing.T) (*testDynamo, database.DynamoDBConfig) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedDynamoOnce.Do(func() {
		sharedDynamo, sharedDynamoErr = setupTestDynamo()
	})
	if sharedDynamoErr != nil {
		t.Fatalf("Failed to setup DynamoDB Local: %v", sharedDynamoErr)
	}

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	cfg := database.DynamoDBConfig{
		Region:        "us-east-1",
		Endpoint:      sharedDynamo.Endpoint,
		AccountsTable: "accounts_" + suffix,
		DemandsTable:  "demands_" + suffix,
		CountersTable: "counters_" + suffix,
	}
	if err := database.EnsureDynamoTables(context.Background(), sharedDynamo.Client, cfg, zap.NewNop()); err != nil {
		t.Fatalf("failed to create tables: %v", err)
	}
	return sharedDynamo, cfg
}

func setupTestDynamo() (*testDynamo, error) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "amazon/dynamodb-local:latest",
			ExposedPorts: []string{"8000/tcp"},
			Cmd:          []string{"-jar", "DynamoDBLocal.jar", "-inMemory"},
			WaitingFor:   wait.ForListeningPort("8000/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start dynamodb container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "8000")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())
	client, err := database.ConnectDynamoDB(ctx, database.DynamoDBConfig{Region: "us-east-1", Endpoint: endpoint})
	if err != nil {
		return nil, err
	}
	return &testDynamo{Container: container, Client: client, Endpoint: endpoint}, nil
}
