package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisImage is the image started for integration tests
const RedisImage = "redis:7-alpine"

// TestRedisConfig holds configuration for an already running test Redis
type TestRedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DefaultTestRedisConfig reads REDIS_TEST_ADDR, using DB 15 to stay clear of
// development data.
func DefaultTestRedisConfig() *TestRedisConfig {
	return &TestRedisConfig{
		Addr: os.Getenv("REDIS_TEST_ADDR"),
		DB:   15,
	}
}

// CreateTestRedisClient returns a client for integration tests. When
// REDIS_TEST_ADDR is set that server is used, otherwise a Redis container
// is started. The test is skipped when neither is available.
func CreateTestRedisClient(t *testing.T, cfg *TestRedisConfig) redis.UniversalClient {
	t.Helper()

	if cfg == nil {
		cfg = DefaultTestRedisConfig()
	}
	if cfg.Addr == "" {
		cfg.Addr = startRedisContainer(t)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}

	require.NoError(t, client.FlushDB(ctx).Err(), "Failed to flush test Redis database")

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}

func startRedisContainer(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping Redis container in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        RedisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("failed to start Redis container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return endpoint
}
