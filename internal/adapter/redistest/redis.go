// Package redistest starts a shared Redis container for integration tests.
package redistest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	once       sync.Once
	sharedAddr string
	initErr    error
)

// Setup starts a shared Redis container (once per test binary) and returns a
// client on a clean database. Skipped under -short.
func Setup(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("redistest: integration test skipped in -short mode")
	}

	once.Do(func() {
		sharedAddr, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("redistest: failed to start redis: %v", initErr)
	}

	client := redis.NewClient(&redis.Options{Addr: sharedAddr})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}
	return fmt.Sprintf("%s:%s", host, port.Port()), nil
}
