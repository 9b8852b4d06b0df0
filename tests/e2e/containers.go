//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container

	redisOnce      sync.Once
	redisContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// Durability settings are irrelevant for a throwaway database.
var postgresSettings = [][2]string{
	{"fsync", "off"},
	{"full_page_writes", "off"},
	{"synchronous_commit", "off"},
	{"shared_buffers", "256MB"},
	{"max_connections", "200"},
	{"log_statement", "none"},
	{"log_lock_waits", "off"},
}

func postgresCmd() []string {
	cmd := []string{"postgres"}
	for _, kv := range postgresSettings {
		cmd = append(cmd, "-c", kv[0]+"="+kv[1])
	}
	return cmd
}

// StartPostgres starts one PostgreSQL 17 container per test process.
func StartPostgres(t *testing.T) ContainerInfo {
	t.Helper()

	postgresOnce.Do(func() {
		postgresContainer = startOnce(t, testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			Cmd:   postgresCmd(),
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "sauna-booking-e2e"},
		}, "PostgreSQL")
	})
	require.NotNil(t, postgresContainer, "PostgreSQL container did not start")

	info, err := hostPort(postgresContainer, "5432/tcp")
	require.NoError(t, err, "failed to get PostgreSQL container address")
	return info
}

// StartRedis starts one Redis container per test process and returns its URL.
func StartRedis(t *testing.T) string {
	t.Helper()

	redisOnce.Do(func() {
		redisContainer = startOnce(t, testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "sauna-booking-e2e"},
		}, "Redis")
	})
	require.NotNil(t, redisContainer, "Redis container did not start")

	info, err := hostPort(redisContainer, "6379/tcp")
	require.NoError(t, err, "failed to get Redis container address")
	return fmt.Sprintf("redis://%s:%s/0", info.Host, info.Port.Port())
}

// startOnce relies on ryuk for cleanup; the explicit Terminate covers runs
// with ryuk disabled.
func startOnce(t *testing.T, req testcontainers.ContainerRequest, name string) testcontainers.Container {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start %s container", name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.Terminate(ctx); err != nil {
			slog.Warn("failed to terminate container", "container", name, "error", err.Error())
		}
	})
	return c
}

func hostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mapped}, nil
}
