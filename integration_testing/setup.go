package integration_testing

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/2beens/trainmetrics/internal"
	"github.com/2beens/trainmetrics/internal/config"
	"github.com/2beens/trainmetrics/internal/training"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	testDeviceAppSecret = "test-device-secret"
	testAgentSyncSecret = "test-agent-secret"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

func getTestConfig(redisPort string) *config.Config {
	socketDir := filepath.Join(os.TempDir(), "trainmetrics-integration")
	return &config.Config{
		Host:                        serverHost,
		Port:                        serverPort,
		DecoderUnixSocketAddrDir:    socketDir,
		DecoderUnixSocketFileName:   "recordings-test.sock",
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		SummaryCacheExpireMinutes:   1,
		LoginRateLimitAllowedPerMin: 5,
	}
}

func redisSetup(pool *dockertest.Pool) (string, func(), error) {
	redisResource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", nil, fmt.Errorf("run redis: %s", err)
	}

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, func() {
		redisResource.Close()
	}, nil
}

func serverSetup(ctx context.Context) (*internal.Server, func(), error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, fmt.Errorf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = pool.Client.Ping(); err != nil {
		return nil, nil, fmt.Errorf("could not ping dockertest pool: %s", err)
	}

	redisPort, redisCleanup, err := redisSetup(pool)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup redis: %s", err.Error())
	}

	cfg := getTestConfig(redisPort)
	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			AthleteProfile:          training.Profile{FTP: 250},
			DeviceAppSecret:         testDeviceAppSecret,
			AgentSyncSecret:         testAgentSyncSecret,
			VersionInfo:             "test-version-info",
			AdminUsername:           "adminUsername",
			AdminPasswordHash:       "adminPasswordHash",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		redisCleanup()
		return nil, nil, err
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	return server, func() {
		redisCleanup()
		server.GracefulShutdown()
	}, nil
}

func serverIsUp() bool {
	resp, err := http.Get(serverEndpoint + "/")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
