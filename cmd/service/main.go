package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/2beens/trainmetrics/internal"
	"github.com/2beens/trainmetrics/internal/config"
	"github.com/2beens/trainmetrics/internal/logging"
	"github.com/2beens/trainmetrics/internal/training"
	"github.com/2beens/trainmetrics/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "trainmetrics-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	adminUsername := os.Getenv("TRAINMETRICS_ADMIN_USERNAME")
	adminPasswordHash := os.Getenv("TRAINMETRICS_ADMIN_PASSWORD_HASH")
	if adminUsername == "" || adminPasswordHash == "" {
		log.Errorf("admin username and password not set. use TRAINMETRICS_ADMIN_USERNAME and TRAINMETRICS_ADMIN_PASSWORD_HASH")
		adminUsername = "todo"
		adminPasswordHash = "todo"
	}

	deviceAppSecret := os.Getenv("TRAINMETRICS_DEVICE_APP_SECRET")
	if deviceAppSecret == "" {
		log.Errorf("device app secret not set. use TRAINMETRICS_DEVICE_APP_SECRET")
	}

	agentSyncSecret := os.Getenv("TRAINMETRICS_AGENT_SYNC_SECRET")
	if agentSyncSecret == "" {
		log.Errorf("decoder agent sync secret not set. use TRAINMETRICS_AGENT_SYNC_SECRET")
	}

	redisPassword := os.Getenv("TRAINMETRICS_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use TRAINMETRICS_REDIS_PASS")
	}

	athleteProfile := training.ProfileFromEnv(os.Getenv)
	if athleteProfile.FTP == 0 {
		log.Warnf("athlete FTP not set, use %s env var to set it, per workout estimates will be used", training.EnvAthleteFTP)
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			AthleteProfile:          athleteProfile,
			DeviceAppSecret:         deviceAppSecret,
			AgentSyncSecret:         agentSyncSecret,
			VersionInfo:             versionInfo,
			AdminUsername:           adminUsername,
			AdminPasswordHash:       adminPasswordHash,
			RedisPassword:           redisPassword,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	// go to sleep 🥱
	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
