package workouts_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"testing"
	"time"

	"github.com/2beens/trainmetrics/internal/telemetry/metrics"
	"github.com/2beens/trainmetrics/internal/training"
	"github.com/2beens/trainmetrics/internal/workouts"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingsUnixSocketListener(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tempDir, err := os.MkdirTemp("", "trainmetrics-recordings-socket")
	require.NoError(t, err)
	defer func() {
		_ = os.RemoveAll(tempDir)
	}()

	instr := metrics.NewTestManager()
	repo := workouts.NewRepo()
	analyzer := workouts.NewAnalyzer(training.Profile{FTP: 250}, instr)

	socketFileName := fmt.Sprintf("%d.sock", os.Getpid())
	addr, err := workouts.RecordingsUnixSocketListenerSetup(ctx, tempDir, socketFileName, analyzer, repo, instr)
	require.NoError(t, err)
	require.NotNil(t, addr)

	conn, err := net.DialTimeout("unix", addr.String(), 20*time.Second)
	require.NoError(t, err)
	require.NoError(t, conn.SetDeadline(time.Now().Add(2*time.Second)))

	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	morningRideJson, err := json.Marshal(workouts.Recording{
		Day:     "2025-03-10",
		Title:   "Morning Ride",
		Samples: steadyRideSamples(start, 601, 200, 150, 85),
	})
	require.NoError(t, err)
	eveningSpinJson, err := json.Marshal(workouts.Recording{
		Day:     "2025-03-10",
		Title:   "Evening Spin",
		Samples: steadyRideSamples(start.Add(10*time.Hour), 61, 140, 120, 90),
	})
	require.NoError(t, err)

	_, err = conn.Write(append(morningRideJson, '\n'))
	require.NoError(t, err)
	_, err = conn.Write(append(eveningSpinJson, '\n'))
	require.NoError(t, err)

	unixConn, ok := conn.(*net.UnixConn)
	require.True(t, ok)
	require.NoError(t, unixConn.CloseWrite())

	reply, err := io.ReadAll(conn)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(reply))
	require.NoError(t, conn.Close())

	cancel()

	combined, err := repo.GetCombined(context.Background(), "2025-03-10", "Morning Ride")
	require.NoError(t, err)
	require.NotNil(t, combined.Device)
	assert.Equal(t, 601, combined.Device.SampleCount)

	combined, err = repo.GetCombined(context.Background(), "2025-03-10", "Evening Spin")
	require.NoError(t, err)
	require.NotNil(t, combined.Device)
	assert.Equal(t, 61, combined.Device.SampleCount)

	assert.Equal(t, 2.0, testutil.ToFloat64(instr.CounterRecordingsIngested))
	assert.Equal(t, 2.0, testutil.ToFloat64(instr.CounterWorkoutsProcessed))
}

func TestRecordingsUnixSocketListener_SkipsBadLines(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tempDir, err := os.MkdirTemp("", "trainmetrics-recordings-socket")
	require.NoError(t, err)
	defer func() {
		_ = os.RemoveAll(tempDir)
	}()

	instr := metrics.NewTestManager()
	repo := workouts.NewRepo()
	analyzer := workouts.NewAnalyzer(training.Profile{FTP: 250}, instr)

	socketFileName := fmt.Sprintf("%d.sock", os.Getpid())
	addr, err := workouts.RecordingsUnixSocketListenerSetup(ctx, tempDir, socketFileName, analyzer, repo, instr)
	require.NoError(t, err)

	conn, err := net.DialTimeout("unix", addr.String(), 20*time.Second)
	require.NoError(t, err)
	require.NoError(t, conn.SetDeadline(time.Now().Add(2*time.Second)))

	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	recordingJson, err := json.Marshal(workouts.Recording{
		Day:     "2025-03-10",
		Title:   "Morning Ride",
		Samples: steadyRideSamples(start, 61, 200, 150, 85),
	})
	require.NoError(t, err)

	_, err = conn.Write([]byte("definitely not a recording\n"))
	require.NoError(t, err)
	_, err = conn.Write(append(recordingJson, '\n'))
	require.NoError(t, err)

	unixConn, ok := conn.(*net.UnixConn)
	require.True(t, ok)
	require.NoError(t, unixConn.CloseWrite())

	reply, err := io.ReadAll(conn)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(reply))
	require.NoError(t, conn.Close())

	cancel()

	_, err = repo.GetCombined(context.Background(), "2025-03-10", "Morning Ride")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(instr.CounterRecordingsIngested))
}
