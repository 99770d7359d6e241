package workouts

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainmetrics/internal/telemetry/metrics"
)

type analysisSaver interface {
	SaveAnalysis(ctx context.Context, analysis Analysis) error
}

// RecordingsUnixSocketListenerSetup starts the local ingest channel of
// the decoder agent. One connection per push: newline separated
// recording JSON, the write side closed by the agent when done, a
// single "ok" sent back after all recordings got stored.
func RecordingsUnixSocketListenerSetup(
	ctx context.Context,
	socketAddrDir, socketFileName string,
	analyzer *Analyzer,
	repo analysisSaver,
	instr *metrics.Manager,
) (net.Addr, error) {
	socket := filepath.Join(socketAddrDir, socketFileName)
	listener, err := net.Listen("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("binding to unix socket %s: %w", socket, err)
	}

	if err := os.Chmod(socket, os.ModeSocket|0666); err != nil {
		return nil, err
	}

	go func() {
		go func() {
			<-ctx.Done()
			log.Debugln("recordings unix socket listener context done, closing listener")
			_ = listener.Close()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			default:
				// Otherwise, continue accepting new connections.
			}

			conn, err := listener.Accept()
			if err != nil {
				log.Errorf("recordings unix socket listener conn accept: %s", err)
				return
			}
			log.Debugf("recordings unix socket got new conn: %s", conn.RemoteAddr().String())

			// if pushing all decoded recordings takes over 5 minutes, then something is probably not right
			if err := conn.SetDeadline(time.Now().Add(5 * time.Minute)); err != nil {
				log.Errorf("failed to set conn timeout: %s", err)
				return
			}

			go handleRecordingsConn(ctx, conn, analyzer, repo, instr)
		}
	}()

	return listener.Addr(), nil
}

func handleRecordingsConn(
	ctx context.Context,
	conn net.Conn,
	analyzer *Analyzer,
	repo analysisSaver,
	instr *metrics.Manager,
) {
	defer func() { _ = conn.Close() }()

	stored := 0
	scanner := bufio.NewScanner(conn)
	// a long recording is a few hundred KB of JSON per line
	scanner.Buffer(make([]byte, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var recording Recording
		if err := json.Unmarshal(line, &recording); err != nil {
			log.Errorf("recordings conn, invalid recording received: %s", err)
			continue
		}

		instr.CounterRecordingsIngested.Inc()

		analysis, err := analyzer.Analyze(ctx, recording)
		if err != nil {
			log.Errorf("recordings conn, analyze recording [%s] [%s]: %s", recording.Day, recording.Title, err)
			continue
		}
		if err := repo.SaveAnalysis(ctx, *analysis); err != nil {
			log.Errorf("recordings conn, save analysis [%s] [%s]: %s", analysis.Day, analysis.Title, err)
			continue
		}

		stored++
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("recordings conn, read: %s", err)
		return
	}

	log.Infof("recordings unix socket stored %d recordings", stored)

	if _, err := conn.Write([]byte("ok")); err != nil {
		log.Errorf("recordings conn, send response: %s", err)
	}
}
