package feed

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/litescript/ls-planetarium/internal/logging"
)

// ReadObservations parses a JSON-lines stream of mount observations. Blank
// lines and lines starting with '#' are skipped.
func ReadObservations(r io.Reader) ([]MountObservation, error) {
	var out []MountObservation
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 || raw[0] == '#' {
			continue
		}
		var o MountObservation
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, o)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read observations: %w", err)
	}
	return out, nil
}

// LoadReplay reads a replay file from disk.
func LoadReplay(path string) ([]MountObservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer f.Close()
	return ReadObservations(f)
}

// Replay feeds observations into m one per interval, looping, until ctx is
// done. An empty list reports a disconnected mount once and returns.
func Replay(ctx context.Context, obs []MountObservation, m *Manager, interval time.Duration, log *logging.Logger) {
	if log == nil {
		log = logging.Discard()
	}
	if len(obs) == 0 {
		m.UpdateMount(MountObservation{})
		return
	}
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	log.Info("mount replay started", "observations", len(obs), "interval", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	i := 0
	for {
		o := obs[i%len(obs)]
		if o.Time.IsZero() {
			o.Time = time.Now()
		}
		m.UpdateMount(o)
		i++

		select {
		case <-ctx.Done():
			log.Debug("mount replay stopped", "sent", i)
			return
		case <-ticker.C:
		}
	}
}
