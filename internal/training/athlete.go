package training

import (
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	EnvAthleteFTP        = "ATHLETE_FTP"
	EnvAthleteHRZones    = "ATHLETE_HR_ZONES"
	EnvAthletePowerZones = "ATHLETE_POWER_ZONES"
)

// Profile holds the athlete settings all metric calculations run
// against. The zero value is usable: FTP gets estimated per workout and
// zone bounds fall back to the defaults.
type Profile struct {
	// FTP in watts, 0 means not configured.
	FTP float64
	// MaxHeartRate in bpm, 0 means not configured.
	MaxHeartRate float64
	// Absolute zone bounds, nil means defaults.
	HRZoneBounds    []float64
	PowerZoneBounds []float64
}

// ProfileFromEnv resolves the athlete profile from environment
// variables via the given lookup. Malformed values are logged and
// skipped, they never fail the startup.
func ProfileFromEnv(lookup func(string) string) Profile {
	var p Profile

	if raw := lookup(EnvAthleteFTP); raw != "" {
		ftp, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || ftp <= 0 {
			log.Warnf("athlete profile: ignoring invalid %s value %q", EnvAthleteFTP, raw)
		} else {
			p.FTP = ftp
		}
	}

	p.HRZoneBounds = zoneBoundsFromEnv(lookup, EnvAthleteHRZones)
	p.PowerZoneBounds = zoneBoundsFromEnv(lookup, EnvAthletePowerZones)

	return p
}

func zoneBoundsFromEnv(lookup func(string) string, envVar string) []float64 {
	raw := lookup(envVar)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	bounds := make([]float64, 0, len(parts))
	for _, part := range parts {
		b, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			log.Warnf("athlete profile: ignoring malformed %s value %q", envVar, raw)
			return nil
		}
		bounds = append(bounds, b)
	}

	if !ValidZoneBounds(bounds) {
		log.Warnf(
			"athlete profile: ignoring %s value %q, need %d ascending positive bounds",
			envVar, raw, ZoneCount,
		)
		return nil
	}

	return bounds
}
