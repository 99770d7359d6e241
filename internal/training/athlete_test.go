package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envLookup(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

func TestProfileFromEnv(t *testing.T) {
	profile := ProfileFromEnv(envLookup(map[string]string{
		EnvAthleteFTP:        "285",
		EnvAthleteHRZones:    "110, 130, 150, 170, 190",
		EnvAthletePowerZones: "160,220,260,300,430",
	}))

	assert.Equal(t, 285.0, profile.FTP)
	assert.Equal(t, []float64{110, 130, 150, 170, 190}, profile.HRZoneBounds)
	assert.Equal(t, []float64{160, 220, 260, 300, 430}, profile.PowerZoneBounds)
}

func TestProfileFromEnv_Empty(t *testing.T) {
	profile := ProfileFromEnv(envLookup(nil))
	assert.Zero(t, profile.FTP)
	assert.Nil(t, profile.HRZoneBounds)
	assert.Nil(t, profile.PowerZoneBounds)
}

func TestProfileFromEnv_Malformed(t *testing.T) {
	profile := ProfileFromEnv(envLookup(map[string]string{
		EnvAthleteFTP:        "quite strong",
		EnvAthleteHRZones:    "110,130,150",
		EnvAthletePowerZones: "160,220,uphill,300,430",
	}))

	assert.Zero(t, profile.FTP)
	assert.Nil(t, profile.HRZoneBounds)
	assert.Nil(t, profile.PowerZoneBounds)

	profile = ProfileFromEnv(envLookup(map[string]string{
		EnvAthleteFTP:     "-20",
		EnvAthleteHRZones: "190,170,150,130,110",
	}))
	assert.Zero(t, profile.FTP)
	assert.Nil(t, profile.HRZoneBounds)
}
