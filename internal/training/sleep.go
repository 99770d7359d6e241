package training

import (
	"math"
	"strings"
)

// StressQualifier is the categorical overnight stress assessment a
// wellness device reports alongside the numeric stress level.
type StressQualifier string

const (
	StressCalm      StressQualifier = "calm"
	StressBalanced  StressQualifier = "balanced"
	StressStressful StressQualifier = "stressful"
	StressUnknown   StressQualifier = "unknown"
)

// ParseStressQualifier normalizes a raw qualifier string, anything
// unrecognized maps to StressUnknown.
func ParseStressQualifier(raw string) StressQualifier {
	q := StressQualifier(strings.ToLower(strings.TrimSpace(raw)))
	switch q {
	case StressCalm, StressBalanced, StressStressful:
		return q
	default:
		return StressUnknown
	}
}

// Canonical sleep metric names, as the wellness sources report them.
const (
	MetricSleepHours      = "Sleep Hours"
	MetricDeepSleep       = "Time In Deep Sleep"
	MetricLightSleep      = "Time In Light Sleep"
	MetricREMSleep        = "Time In REM Sleep"
	MetricAwake           = "Time Awake"
	MetricHRV             = "HRV"
	MetricRestingPulse    = "Resting Pulse"
	MetricStressLevel     = "Stress Level"
	MetricStressQualifier = "Stress Qualifier"
	MetricBodyBattery     = "Body Battery"
)

// SleepNight bundles the metrics of one night. Stage times are in
// minutes. Missing metrics stay zero.
type SleepNight struct {
	SleepHours   float64
	DeepMinutes  float64
	LightMinutes float64
	REMMinutes   float64
	AwakeMinutes float64
	HRV          float64
	RestingPulse float64
	StressLevel  float64
	Stress       StressQualifier
}

// SleepNightFromValues maps named metric values onto a night. Metrics
// absent from the map stay zero, so a night without sleep hours scores
// the floor value.
func SleepNightFromValues(values map[string]float64, stress StressQualifier) SleepNight {
	return SleepNight{
		SleepHours:   values[MetricSleepHours],
		DeepMinutes:  values[MetricDeepSleep],
		LightMinutes: values[MetricLightSleep],
		REMMinutes:   values[MetricREMSleep],
		AwakeMinutes: values[MetricAwake],
		HRV:          values[MetricHRV],
		RestingPulse: values[MetricRestingPulse],
		StressLevel:  values[MetricStressLevel],
		Stress:       stress,
	}
}

// Composite score weights, must sum to 1.
const (
	weightDuration   = 0.30
	weightDeepSleep  = 0.25
	weightREMSleep   = 0.20
	weightEfficiency = 0.15
	weightRecovery   = 0.10
)

// Ideal share of deep and REM sleep, in percent of total sleep.
const (
	idealStageShareLow  = 20.0
	idealStageShareHigh = 25.0
)

// Score grades the night on a 1 to 5 scale as a weighted composite of
// duration, stage shares, efficiency and overnight recovery. A night
// without any recorded sleep scores exactly 1.
func (n SleepNight) Score() float64 {
	totalSleepMinutes := n.SleepHours * 60
	if totalSleepMinutes <= 0 {
		return 1.0
	}

	deepPct := n.DeepMinutes / totalSleepMinutes * 100
	remPct := n.REMMinutes / totalSleepMinutes * 100
	awakePct := n.AwakeMinutes / totalSleepMinutes * 100

	score := durationScore(n.SleepHours)*weightDuration +
		stageShareScore(deepPct)*weightDeepSleep +
		stageShareScore(remPct)*weightREMSleep +
		efficiencyScore(awakePct)*weightEfficiency +
		recoveryScore(n.HRV, n.RestingPulse, n.Stress)*weightRecovery

	return round2(clamp(score, 1, 5))
}

func durationScore(hours float64) float64 {
	switch {
	case hours >= 7 && hours <= 9:
		return 5
	case hours >= 6 && hours < 7:
		return 4
	case hours >= 5 && hours < 6:
		return 3
	case hours >= 4 && hours < 5:
		return 2
	default:
		return 1
	}
}

// stageShareScore grades how close a stage share sits to the ideal
// band. Each step away from the band, in fifths of the band width,
// costs one point.
func stageShareScore(pct float64) float64 {
	var deviation float64
	switch {
	case pct < idealStageShareLow:
		deviation = idealStageShareLow - pct
	case pct > idealStageShareHigh:
		deviation = pct - idealStageShareHigh
	}

	bandWidth := idealStageShareHigh - idealStageShareLow
	switch {
	case deviation <= 0.2*bandWidth:
		return 5
	case deviation <= 0.4*bandWidth:
		return 4
	case deviation <= 0.6*bandWidth:
		return 3
	case deviation <= 0.8*bandWidth:
		return 2
	default:
		return 1
	}
}

func efficiencyScore(awakePct float64) float64 {
	return 5 - math.Min(5, awakePct/10)
}

func recoveryScore(hrv, restingPulse float64, stress StressQualifier) float64 {
	score := 3.0
	score += math.Min(1.0, hrv/100)
	score -= math.Min(1.0, (restingPulse-40)/100)

	switch stress {
	case StressCalm:
		score += 0.5
	case StressStressful:
		score -= 0.5
	}

	return clamp(score, 1, 5)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
