package training

// ZoneCount is fixed: all distributions cover exactly five zones.
const ZoneCount = 5

var hrZoneNames = [ZoneCount]string{
	"Zone 1 (Recovery)",
	"Zone 2 (Endurance)",
	"Zone 3 (Tempo)",
	"Zone 4 (Threshold)",
	"Zone 5 (Maximum)",
}

var powerZoneNames = [ZoneCount]string{
	"Zone 1 (Recovery)",
	"Zone 2 (Endurance)",
	"Zone 3 (Tempo)",
	"Zone 4 (Threshold)",
	"Zone 5 (VO2 Max)",
}

// HRZoneNames returns the display names of the five heart rate zones.
func HRZoneNames() [ZoneCount]string { return hrZoneNames }

// PowerZoneNames returns the display names of the five power zones.
func PowerZoneNames() [ZoneCount]string { return powerZoneNames }

// Upper zone bounds as fractions of the athlete reference value
// (max heart rate, respectively FTP).
var (
	defaultHRZoneFractions    = [ZoneCount]float64{0.60, 0.70, 0.80, 0.90, 1.00}
	defaultPowerZoneFractions = [ZoneCount]float64{0.55, 0.75, 0.90, 1.05, 1.50}
)

// ZoneBoundarySet holds five ascending upper bounds in absolute units.
// The last bound is a nominal ceiling only: the top zone is open-ended,
// so no sample can ever fall outside the distribution.
type ZoneBoundarySet struct {
	names  [ZoneCount]string
	bounds [ZoneCount]float64
}

// HRZones builds heart rate zones around the given max heart rate.
// A valid override (five ascending positive bounds, absolute bpm)
// replaces the defaults, anything else falls back to them.
func HRZones(maxHeartRate float64, override []float64) ZoneBoundarySet {
	return newBoundarySet(hrZoneNames, defaultHRZoneFractions, maxHeartRate, override)
}

// PowerZones builds power zones around the given FTP.
func PowerZones(ftp float64, override []float64) ZoneBoundarySet {
	return newBoundarySet(powerZoneNames, defaultPowerZoneFractions, ftp, override)
}

func newBoundarySet(
	names [ZoneCount]string,
	fractions [ZoneCount]float64,
	reference float64,
	override []float64,
) ZoneBoundarySet {
	set := ZoneBoundarySet{names: names}
	if ValidZoneBounds(override) {
		copy(set.bounds[:], override)
		return set
	}
	for i, f := range fractions {
		set.bounds[i] = f * reference
	}
	return set
}

// ValidZoneBounds reports whether bounds can serve as a zone override:
// exactly five strictly ascending positive values.
func ValidZoneBounds(bounds []float64) bool {
	if len(bounds) != ZoneCount {
		return false
	}
	prev := 0.0
	for _, b := range bounds {
		if b <= prev {
			return false
		}
		prev = b
	}
	return true
}

// Bucket returns the zone index for a value: the first of the lower four
// bounds the value does not exceed, or the open-ended top zone.
func (z ZoneBoundarySet) Bucket(v float64) int {
	for i := 0; i < ZoneCount-1; i++ {
		if v <= z.bounds[i] {
			return i
		}
	}
	return ZoneCount - 1
}

// Distribution buckets the values and returns the share of each zone in
// percent. All five zone names are always present as keys.
func (z ZoneBoundarySet) Distribution(values []float64) map[string]float64 {
	counts := [ZoneCount]int{}
	for _, v := range values {
		counts[z.Bucket(v)]++
	}

	dist := make(map[string]float64, ZoneCount)
	for i, name := range z.names {
		if len(values) == 0 {
			dist[name] = 0
			continue
		}
		dist[name] = float64(counts[i]) / float64(len(values)) * 100
	}
	return dist
}
