package nmea

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Fix is one simulated receiver reading. Optional fields are pointers
// (or empty strings) so that "unset" renders as an empty NMEA field
// rather than a zero.
//
// Fields mirror the GGA sentence layout:
//
//	0: talker+type
//	1: UTC time (hhmmss.ss)
//	2: latitude (ddmm.mmmmmm)
//	3: N/S
//	4: longitude (dddmm.mmmmmm)
//	5: E/W
//	6: fix quality (0-8)
//	7: number of satellites
//	8: HDOP
//	9: altitude + 10: unit (M)
//	11: geoid separation + 12: unit (M)
//	13: DGPS age, 14: DGPS station id
type Fix struct {
	// Talker is the two-letter sentence source prefix ("GP", "GN", ...).
	// Empty renders as the default "GP".
	Talker string

	// Time is the UTC time of the fix; the zero value means "use the
	// wall clock at render time". TimeText, when non-empty, is an
	// already-formatted time field passed through verbatim and takes
	// precedence over Time.
	Time     time.Time
	TimeText string

	// Lat and Lon are decimal degrees, sign encoding hemisphere.
	// Nil renders the position fields empty.
	Lat *float64
	Lon *float64

	Quality int
	NumSats int

	HDOP      *float64
	AltM      *float64
	GeoidSepM *float64
	DGPSAge   *float64
	StationID string
}

// NewFix returns a Fix with the default GPS talker and everything else
// unset.
func NewFix() *Fix {
	return &Fix{Talker: "GP"}
}

// MoveTo sets the position in decimal degrees.
func (f *Fix) MoveTo(latDeg, lonDeg float64) {
	f.Lat = &latDeg
	f.Lon = &lonDeg
}

// Sentence renders the fix as a complete GGA sentence: leading '$',
// 15 comma-separated payload fields, '*' and the two-digit checksum.
// The field and comma count is invariant; unset optional fields render
// as empty strings between commas.
func (f *Fix) Sentence() string {
	talker := f.Talker
	if talker == "" {
		talker = "GP"
	}

	latField, ns := encodeLatitude(f.Lat)
	lonField, ew := encodeLongitude(f.Lon)

	fields := []string{
		talker + "GGA",
		f.timeField(),
		latField, ns,
		lonField, ew,
		strconv.Itoa(f.Quality),
		fmt.Sprintf("%02d", f.NumSats),
		optFloat(f.HDOP),
		optFloat(f.AltM), "M",
		optFloat(f.GeoidSepM), "M",
		optFloat(f.DGPSAge),
		f.StationID,
	}

	payload := strings.Join(fields, ",")
	return "$" + payload + "*" + Checksum(payload)
}

func (f *Fix) timeField() string {
	if f.TimeText != "" {
		return f.TimeText
	}
	t := f.Time
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return formatTimeOfDay(t)
}

// formatTimeOfDay renders hhmmss.ss with two fractional digits.
func formatTimeOfDay(t time.Time) string {
	return fmt.Sprintf("%02d%02d%02d.%02d",
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1e7)
}

// encodeLatitude converts decimal degrees to the NMEA ddmm.mmmmmm field
// plus its hemisphere letter. Nil yields two empty strings.
func encodeLatitude(lat *float64) (field, hemi string) {
	if lat == nil {
		return "", ""
	}
	hemi = "N"
	if *lat < 0 {
		hemi = "S"
	}
	return encodeDegMin(math.Abs(*lat), 2), hemi
}

// encodeLongitude is encodeLatitude with E/W and three degree digits.
func encodeLongitude(lon *float64) (field, hemi string) {
	if lon == nil {
		return "", ""
	}
	hemi = "E"
	if *lon < 0 {
		hemi = "W"
	}
	return encodeDegMin(math.Abs(*lon), 3), hemi
}

// encodeDegMin renders |v| degrees as zero-padded whole degrees
// (degDigits wide) followed by minutes in fixed 09.6f width, so the
// minutes part is always "mm.mmmmmm".
func encodeDegMin(v float64, degDigits int) string {
	deg := math.Floor(v)
	min := (v - deg) * 60
	return fmt.Sprintf("%0*d%09.6f", degDigits, int(deg), min)
}

func optFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Checksum computes the NMEA checksum of a sentence or payload: the
// XOR of every byte between (but excluding) a leading '$' and a '*'
// delimiter, rendered as exactly two uppercase hex digits.
func Checksum(s string) string {
	s = strings.TrimPrefix(s, "$")
	if i := strings.IndexByte(s, '*'); i >= 0 {
		s = s[:i]
	}
	var ck byte
	for i := 0; i < len(s); i++ {
		ck ^= s[i]
	}
	return fmt.Sprintf("%02X", ck)
}
