package nmea

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation failure categories. ValidateGGA wraps these, so callers
// classify rejections with errors.Is and recover field detail with
// errors.As on *FieldError.
var (
	// ErrFormat covers structural malformation found before any
	// field-level parsing: missing '$', missing or duplicated '*'.
	ErrFormat = errors.New("nmea: malformed sentence")
	// ErrChecksum is an integrity failure: the transmitted checksum
	// does not match the recomputed one.
	ErrChecksum = errors.New("nmea: checksum mismatch")
	// ErrStructure is a wrong payload field count.
	ErrStructure = errors.New("nmea: wrong field count")
	// ErrSentenceType means the sentence is well-formed but not GGA.
	ErrSentenceType = errors.New("nmea: not a GGA sentence")
	// ErrData means a specific field fails its grammar.
	ErrData = errors.New("nmea: bad field")
)

// FieldError reports which GGA field failed its grammar and the
// offending value. It unwraps to ErrData.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("nmea: bad %s %q", e.Field, e.Value)
}

func (e *FieldError) Unwrap() error { return ErrData }

var (
	timeRe     = regexp.MustCompile(`^\d{6}(\.\d+)?$`)
	latRe      = regexp.MustCompile(`^\d{4}\.\d+$`)
	lonRe      = regexp.MustCompile(`^\d{5}\.\d+$`)
	qualityRe  = regexp.MustCompile(`^[0-8]$`)
	digitsRe   = regexp.MustCompile(`^\d+$`)
	unsignedRe = regexp.MustCompile(`^\d+(\.\d+)?$`)
	signedRe   = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// ValidateGGA checks that sentence conforms to the GGA grammar and
// returns nil if it does. Checks run in a fixed order — framing,
// checksum, field count, sentence type, then per-field grammar — and
// the first failure wins. The function is pure: it never logs and never
// panics; the caller decides how to report a rejection.
func ValidateGGA(sentence string) error {
	sentence = strings.TrimSpace(sentence)

	if !strings.HasPrefix(sentence, "$") {
		return fmt.Errorf("%w: missing leading '$'", ErrFormat)
	}
	if strings.Count(sentence, "*") != 1 {
		return fmt.Errorf("%w: missing or duplicated checksum delimiter '*'", ErrFormat)
	}

	star := strings.IndexByte(sentence, '*')
	payload, provided := sentence[:star], sentence[star+1:]
	if want := Checksum(payload); !strings.EqualFold(want, provided) {
		return fmt.Errorf("%w: calculated %q, provided %q", ErrChecksum, want, provided)
	}

	fields := strings.Split(strings.TrimPrefix(payload, "$"), ",")
	if len(fields) != 15 {
		return fmt.Errorf("%w: expected 15 fields, found %d", ErrStructure, len(fields))
	}

	if !strings.HasSuffix(fields[0], "GGA") {
		return fmt.Errorf("%w: sentence id %q", ErrSentenceType, fields[0])
	}

	if fields[1] != "" && !timeRe.MatchString(fields[1]) {
		return &FieldError{Field: "UTC time", Value: fields[1]}
	}
	if fields[2] != "" && !latRe.MatchString(fields[2]) {
		return &FieldError{Field: "latitude", Value: fields[2]}
	}
	if fields[3] != "" && fields[3] != "N" && fields[3] != "S" {
		return &FieldError{Field: "latitude hemisphere", Value: fields[3]}
	}
	if fields[4] != "" && !lonRe.MatchString(fields[4]) {
		return &FieldError{Field: "longitude", Value: fields[4]}
	}
	if fields[5] != "" && fields[5] != "E" && fields[5] != "W" {
		return &FieldError{Field: "longitude hemisphere", Value: fields[5]}
	}
	if !qualityRe.MatchString(fields[6]) {
		return &FieldError{Field: "fix quality", Value: fields[6]}
	}
	if fields[7] != "" && !digitsRe.MatchString(fields[7]) {
		return &FieldError{Field: "satellite count", Value: fields[7]}
	}
	if fields[8] != "" && !unsignedRe.MatchString(fields[8]) {
		return &FieldError{Field: "HDOP", Value: fields[8]}
	}
	if fields[9] != "" {
		if !signedRe.MatchString(fields[9]) {
			return &FieldError{Field: "altitude", Value: fields[9]}
		}
		if fields[10] != "M" {
			return &FieldError{Field: "altitude unit", Value: fields[10]}
		}
	}
	if fields[11] != "" {
		if !signedRe.MatchString(fields[11]) {
			return &FieldError{Field: "geoid separation", Value: fields[11]}
		}
		if fields[12] != "M" {
			return &FieldError{Field: "geoid separation unit", Value: fields[12]}
		}
	}
	if fields[13] != "" && !unsignedRe.MatchString(fields[13]) {
		return &FieldError{Field: "DGPS age", Value: fields[13]}
	}
	if fields[14] != "" && !digitsRe.MatchString(fields[14]) {
		return &FieldError{Field: "DGPS station id", Value: fields[14]}
	}

	return nil
}
