package units

import (
	"fmt"
	"math/big"
	"time"
)

// Timestamp is an absolute instant paired with a fixed UTC offset.
type Timestamp struct {
	Instant time.Time
	// OffsetSeconds is the fixed UTC offset carried alongside the instant,
	// independent of whatever offset the host's time.Time may report.
	OffsetSeconds int
}

// String renders t using its fixed offset, RFC 3339 style.
func (t Timestamp) String() string {
	loc := time.FixedZone(offsetName(t.OffsetSeconds), t.OffsetSeconds)
	return t.Instant.In(loc).Format("2006-01-02T15:04:05-07:00")
}

func offsetName(seconds int) string {
	if seconds == 0 {
		return "UTC"
	}
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}

// DateBridge resolves "now", decodes date literals against a set of
// configured patterns, and converts between a dimensioned number of
// seconds and a Go duration. It is an interface rather than a
// hard-coded implementation so an Environment can swap in its own
// clock or pattern set for testing.
type DateBridge interface {
	Now() Timestamp
	Decode(raw string, patterns []string) (Timestamp, error)
	ToDuration(n Number) (time.Duration, error)
	FromDuration(d time.Duration) Number
}

// secondUnitVector is the unit vector a dimensioned number must carry to
// be interpreted as a duration in seconds by ToDuration.
var secondUnitVector = Singleton("s", 1)

// systemDateBridge is the default DateBridge, backed by time.Time and
// time.Duration. Decode tries the caller's patterns as time.Parse layouts,
// or three built-in layouts when none are given.
type systemDateBridge struct{}

// DefaultDateBridge is the DateBridge used when an Environment is not
// given an explicit one.
var DefaultDateBridge DateBridge = systemDateBridge{}

func (systemDateBridge) Now() Timestamp {
	now := time.Now()
	_, offset := now.Zone()
	return Timestamp{Instant: now, OffsetSeconds: offset}
}

func (systemDateBridge) Decode(raw string, patterns []string) (Timestamp, error) {
	layouts := patterns
	if len(layouts) == 0 {
		layouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"}
	}
	var lastErr error
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			_, offset := t.Zone()
			return Timestamp{Instant: t, OffsetSeconds: offset}, nil
		} else {
			lastErr = err
		}
	}
	return Timestamp{}, fmt.Errorf("could not decode date %q: %w", raw, lastErr)
}

func (systemDateBridge) ToDuration(n Number) (time.Duration, error) {
	if !n.Units.Equal(secondUnitVector) {
		return 0, fmt.Errorf("Not a number: duration must be in units of time")
	}
	seconds := new(big.Rat).Mul(n.Mag, big.NewRat(int64(time.Second), 1))
	f, _ := seconds.Float64()
	return time.Duration(f), nil
}

func (systemDateBridge) FromDuration(d time.Duration) Number {
	r := big.NewRat(int64(d), int64(time.Second))
	return NewNumber(r, secondUnitVector)
}
