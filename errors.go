package pac

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrOutOfRange is matched by every *RangeError returned from Encode.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidCharacter is returned when a geohash holds a symbol outside Alphabet.
	ErrInvalidCharacter = errors.New("invalid geohash character")

	// ErrInvalidCode is returned by helpers that need a successfully decoded code.
	ErrInvalidCode = errors.New("invalid PAC code")
)

// RangeError reports a numeric argument outside its inclusive bounds. It is a
// caller bug rather than bad user input and should not be retried unchanged.
type RangeError struct {
	Param string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	if math.IsInf(e.Max, 1) {
		return fmt.Sprintf("%s must be at least %s, got %s", e.Param, formatBound(e.Min), formatBound(e.Value))
	}
	return fmt.Sprintf("%s must be between %s and %s, got %s", e.Param,
		formatBound(e.Min), formatBound(e.Max), formatBound(e.Value))
}

// Is makes errors.Is(err, ErrOutOfRange) hold for any RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Failure classifies why a code was rejected by Decode or Validate.
type Failure int

const (
	FailureNone       Failure = iota
	FailureEmpty              // blank input
	FailureLength             // too short or too long
	FailureCharacters         // symbols outside Alphabet
	FailureChecksum           // well formed but the check digit does not match
)

var failureNames = [...]string{
	FailureNone:       "none",
	FailureEmpty:      "empty",
	FailureLength:     "length",
	FailureCharacters: "characters",
	FailureChecksum:   "checksum",
}

func (f Failure) String() string {
	if f < 0 || int(f) >= len(failureNames) {
		return "unknown"
	}
	return failureNames[f]
}

// MarshalText lets JSON consumers see the failure name instead of a number.
func (f Failure) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Formatting reports whether the user should correct how the code was typed,
// as opposed to asking the sender for a fresh copy (see Corrupted).
func (f Failure) Formatting() bool {
	return f == FailureEmpty || f == FailureLength || f == FailureCharacters
}

// Corrupted reports whether the code is well formed but fails its checksum.
func (f Failure) Corrupted() bool {
	return f == FailureChecksum
}
