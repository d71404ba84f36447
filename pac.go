// Package pac converts geographic coordinates into Personal Address Codes and back.
//
// A PAC is a base-32 geohash followed by a Luhn-style check symbol, grouped
// with hyphens for display, optionally followed by a floor/apartment suffix:
//
//	code, err := pac.Encode(31.2357, 30.0444, pac.WithUnit(3, "02"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res := pac.Decode(code) // code is "STT3-EWM9-U / F3-A02"
//	if !res.Valid {
//	    fmt.Println(res.Reason)
//	}
//
// All functions are pure and safe for concurrent use.
package pac

import (
	"fmt"
	"math"
	"strings"
)

// Precision is the geohash length of a code, not counting the check symbol.
// Precision 8 resolves to about 19 m and 9 to a few metres.
const (
	MinPrecision     = 6
	MaxPrecision     = 9
	DefaultPrecision = 8

	minCodeLen = MinPrecision + 1
	maxCodeLen = MaxPrecision + 1
)

// Reasons returned to the user in DecodeResult and ValidateResult.
const (
	reasonEmpty           = "PAC code cannot be empty"
	reasonInvalidChars    = "PAC code contains invalid characters"
	reasonChecksum        = "invalid check digit"
	reasonChecksumCorrupt = "invalid check digit, PAC code may be corrupted"
)

var (
	reasonTooShort  = fmt.Sprintf("PAC code too short (minimum %d characters)", minCodeLen)
	reasonBadLength = fmt.Sprintf("invalid PAC length (expected %d to %d characters)", minCodeLen, maxCodeLen)
)

// encodeConfig holds the optional arguments of Encode.
type encodeConfig struct {
	precision int
	floor     int
	hasFloor  bool
	apartment string
}

// Option is a functional option for Encode.
type Option func(*encodeConfig)

// WithPrecision sets the geohash length, between MinPrecision and MaxPrecision.
func WithPrecision(precision int) Option {
	return func(c *encodeConfig) {
		c.precision = precision
	}
}

// WithFloor sets the floor of the unit suffix. Without a non-blank apartment
// the suffix is omitted.
func WithFloor(floor int) Option {
	return func(c *encodeConfig) {
		c.floor = floor
		c.hasFloor = true
	}
}

// WithApartment sets the apartment of the unit suffix. Without a floor the
// suffix is omitted.
func WithApartment(apartment string) Option {
	return func(c *encodeConfig) {
		c.apartment = apartment
	}
}

// WithUnit sets both halves of the unit suffix.
func WithUnit(floor int, apartment string) Option {
	return func(c *encodeConfig) {
		WithFloor(floor)(c)
		WithApartment(apartment)(c)
	}
}

func defaultEncodeConfig() *encodeConfig {
	return &encodeConfig{precision: DefaultPrecision}
}

// DecodeResult is the outcome of Decode. Coordinates, Cell and Precision are
// only meaningful when Valid is true; otherwise Reason says why.
type DecodeResult struct {
	Valid     bool    `json:"valid"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Precision int     `json:"precision,omitempty"`
	Cell      Cell    `json:"cell,omitzero"`

	// Unit is set when the suffix parsed as F<floor>-A<apartment>.
	Unit *Unit `json:"unit,omitempty"`
	// Suffix is the upper-cased text after the delimiter, parsed or not.
	Suffix string `json:"suffix,omitempty"`

	Failure Failure `json:"failure,omitempty"`
	Reason  string  `json:"reason,omitempty"`
}

// HasUnit reports whether the code carried a well-formed floor/apartment suffix.
func (r DecodeResult) HasUnit() bool {
	return r.Unit != nil
}

// ValidateResult is the outcome of Validate.
type ValidateResult struct {
	Valid     bool    `json:"valid"`
	Precision int     `json:"precision,omitempty"`
	Failure   Failure `json:"failure,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

// Encode turns a coordinate into a formatted PAC code.
//
// It returns a *RangeError (matching ErrOutOfRange) when latitude, longitude,
// precision or floor is outside its bounds.
func Encode(lat, lon float64, opts ...Option) (string, error) {
	cfg := defaultEncodeConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := checkCoordinate(lat, lon); err != nil {
		return "", err
	}
	if err := checkPrecision(cfg.precision); err != nil {
		return "", err
	}
	if cfg.hasFloor && cfg.floor < 0 {
		return "", &RangeError{Param: "floor", Value: float64(cfg.floor), Min: 0, Max: math.Inf(1)}
	}

	hash := encodeGeohash(lat, lon, cfg.precision)
	code := formatBase(hash + string(checkDigit(hash)))

	apartment := strings.TrimSpace(cfg.apartment)
	if cfg.hasFloor && apartment != "" {
		code += unitSeparator + Unit{Floor: cfg.floor, Apartment: apartment}.String()
	}
	return code, nil
}

// Decode parses a PAC code in any reasonable formatting and returns the center
// of the cell it names. The result is invalid when the code is blank, too short
// or fails its checksum. Codes longer than MaxPrecision+1 are still decoded.
func Decode(code string) DecodeResult {
	if strings.TrimSpace(code) == "" {
		return DecodeResult{Failure: FailureEmpty, Reason: reasonEmpty}
	}

	base, suffix := normalizeInternal(code)
	if len(base) < minCodeLen {
		return DecodeResult{Failure: FailureLength, Reason: reasonTooShort}
	}

	hash, check := base[:len(base)-1], base[len(base)-1]
	if checkDigit(hash) != check {
		return DecodeResult{Failure: FailureChecksum, Reason: reasonChecksumCorrupt}
	}

	cell, err := decodeGeohash(hash)
	if err != nil {
		return DecodeResult{Failure: FailureCharacters, Reason: err.Error()}
	}

	lat, lon := cell.Center()
	res := DecodeResult{
		Valid:     true,
		Latitude:  lat,
		Longitude: lon,
		Precision: len(hash),
		Cell:      cell,
		Suffix:    suffix,
	}
	if unit, ok := parseUnit(suffix); ok {
		res.Unit = &unit
	}
	return res
}

// Validate checks a PAC code without decoding it. Unlike Decode it also
// rejects codes longer than MaxPrecision+1.
func Validate(code string) ValidateResult {
	if strings.TrimSpace(code) == "" {
		return ValidateResult{Failure: FailureEmpty, Reason: reasonEmpty}
	}

	base, _ := normalizeInternal(code)
	if len(base) < minCodeLen || len(base) > maxCodeLen {
		return ValidateResult{Failure: FailureLength, Reason: reasonBadLength}
	}
	if !isAlphabet(base) {
		return ValidateResult{Failure: FailureCharacters, Reason: reasonInvalidChars}
	}

	hash, check := base[:len(base)-1], base[len(base)-1]
	if checkDigit(hash) != check {
		return ValidateResult{Failure: FailureChecksum, Reason: reasonChecksum}
	}
	return ValidateResult{Valid: true, Precision: len(hash)}
}

// Normalize reformats a code into canonical display form. It does not verify
// the checksum, so a corrupted code comes back well formatted but still invalid.
func Normalize(code string) string {
	base, suffix := normalizeInternal(code)
	formatted := formatBase(base)
	if suffix != "" {
		return formatted + unitSeparator + suffix
	}
	return formatted
}

func checkCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return &RangeError{Param: "latitude", Value: lat, Min: -90, Max: 90}
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return &RangeError{Param: "longitude", Value: lon, Min: -180, Max: 180}
	}
	return nil
}

func checkPrecision(precision int) error {
	if precision < MinPrecision || precision > MaxPrecision {
		return &RangeError{Param: "precision", Value: float64(precision), Min: MinPrecision, Max: MaxPrecision}
	}
	return nil
}
