package pac

import (
	"fmt"
	"math"
)

// bitsPerSymbol is the number of interleaved bits packed into one alphabet symbol.
const bitsPerSymbol = 5

// Cell is the rectangle left over after bisecting the coordinate space
// once per geohash bit. The decoded coordinate of a code is its center.
type Cell struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// Center returns the midpoint of the cell as (latitude, longitude).
func (c Cell) Center() (float64, float64) {
	return (c.MinLat + c.MaxLat) / 2, (c.MinLon + c.MaxLon) / 2
}

// Contains reports whether the coordinate lies inside the cell, bounds included.
func (c Cell) Contains(lat, lon float64) bool {
	return lat >= c.MinLat && lat <= c.MaxLat && lon >= c.MinLon && lon <= c.MaxLon
}

// worldCell is the starting range for both directions of the bisection.
func worldCell() Cell {
	return Cell{MinLat: -90, MaxLat: 90, MinLon: -180, MaxLon: 180}
}

// encodeGeohash bisects the world precision*5 times, longitude first, and
// packs each group of five bits (MSB first) into one alphabet symbol.
//
// A coordinate sitting exactly on a midpoint goes to the lower half: the
// comparison is strictly greater-than. The caller is responsible for passing
// in-range coordinates.
func encodeGeohash(lat, lon float64, precision int) string {
	cell := worldCell()
	hash := make([]byte, 0, precision)

	even := true
	bit, symbol := 0, 0
	for len(hash) < precision {
		if even {
			mid := (cell.MinLon + cell.MaxLon) / 2
			if lon > mid {
				symbol |= 1 << (bitsPerSymbol - 1 - bit)
				cell.MinLon = mid
			} else {
				cell.MaxLon = mid
			}
		} else {
			mid := (cell.MinLat + cell.MaxLat) / 2
			if lat > mid {
				symbol |= 1 << (bitsPerSymbol - 1 - bit)
				cell.MinLat = mid
			} else {
				cell.MaxLat = mid
			}
		}
		even = !even

		bit++
		if bit == bitsPerSymbol {
			hash = append(hash, Alphabet[symbol])
			bit, symbol = 0, 0
		}
	}
	return string(hash)
}

// decodeGeohash replays the bisection recorded in hash and returns the final cell.
// Codec callers only hand it alphabet-filtered input; the character check guards
// direct use.
func decodeGeohash(hash string) (Cell, error) {
	cell := worldCell()
	even := true
	for i := 0; i < len(hash); i++ {
		value := symbolValue(hash[i])
		if value < 0 {
			return Cell{}, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, hash[i], i)
		}
		for shift := bitsPerSymbol - 1; shift >= 0; shift-- {
			set := (value>>shift)&1 == 1
			if even {
				mid := (cell.MinLon + cell.MaxLon) / 2
				if set {
					cell.MinLon = mid
				} else {
					cell.MaxLon = mid
				}
			} else {
				mid := (cell.MinLat + cell.MaxLat) / 2
				if set {
					cell.MinLat = mid
				} else {
					cell.MaxLat = mid
				}
			}
			even = !even
		}
	}
	return cell, nil
}

// CellSize returns the latitude and longitude span, in degrees, of a cell at
// the given precision. Longitude receives the extra bit when the total is odd.
func CellSize(precision int) (float64, float64, error) {
	if err := checkPrecision(precision); err != nil {
		return 0, 0, err
	}
	total := precision * bitsPerSymbol
	lonBits := (total + 1) / 2
	latBits := total / 2
	return 180 / math.Exp2(float64(latBits)), 360 / math.Exp2(float64(lonBits)), nil
}
