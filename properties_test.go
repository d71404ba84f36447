package pac

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"testing"
)

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randomCoord := func() (float64, float64) {
		return rng.Float64()*180 - 90, rng.Float64()*360 - 180
	}

	// ──────────────────────────────────────────────
	// Round-trip: decode(encode(p)) stays within 0.01°
	// ──────────────────────────────────────────────

	t.Run("RoundTripBound", func(t *testing.T) {
		points := [][2]float64{{90, 180}, {-90, -180}, {90, -180}, {-90, 180}, {0, 0}, {-0.0000001, 0.0000001}}
		for i := 0; i < 1000; i++ {
			lat, lon := randomCoord()
			points = append(points, [2]float64{lat, lon})
		}
		for _, p := range points {
			code, err := Encode(p[0], p[1], WithPrecision(8))
			if err != nil {
				t.Fatalf("Encode(%v, %v) error: %v", p[0], p[1], err)
			}
			r := Decode(code)
			if !r.Valid {
				t.Fatalf("Decode(%q) invalid: %s", code, r.Reason)
			}
			if math.Abs(r.Latitude-p[0]) > 0.01 || math.Abs(r.Longitude-p[1]) > 0.01 {
				t.Errorf("round-trip (%v, %v) → %q → (%v, %v), want within 0.01°",
					p[0], p[1], code, r.Latitude, r.Longitude)
			}
			if !r.Cell.Contains(p[0], p[1]) {
				t.Errorf("Decode(%q).Cell = %+v, does not contain (%v, %v)", code, r.Cell, p[0], p[1])
			}
		}
	})

	// ──────────────────────────────────────────────
	// Monotonic precision
	// ──────────────────────────────────────────────

	t.Run("MonotonicPrecision", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			lat, lon := randomCoord()
			prev := 0
			for _, p := range []int{6, 8, 9} {
				code, err := Encode(lat, lon, WithPrecision(p))
				if err != nil {
					t.Fatalf("Encode(%v, %v, %d) error: %v", lat, lon, p, err)
				}
				n := len(strings.ReplaceAll(code, "-", ""))
				if n != p+1 {
					t.Errorf("Encode(%v, %v, %d) = %q, want %d symbols", lat, lon, p, code, p+1)
				}
				if n <= prev {
					t.Errorf("precision %d gave %d symbols, not more than %d", p, n, prev)
				}
				prev = n
			}
		}
	})

	// ──────────────────────────────────────────────
	// Coarser codes are prefixes of finer ones
	// ──────────────────────────────────────────────

	t.Run("GeohashPrefix", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			lat, lon := randomCoord()
			fine := encodeGeohash(lat, lon, MaxPrecision)
			for p := MinPrecision; p < MaxPrecision; p++ {
				if coarse := encodeGeohash(lat, lon, p); !strings.HasPrefix(fine, coarse) {
					t.Errorf("encodeGeohash(%v, %v, %d) = %q, not a prefix of %q", lat, lon, p, coarse, fine)
				}
			}
		}
	})

	// ──────────────────────────────────────────────
	// normalize(normalize(x)) == normalize(x)
	// ──────────────────────────────────────────────

	t.Run("NormalizeIdempotent", func(t *testing.T) {
		inputs := []string{
			"stt3 ewm9 u",
			"STT3-EWM9-U / f3-a02",
			`stt3ewm9u \ f3-a02 / extra`,
			"   /   ",
			"/F1-A2",
			"abc",
			"ſtt3ewm9u",
			"STT3EWM9JK8EBCD",
			"🏠 stt3-ewm9-u",
		}
		for i := 0; i < 200; i++ {
			inputs = append(inputs, randomNoise(rng))
		}
		for _, in := range inputs {
			once := Normalize(in)
			if twice := Normalize(once); twice != once {
				t.Errorf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
			}
		}
	})

	// ──────────────────────────────────────────────
	// Suffix survives encode → decode
	// ──────────────────────────────────────────────

	t.Run("SuffixFidelity", func(t *testing.T) {
		for _, p := range []int{6, 8, 9} {
			lat, lon := randomCoord()
			code, err := Encode(lat, lon, WithPrecision(p), WithFloor(5), WithApartment("12A"))
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			r := Decode(code)
			if !r.Valid || !r.HasUnit() {
				t.Fatalf("Decode(%q) = %+v, want valid with unit", code, r)
			}
			if r.Unit.Floor != 5 || r.Unit.Apartment != "12A" {
				t.Errorf("Decode(%q).Unit = %+v, want floor 5 apartment 12A", code, *r.Unit)
			}
			if r.Precision != p {
				t.Errorf("Decode(%q).Precision = %d, want %d", code, r.Precision, p)
			}
		}
	})

	// ──────────────────────────────────────────────
	// Encode output always validates
	// ──────────────────────────────────────────────

	t.Run("EncodedCodesValidate", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			lat, lon := randomCoord()
			p := MinPrecision + i%(MaxPrecision-MinPrecision+1)
			code, err := Encode(lat, lon, WithPrecision(p))
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			if v := Validate(code); !v.Valid || v.Precision != p {
				t.Errorf("Validate(%q) = %+v, want valid with precision %d", code, v, p)
			}
			if n := Normalize(code); n != code {
				t.Errorf("Normalize(%q) = %q, want unchanged", code, n)
			}
		}
	})
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				lat := float64(g*5) - 40 + float64(i)/1000
				lon := float64(i) - 100
				code, err := Encode(lat, lon)
				if err != nil {
					errs <- err
					return
				}
				if r := Decode(code); !r.Valid {
					errs <- fmt.Errorf("Decode(%q): %s", code, r.Reason)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func randomNoise(rng *rand.Rand) string {
	const pool = "0123456789bcdefghjkmnpqrstuvwxyzAILO -_/\\#.Ü"
	runes := []rune(pool)
	n := rng.Intn(24)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(runes[rng.Intn(len(runes))])
	}
	return b.String()
}

func BenchmarkEncode(b *testing.B) {
	for n := 0; n < b.N; n++ {
		if _, err := Encode(31.2357, 30.0444); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	for n := 0; n < b.N; n++ {
		Decode("STT3-EWM9-U / F3-A02")
	}
}

func BenchmarkValidate(b *testing.B) {
	for n := 0; n < b.N; n++ {
		Validate("stt3 ewm9 u")
	}
}
