package pac

import (
	"regexp"
	"strconv"
	"strings"
)

// unitSeparator joins the base code and the unit suffix in canonical output.
const unitSeparator = " / "

// unitPattern matches a floor/apartment suffix such as "F3-A02". It is not
// anchored, so surrounding noise is ignored.
var unitPattern = regexp.MustCompile(`(?i)F(\d+)-A(.+)`)

// Unit identifies a floor and apartment inside the building a code points at.
type Unit struct {
	Floor     int    `json:"floor"`
	Apartment string `json:"apartment"`
}

// String renders the unit in suffix form, e.g. "F3-A02".
func (u Unit) String() string {
	return "F" + strconv.Itoa(u.Floor) + "-A" + u.Apartment
}

// normalizeInternal splits input at the first '/' or '\'. The base keeps only
// Alphabet symbols after upper-casing, so spaces, hyphens and any other noise
// are dropped. The suffix is trimmed and upper-cased but otherwise untouched.
func normalizeInternal(input string) (base, suffix string) {
	head := input
	if i := strings.IndexAny(input, `/\`); i >= 0 {
		head = input[:i]
		suffix = strings.ToUpper(strings.TrimSpace(input[i+1:]))
	}

	head = strings.ToUpper(head)
	var b strings.Builder
	b.Grow(len(head))
	for i := 0; i < len(head); i++ {
		if symbolValue(head[i]) >= 0 {
			b.WriteByte(head[i])
		}
	}
	return b.String(), suffix
}

// formatBase groups a normalized geohash+check string for display. The check
// symbol always stands alone as the last group.
func formatBase(normalized string) string {
	n := len(normalized)
	switch n {
	case 7:
		return normalized[:3] + "-" + normalized[3:6] + "-" + normalized[6:]
	case 9:
		return normalized[:4] + "-" + normalized[4:8] + "-" + normalized[8:]
	case 10:
		return normalized[:4] + "-" + normalized[4:9] + "-" + normalized[9:]
	}

	var b strings.Builder
	b.Grow(n + n/4)
	for i := 0; i < n; i++ {
		if i > 0 && i%4 == 0 && i < n-1 {
			b.WriteByte('-')
		}
		b.WriteByte(normalized[i])
	}
	return b.String()
}

// parseUnit extracts floor and apartment from a suffix. A suffix that does not
// match, or whose floor overflows an int, yields no unit and no error.
func parseUnit(suffix string) (Unit, bool) {
	if strings.TrimSpace(suffix) == "" {
		return Unit{}, false
	}
	m := unitPattern.FindStringSubmatch(suffix)
	if m == nil {
		return Unit{}, false
	}
	floor, err := strconv.Atoi(m[1])
	if err != nil {
		return Unit{}, false
	}
	return Unit{Floor: floor, Apartment: m[2]}, true
}
