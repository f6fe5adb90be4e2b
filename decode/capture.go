package decode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/unihan/codepoint"
)

// flag captures are true if they matched anything, e.g. an asterisk.
var flagCaptures = map[string]bool{
	"frequent":    true,
	"implicit":    true,
	"error":       true,
	"annex":       true,
	"variant":     true,
	"substituted": true,
}

// submatches matches s against re and returns the named groups that took part
// in the match. Groups skipped by an alternative or an optional part are absent.
func submatches(re *regexp.Regexp, s string) (map[string]string, bool) {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil, false
	}
	m := make(map[string]string, len(loc)/2)
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" || loc[2*i] < 0 {
			continue
		}
		m[name] = s[loc[2*i]:loc[2*i+1]]
	}
	return m, true
}

// NormalizeCaptures converts raw named captures to typed values.
//
// Rules by capture name, in priority order:
//
//	virtual              "0"/"1" -> false/true, other digits -> int
//	frequent, implicit,
//	error, annex,
//	variant, substituted "" -> false, anything else -> true
//	simplified_radical   "" -> false, apostrophes -> true
//	primes               number of apostrophes
//	hex_codepoint        U+XXXX -> codepoint.Codepoint
//	jyutpings            comma separated Cantonese readings
//	*_hex                base-16 int, stored without the suffix
//	anything else        int if possible, string otherwise
func (d *Decoder) NormalizeCaptures(raw map[string]string) (Captures, error) {
	caps := make(Captures, len(raw))
	for name, v := range raw {
		key, val, err := d.normalizeCapture(name, v)
		if err != nil {
			return nil, err
		}
		caps[key] = val
	}
	return caps, nil
}

func (d *Decoder) normalizeCapture(name, v string) (string, Value, error) {
	switch {
	case name == "virtual":
		switch v {
		case "0":
			return name, false, nil
		case "1":
			return name, true, nil
		}
		return name, intOrString(v), nil
	case flagCaptures[name]:
		return name, v != "", nil
	case name == "simplified_radical":
		return name, v != "", nil
	case name == "primes":
		return name, strings.Count(v, "'"), nil
	case name == "hex_codepoint":
		cp, err := codepoint.Parse(v)
		if err != nil {
			return name, nil, fmt.Errorf("%w: %w", ErrMismatch, err)
		}
		return name, cp, nil
	case name == "jyutpings":
		return name, d.readings(v), nil
	case strings.HasSuffix(name, "_hex"):
		if n, err := strconv.ParseInt(v, 16, 64); err == nil {
			return strings.TrimSuffix(name, "_hex"), int(n), nil
		}
		return name, v, nil
	}
	return name, intOrString(v), nil
}

// readings decodes comma separated jyutping. Syllables missing from the
// index are kept as strings.
func (d *Decoder) readings(v string) []Value {
	var result []Value
	for _, r := range strings.Split(v, ",") {
		if r = strings.TrimSpace(r); r == "" {
			continue
		}
		s, err := d.jyutping.Lookup(r)
		if err != nil {
			tracer().Debugf("keeping raw reading: %v", err)
			result = append(result, r)
			continue
		}
		result = append(result, s)
	}
	return result
}

func intOrString(v string) Value {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return v
}
