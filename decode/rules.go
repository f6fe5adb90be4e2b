package decode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/unihan/codepoint"
)

func mismatch(raw, expected string) error {
	return fmt.Errorf("%w: %q is not %s", ErrMismatch, raw, expected)
}

// passThrough keeps the raw value.
var passThrough = RuleFunc(func(_ *Decoder, raw string) (Value, error) {
	return raw, nil
})

// Numbers in the dictionary and encoding fields are unsigned.
var decimal = RuleFunc(func(_ *Decoder, raw string) (Value, error) {
	n, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return nil, mismatch(raw, "a decimal number")
	}
	return int(n), nil
})

var hexadecimal = RuleFunc(func(_ *Decoder, raw string) (Value, error) {
	n, err := strconv.ParseUint(raw, 16, 63)
	if err != nil {
		return nil, mismatch(raw, "a hexadecimal number")
	}
	return int(n), nil
})

var codepointRef = RuleFunc(func(_ *Decoder, raw string) (Value, error) {
	cp, err := codepoint.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMismatch, err)
	}
	return cp, nil
})

// --- Composite values ------------------------------------------------------

// patternRule matches a value against a fixed micro-grammar with named groups.
type patternRule struct {
	re *regexp.Regexp
}

func pattern(expr string) patternRule {
	return patternRule{re: regexp.MustCompile(`^(?:` + expr + `)$`)}
}

func (p patternRule) Decode(d *Decoder, raw string) (Value, error) {
	caps, ok := submatches(p.re, raw)
	if !ok {
		return nil, mismatch(raw, "of form "+p.re.String())
	}
	return d.NormalizeCaptures(caps)
}

// locatedReadings decodes "loc,loc,...:reading,reading,...", where every
// location is a dictionary position matching loc.
type locatedReadings struct {
	loc patternRule
}

func (r locatedReadings) Decode(d *Decoder, raw string) (Value, error) {
	locs, readings, ok := strings.Cut(raw, ":")
	if !ok {
		return nil, mismatch(raw, "of form locations:readings")
	}
	var locations []Captures
	for _, l := range strings.Split(locs, ",") {
		v, err := r.loc.Decode(d, l)
		if err != nil {
			return nil, err
		}
		locations = append(locations, v.(Captures))
	}
	var list []string
	for _, reading := range strings.Split(readings, ",") {
		if reading = strings.TrimSpace(reading); reading != "" {
			list = append(list, reading)
		}
	}
	if len(list) == 0 {
		return nil, mismatch(raw, "followed by readings")
	}
	return Captures{"locations": locations, "readings": list}, nil
}

// irgSource splits "G1-3021" into source and mapping.
var irgSource = RuleFunc(func(_ *Decoder, raw string) (Value, error) {
	source, mapping, hasMapping := strings.Cut(raw, "-")
	if source == "" {
		return nil, mismatch(raw, "an IRG source")
	}
	caps := Captures{"source": source}
	if hasMapping {
		caps["mapping"] = mapping
	}
	return caps, nil
})

// variantWithSources decodes "U+5149<kMatthews:T,kMeyerWempe". Sources are optional.
var variantWithSources = RuleFunc(func(_ *Decoder, raw string) (Value, error) {
	ref, sources, hasSources := strings.Cut(raw, "<")
	cp, err := codepoint.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMismatch, err)
	}
	caps := Captures{"codepoint": cp}
	if hasSources {
		var list []string
		for _, s := range strings.Split(sources, ",") {
			if s = strings.TrimSpace(s); s != "" {
				list = append(list, s)
			}
		}
		caps["sources"] = list
	}
	return caps, nil
})

// strange decodes kStrange: a category letter, optionally followed by
// colon-separated code points or, for S, a stroke count.
var strange = RuleFunc(func(_ *Decoder, raw string) (Value, error) {
	code, payload, hasPayload := strings.Cut(raw, ":")
	category, ok := strangeCategories[code]
	if !ok {
		return nil, mismatch(raw, "a kStrange category")
	}
	caps := Captures{"category": category}
	if !hasPayload {
		return caps, nil
	}
	if category == StrokeHeavy {
		n, err := strconv.Atoi(payload)
		if err != nil {
			return nil, mismatch(raw, "a stroke count")
		}
		caps["strokes"] = n
		return caps, nil
	}
	var cps []codepoint.Codepoint
	for _, ref := range strings.Split(payload, ":") {
		cp, err := codepoint.Parse(ref)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMismatch, err)
		}
		cps = append(cps, cp)
	}
	if len(cps) == 1 {
		caps["codepoint"] = cps[0]
	} else {
		caps["codepoints"] = cps
	}
	return caps, nil
})

// --- Numeric values with suffixes -------------------------------------------

var matthewsIndex = regexp.MustCompile(`^([0-9]{1,4})(?:\.[0-9]+|a)?$`)

// dropRemainder keeps the integer prefix of "1234.5" or "1234a".
var dropRemainder = RuleFunc(func(_ *Decoder, raw string) (Value, error) {
	m := matthewsIndex.FindStringSubmatch(raw)
	if m == nil {
		return nil, mismatch(raw, "a dictionary index")
	}
	n, _ := strconv.Atoi(m[1])
	return n, nil
})

// --- Readings --------------------------------------------------------------

// cantonese decodes a single jyutping reading. Readings missing from the
// romanization index are kept as strings.
var cantonese = RuleFunc(func(d *Decoder, raw string) (Value, error) {
	if s, ok := d.jyutping.Find(raw); ok {
		return s, nil
	}
	tracer().Debugf("keeping raw Cantonese reading %q", raw)
	return raw, nil
})

// totalStrokes sees all items of kTotalStrokes: one count applies to both
// scripts, two counts are simplified and traditional, in this order.
type totalStrokes struct{}

func (t totalStrokes) Decode(d *Decoder, raw string) (Value, error) {
	return t.DecodeList(d, strings.Fields(raw))
}

func (totalStrokes) DecodeList(_ *Decoder, items []string) (Value, error) {
	counts := make([]int, len(items))
	for i, item := range items {
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, mismatch(item, "a stroke count")
		}
		counts[i] = n
	}
	switch len(counts) {
	case 1:
		return ScriptCounts{Hans: counts[0], Hant: counts[0]}, nil
	case 2:
		return ScriptCounts{Hans: counts[0], Hant: counts[1]}, nil
	}
	return nil, mismatch(strings.Join(items, " "), "one or two stroke counts")
}
