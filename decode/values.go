package decode

// Value is a decoded field value. Its dynamic type depends on the field:
//
//	string, int, bool                    scalar values
//	codepoint.Codepoint                  code point references
//	*jyutping.Syllable                   Cantonese readings
//	Captures                             composite values (named parts)
//	ScriptCounts                         per-script values (kTotalStrokes)
//	[]Value                              delimited fields with more than one item
type Value = any

// Captures holds the typed named parts of a composite value.
type Captures map[string]Value

// Script names the writing system variant of a per-script value.
type Script string

// Hans is simplified Chinese, Hant is traditional Chinese.
const (
	Hans Script = "Hans"
	Hant Script = "Hant"
)

// ScriptCounts maps scripts to counts.
type ScriptCounts map[Script]int

// StrangeCategory classifies characters of field kStrange.
type StrangeCategory string

// kStrange categories.
const (
	Asymmetric         StrangeCategory = "asymmetric"
	Bopomofo           StrangeCategory = "bopomofo"
	Cursive            StrangeCategory = "cursive"
	FullyReflective    StrangeCategory = "fully_reflective"
	Hangul             StrangeCategory = "hangul"
	Incomplete         StrangeCategory = "incomplete"
	Katakana           StrangeCategory = "katakana"
	Mirrored           StrangeCategory = "mirrored"
	OddComponent       StrangeCategory = "odd_component"
	Rotated            StrangeCategory = "rotated"
	StrokeHeavy        StrangeCategory = "stroke_heavy"
	UnusualArrangement StrangeCategory = "unusual_arrangement"
)

var strangeCategories = map[string]StrangeCategory{
	"A": Asymmetric,
	"B": Bopomofo,
	"C": Cursive,
	"F": FullyReflective,
	"H": Hangul,
	"I": Incomplete,
	"K": Katakana,
	"M": Mirrored,
	"O": OddComponent,
	"R": Rotated,
	"S": StrokeHeavy,
	"U": UnusualArrangement,
}
