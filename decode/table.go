package decode

// Location grammars shared by several dictionary fields.
const (
	pagePositionVirtual       = `(?P<page>[0-9]{4})\.(?P<position>[0-9]{2})(?P<virtual>[01])`
	volumePagePositionVirtual = `(?P<volume>[1-8])(?P<page>[0-9]{4})\.(?P<position>[0-9]{2})(?P<virtual>[0-3])`
	codepointExpr             = `U\+[23]?[0-9A-F]{4}`
)

var hanyuLocation = pattern(volumePagePositionVirtual)

// rules is the static dispatch table from field identifier to rule.
// Fields missing from the table keep their raw value.
var rules = map[string]Rule{
	// Readings
	"kCantonese":         cantonese,
	"kDefinition":        passThrough,
	"kMandarin":          passThrough,
	"kJapanese":          passThrough,
	"kJapaneseKun":       passThrough,
	"kJapaneseOn":        passThrough,
	"kKorean":            passThrough,
	"kVietnamese":        passThrough,
	"kFanqie":            passThrough,
	"kZhuang":            passThrough,
	"kHangul":            pattern(`(?P<hangul>\p{Hangul}+):(?P<sources>[0ENX]{1,3})`),
	"kHanyuPinlu":        pattern(`(?P<pinyin>[^()]+)\((?P<frequency>[0-9]+)\)`),
	"kHanyuPinyin":       locatedReadings{loc: hanyuLocation},
	"kXHC1983":           locatedReadings{loc: pattern(`(?P<page>[0-9]{4})\.(?P<position>[0-9]{2})(?P<entry>[0-9])(?P<substituted>\*?)`)},
	"kTGHZ2013":          locatedReadings{loc: pattern(`(?P<page>[0-9]{3})\.(?P<position>[0-9]{3})`)},
	"kTang":              pattern(`(?P<frequent>\*?)(?P<reading>[^*].*)`),
	"kSMSZD2003Readings": pattern(`(?P<mandarin>[^粵]+)粵(?P<jyutpings>.+)`),

	// Dictionary indices
	"kKangXi":           pattern(pagePositionVirtual),
	"kIRGKangXi":        pattern(pagePositionVirtual),
	"kIRGDaeJaweon":     pattern(pagePositionVirtual),
	"kDaeJaweon":        pattern(`(?P<page>[0-9]{4})\.(?P<position>[0-9]{2})(?P<virtual>[0158])`),
	"kHanYu":            hanyuLocation,
	"kIRGHanyuDaZidian": hanyuLocation,
	"kSBGY":             pattern(`(?P<page>[0-9]{3})\.(?P<position>[0-9]{2})`),
	"kCheungBauerIndex": pattern(`(?P<page>[0-9]{3})\.(?P<position>[0-9]{2})`),
	"kFennIndex":        pattern(`(?P<page>[0-9]{1,3})\.(?P<position>[0-9]{2})`),
	"kCihaiT":           pattern(`(?P<page>[0-9]{1,4})\.(?P<position>[0-9]{3})`),
	"kSMSZD2003Index":   pattern(`(?P<page>[0-9]{1,4})\.(?P<position>[0-9]{2})`),
	"kIRGDaiKanwaZiten": pattern(`(?P<index>[0-9]{5})(?P<primes>'?)`),
	"kMorohashi":        pattern(`(?P<index>[0-9]{5})(?P<primes>'{0,2})(?::(?P<page>[0-9]{3,4})\.(?P<position>[0-9]{3}))?`),
	"kGSR":              pattern(`(?P<set>[0-9]{4})(?P<letter>[a-vx-z])(?P<primes>'?)`),
	"kCowles":           pattern(`(?P<index>[0-9]{1,4})(?:\.(?P<subindex>[0-9]{1,2}))?`),
	"kMeyerWempe":       pattern(`(?P<index>[0-9]{1,4})(?:(?P<subindex>[a-t*]))?`),
	"kKarlgren":         pattern(`(?P<index>[0-9]{1,4})(?P<annex>A?)(?P<error>\*?)`),
	"kFenn":             pattern(`(?P<index>[0-9]+)(?P<variant>a?)(?P<frequency>[A-KP*])`),
	"kPhonetic":         pattern(`(?P<class>[0-9]{1,4})(?:(?P<subclass>[A-Dx]))?(?P<implicit>\*?)`),
	"kMatthews":         dropRemainder,
	"kCheungBauer":      pattern(`(?P<radical>[0-9]{3})/(?P<strokes>[0-9]{2});(?P<cangjie>[A-Z]*);(?P<jyutpings>[a-z1-6\[\]/,]+)`),
	"kHDZRadBreak":      pattern(`(?P<radical>.)\[(?P<hex_codepoint>U\+2F[0-9A-D][0-9A-F])\]:` + volumePagePositionVirtual),
	"kFourCornerCode":   pattern(`(?P<code>[0-9]{4})(?:\.(?P<subcode>[0-9]))?`),
	"kTGH":              pattern(`(?P<year>20[0-9]{2}):(?P<index>[0-9]{1,4})`),
	"kLau":              decimal,
	"kNelson":           decimal,
	"kHKGlyph":          decimal,
	"kGradeLevel":       decimal,
	"kFrequency":        decimal,
	"kUnihanCore2020":   passThrough,
	"kIICore":           pattern(`(?P<priority>[ABC])(?P<sources>[GHJKMPT]{1,7})`),

	// Character lists
	"kJinmeiyoKanji":        pattern(`(?P<year>20[0-9]{2})(?::(?P<hex_codepoint>` + codepointExpr + `))?`),
	"kJoyoKanji":            pattern(`(?P<year>20[0-9]{2})|(?P<hex_codepoint>` + codepointExpr + `)`),
	"kKoreanName":           pattern(`(?P<year>20[0-9]{2})(?::(?P<hex_codepoint>` + codepointExpr + `))?`),
	"kKoreanEducationHanja": pattern(`(?P<year>20[0-9]{2}):(?P<level>[MH])`),

	// Radical-stroke counts
	"kTotalStrokes":          totalStrokes{},
	"kAlternateTotalStrokes": pattern(`(?P<strokes>[0-9]{1,3}):(?P<sources>[BHJKMPSUV]+)|-`),
	"kRSUnicode":             pattern(`(?P<radical>[1-9][0-9]{0,2})(?P<simplified_radical>'{0,3})\.(?P<strokes>-?[0-9]{1,2})`),
	"kRSKangXi":              pattern(`(?P<radical>[1-9][0-9]{0,2})(?P<simplified_radical>'?)\.(?P<strokes>-?[0-9]{1,2})`),
	"kRSJapanese":            pattern(`(?P<radical>[1-9][0-9]{0,2})(?P<simplified_radical>'?)\.(?P<strokes>-?[0-9]{1,2})`),
	"kRSKanWa":               pattern(`(?P<radical>[1-9][0-9]{0,2})(?P<simplified_radical>'?)\.(?P<strokes>-?[0-9]{1,2})`),
	"kRSKorean":              pattern(`(?P<radical>[1-9][0-9]{0,2})(?P<simplified_radical>'?)\.(?P<strokes>-?[0-9]{1,2})`),
	"kRSAdobe_Japan1_6":      pattern(`(?P<type>[CV])\+(?P<cid>[0-9]{1,5})\+(?P<radical>[1-9][0-9]{0,2})\.(?P<radical_strokes>[1-9][0-9]?)\.(?P<strokes>[0-9]{1,2})`),
	"kCangjie":               passThrough,
	"kStrange":               strange,

	// Numeric values
	"kAccountingNumeric": decimal,
	"kPrimaryNumeric":    decimal,
	"kOtherNumeric":      decimal,
	"kVietnameseNumeric": decimal,
	"kZhuangNumeric":     decimal,

	// Other mappings
	"kBigFive":           hexadecimal,
	"kCCCII":             hexadecimal,
	"kEACC":              hexadecimal,
	"kHKSCS":             hexadecimal,
	"kIBMJapan":          hexadecimal,
	"kKPS0":              hexadecimal,
	"kKPS1":              hexadecimal,
	"kGB0":               decimal,
	"kGB1":               decimal,
	"kGB3":               decimal,
	"kGB5":               decimal,
	"kGB7":               decimal,
	"kGB8":               decimal,
	"kJis0":              decimal,
	"kJis1":              decimal,
	"kKSC0":              decimal,
	"kKSC1":              decimal,
	"kMainlandTelegraph": decimal,
	"kTaiwanTelegraph":   decimal,
	"kPseudoGB1":         decimal,
	"kCNS1986":           pattern(`(?P<plane>[12E])-(?P<code_hex>[0-9A-F]{4})`),
	"kCNS1992":           pattern(`(?P<plane>[1-9])-(?P<code_hex>[0-9A-F]{4})`),
	"kJIS0213":           pattern(`(?P<plane>[12]),(?P<row>[0-9]{2}),(?P<cell>[0-9]{1,2})`),
	"kXerox":             pattern(`(?P<set>[0-9]{3}):(?P<code>[0-9]{3})`),

	// IRG sources
	"kIRG_GSource":  irgSource,
	"kIRG_HSource":  irgSource,
	"kIRG_JSource":  irgSource,
	"kIRG_KPSource": irgSource,
	"kIRG_KSource":  irgSource,
	"kIRG_MSource":  irgSource,
	"kIRG_SSource":  irgSource,
	"kIRG_TSource":  irgSource,
	"kIRG_UKSource": irgSource,
	"kIRG_USource":  irgSource,
	"kIRG_VSource":  irgSource,

	// Variants
	"kSemanticVariant":            variantWithSources,
	"kSpecializedSemanticVariant": variantWithSources,
	"kZVariant":                   variantWithSources,
	"kSimplifiedVariant":          codepointRef,
	"kTraditionalVariant":         codepointRef,
	"kCompatibilityVariant":       codepointRef,
	"kSpoofingVariant":            codepointRef,
}
