/*
Package unihan compiles the Unicode Han database into typed per-code-point records.

The Unihan database is a family of tab-separated text files. Every data line
holds a single (code point, field, raw value) triple, and most code points have
lines in several of the files. Package unihan folds a stream of such raw
records into a Database, decoding every raw value with a FieldDecoder (see
package decode for the one driven by the field schema).

File format parsing is outside the base package. Package unihanfile reads the
Unihan text files, package corpus combines schema, romanization index,
radical table and Unihan files found in a data directory.

If the same field occurs more than once for a code point, the last occurrence
wins. This holds within a stream, across streams folded into one Database and
for Merge.

Further Reading

	https://www.unicode.org/reports/tr38/   (UAX #38, Unicode Han Database)
	https://www.unicode.org/Public/UCD/latest/ucd/Unihan.zip

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package unihan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unihan'
func tracer() tracing.Trace {
	return tracing.Select("unihan")
}
