package jyutping

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'unihan'
func tracer() tracing.Trace {
	return tracing.Select("unihan")
}
