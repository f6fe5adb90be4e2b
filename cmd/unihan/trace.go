package main

import (
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// setupTracing routes tracer "unihan" to the Go log package at the given level.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"tracelevel.unihan": level,
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel"); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Select("unihan").SetTraceLevel(tracing.TraceLevelFromString(level))
	return nil
}
