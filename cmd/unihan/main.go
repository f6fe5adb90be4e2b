// Command unihan compiles a Unihan data directory and prints statistics or
// single entries.
//
// Flags:
//
//	-config   path to YAML config file (default: environment only)
//	-cp       code point to print, e.g. U+4E00
//	-radical  radical number to print
//	-dump     print complete Go structures instead of a field listing
//	-workers  number of files decoded in parallel (overrides config)
//	-strict   check values against the field syntax (overrides config)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/npillmayer/unihan"
	"github.com/npillmayer/unihan/codepoint"
	"github.com/npillmayer/unihan/config"
	"github.com/npillmayer/unihan/corpus"
	"github.com/npillmayer/unihan/radical"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	cpFlag := flag.String("cp", "", "code point to print, e.g. U+4E00")
	radicalFlag := flag.Int("radical", 0, "radical number to print")
	dumpFlag := flag.Bool("dump", false, "dump Go structures")
	workersFlag := flag.Int("workers", 0, "files decoded in parallel")
	strictFlag := flag.Bool("strict", false, "validate values against field syntax")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *workersFlag > 0 {
		cfg.Workers = *workersFlag
	}
	if *strictFlag {
		cfg.Strict = true
	}
	if err = setupTracing(cfg.TraceLevel); err != nil {
		log.Fatal(err)
	}

	c, err := corpus.Load(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d code points, %d fields in schema, %d radicals, %d jyutping syllables\n",
		c.Database.Len(), c.Schema.Len(), c.Radicals.Len(), c.Jyutping.Len())

	if *cpFlag != "" {
		cp, err := codepoint.Parse(*cpFlag)
		if err != nil {
			log.Fatal(err)
		}
		rec, ok := c.Database.Lookup(cp)
		if !ok {
			fmt.Fprintf(os.Stderr, "%s not in database\n", cp)
			os.Exit(1)
		}
		printRecord(rec, *dumpFlag)
	}
	if *radicalFlag > 0 {
		entry, ok := c.Radicals.Lookup(*radicalFlag)
		if !ok {
			fmt.Fprintf(os.Stderr, "radical %d not in table\n", *radicalFlag)
			os.Exit(1)
		}
		printRadical(entry, *dumpFlag)
	}
}

func printRecord(rec *unihan.Record, dump bool) {
	if dump {
		spew.Dump(rec)
		return
	}
	fmt.Printf("%s %c\n", rec.Codepoint, rec.Codepoint.Rune())
	for _, name := range rec.Names() {
		fmt.Printf("  %-24s %v\n", name, rec.Fields[name])
	}
}

func printRadical(entry radical.Entry, dump bool) {
	if dump {
		spew.Dump(entry)
		return
	}
	for _, script := range []radical.Script{radical.Traditional, radical.Simplified} {
		v := entry.Variant(script)
		fmt.Printf("%d %s: %c (%s) %c (%s)\n", v.Number, script,
			v.Radical.Rune(), v.Radical, v.Ideograph.Rune(), v.Ideograph)
	}
}
