/*
Package corpus compiles a Unihan data directory.

A data directory contains

	fields.yaml         field definitions (see package schema)
	jyutping.csv        Cantonese romanization index (see package jyutping)
	CJKRadicals.txt     CJK radical definitions (see package radical)
	unihan/*.txt        the Unihan text files (see package unihanfile)

File names are taken from a config.Config. The lookup tables are built first
and are read-only while the Unihan files are decoded. Unihan files are folded
in parallel, one partial database per file, and merged in file name order.
Fields occurring in more than one file are therefore taken from the file
sorting last, independent of the number of workers.
*/
package corpus

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/unihan"
	"github.com/npillmayer/unihan/config"
	"github.com/npillmayer/unihan/decode"
	"github.com/npillmayer/unihan/jyutping"
	"github.com/npillmayer/unihan/radical"
	"github.com/npillmayer/unihan/schema"
	"github.com/npillmayer/unihan/unihanfile"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Corpus is a compiled Unihan data directory.
type Corpus struct {
	Schema   *schema.Schema
	Jyutping *jyutping.Index
	Radicals *radical.Table
	Database *unihan.Database
}

// Load compiles the data directory described by cfg.
//
// Example usage:
//
//	cfg, _ := config.Load("unihan.yaml")
//	c, err := corpus.Load(context.Background(), cfg)
//	...
//	v, ok := c.Database.Get(0x4E00, "kTotalStrokes")
func Load(ctx context.Context, cfg *config.Config) (*Corpus, error) {
	c := &Corpus{}
	var err error
	if c.Schema, err = schema.LoadFile(cfg.SchemaPath()); err != nil {
		return nil, err
	}
	err = readFile(cfg.JyutpingPath(), func(r io.Reader) (err error) {
		c.Jyutping, err = jyutping.LoadIndex(r)
		return
	})
	if err != nil {
		return nil, err
	}
	err = readFile(cfg.RadicalsPath(), func(r io.Reader) (err error) {
		c.Radicals, err = radical.LoadTable(r)
		return
	})
	if err != nil {
		return nil, err
	}
	files, err := UnihanFiles(cfg.UnihanPath())
	if err != nil {
		return nil, err
	}
	dec := decode.New(c.Schema, c.Jyutping, decoderOptions(cfg)...)
	if c.Database, err = Fold(ctx, files, dec, cfg.Workers); err != nil {
		return nil, err
	}
	return c, nil
}

func decoderOptions(cfg *config.Config) []decode.Option {
	var opts []decode.Option
	if cfg.Strict {
		opts = append(opts, decode.WithSyntaxValidation())
	}
	if cfg.FixedArity {
		opts = append(opts, decode.WithFixedArity())
	}
	return opts
}

// UnihanFiles lists the Unihan text files (*.txt) of a directory, sorted by name.
func UnihanFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unihan files: %w", err)
	}
	var files []string
	for _, e := range entries { // ReadDir sorts by file name
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("unihan files: no *.txt files in %s", dir)
	}
	return files, nil
}

// Fold decodes Unihan files with up to workers files in parallel and merges the
// results in the order of files. The first error cancels all outstanding work.
func Fold(ctx context.Context, files []string, dec unihan.FieldDecoder, workers int) (*unihan.Database, error) {
	partial := make([]*unihan.Database, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			name := filepath.Base(path)
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			reader := &cancelableReader{ctx: ctx, reader: unihanfile.NewReader(name, f)}
			partial[i], err = unihan.Load(name, reader, dec)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	db := unihan.NewDatabase("unihan")
	for _, p := range partial {
		db.Merge(p)
	}
	tracer().Infof("folded %d files into %d code points", len(files), db.Len())
	return db, nil
}

// cancelableReader stops reading records once ctx is done.
type cancelableReader struct {
	ctx    context.Context
	reader unihan.RecordReader
}

func (r *cancelableReader) Next() (unihan.RawRecord, error) {
	if err := r.ctx.Err(); err != nil {
		return unihan.RawRecord{}, err
	}
	return r.reader.Next()
}

// readFile opens a file and hands its content to load. A leading byte order
// mark is removed.
func readFile(path string, load func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = load(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}
