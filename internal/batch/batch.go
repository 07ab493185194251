// Package batch evaluates CSV rows of measurements and streams one JSON
// record per row.
package batch

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"

	"github.com/abhisek/fuzzscore/internal/fuzzy"
	"github.com/abhisek/fuzzscore/internal/linguistic"
)

// Options controls a batch run.
type Options struct {
	// Strict turns out-of-range inputs into row errors.
	Strict bool
	// CacheSize bounds the number of memoized results. Zero disables the
	// cache.
	CacheSize int
}

// Record is the output for one input row. Exactly one of Result and Error
// is set.
type Record struct {
	ID         string           `json:"id"`
	Line       int              `json:"line"`
	Result     *fuzzy.Result    `json:"result,omitempty"`
	Advisories []fuzzy.Advisory `json:"advisories,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// Summary counts what a run produced.
type Summary struct {
	Rows      int `json:"rows"`
	Failed    int `json:"failed"`
	CacheHits int `json:"cache_hits"`
}

// Processor evaluates rows with a shared engine and an optional result
// cache. A Processor is not safe for concurrent Runs.
type Processor struct {
	engine *fuzzy.Engine
	cache  *lru.Cache
	opts   Options
	logger *slog.Logger
	newID  func() string
}

// New creates a processor. A nil engine selects the default one and a nil
// logger discards logs.
func New(engine *fuzzy.Engine, opts Options, logger *slog.Logger) (*Processor, error) {
	if opts.CacheSize < 0 {
		return nil, fmt.Errorf("cache size must be >= 0, got %d", opts.CacheSize)
	}
	if engine == nil {
		engine = fuzzy.NewEngine(nil, logger)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	p := &Processor{
		engine: engine,
		opts:   opts,
		logger: logger,
		newID:  uuid.NewString,
	}
	if opts.CacheSize > 0 {
		c, err := lru.New(opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("create result cache: %w", err)
		}
		p.cache = c
	}
	return p, nil
}

// cacheKey identifies an input by the exact bits of its values so that
// distinct values such as 0 and -0 never share an entry.
type cacheKey [4]uint64

func keyOf(in fuzzy.Input) cacheKey {
	var k cacheKey
	for i, v := range in.Values() {
		k[i] = math.Float64bits(v)
	}
	return k
}

// Run reads CSV rows from r and writes one JSON record per row to w. A row
// that fails to parse or evaluate produces an error record; only read,
// write and context errors abort the run.
func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) (Summary, error) {
	var sum Summary

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	enc := json.NewEncoder(w)
	first := true

	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var line int
		var rec Record
		var parseErr *csv.ParseError
		switch {
		case errors.As(err, &parseErr):
			line = parseErr.StartLine
			rec = Record{Error: parseErr.Err.Error()}
		case err != nil:
			return sum, fmt.Errorf("read input: %w", err)
		default:
			line, _ = cr.FieldPos(0)
			if first && isHeader(fields) {
				first = false
				continue
			}
			var hit bool
			rec, hit = p.evaluate(fields)
			if hit {
				sum.CacheHits++
			}
		}
		first = false

		rec.ID = p.newID()
		rec.Line = line
		sum.Rows++
		if rec.Error != "" {
			sum.Failed++
			p.logger.Debug("row failed", "line", line, "error", rec.Error)
		}

		if err := enc.Encode(rec); err != nil {
			return sum, fmt.Errorf("write record: %w", err)
		}
	}

	p.logger.Info("batch complete",
		"rows", sum.Rows,
		"failed", sum.Failed,
		"cache_hits", sum.CacheHits)
	return sum, nil
}

// evaluate turns one row into a record and reports whether the result came
// from the cache.
func (p *Processor) evaluate(fields []string) (Record, bool) {
	names := linguistic.InputNames()
	if len(fields) != len(names) {
		return Record{Error: fmt.Sprintf("expected %d fields (%s), got %d",
			len(names), strings.Join(names, ","), len(fields))}, false
	}

	in, err := fuzzy.ParseInput(fields[0], fields[1], fields[2], fields[3])
	if err != nil {
		return Record{Error: err.Error()}, false
	}

	adv := fuzzy.Advise(in)
	if p.opts.Strict && len(adv) > 0 {
		return Record{Error: (&fuzzy.RangeError{Advisories: adv}).Error()}, false
	}

	res, hit, err := p.lookup(in)
	if err != nil {
		return Record{Error: err.Error()}, false
	}
	return Record{Result: res, Advisories: adv}, hit
}

// lookup returns a memoized result for in or evaluates it. Cached results
// are shared between records and must not be modified.
func (p *Processor) lookup(in fuzzy.Input) (*fuzzy.Result, bool, error) {
	if p.cache == nil {
		res, err := p.engine.Evaluate(in)
		return res, false, err
	}
	key := keyOf(in)
	if v, ok := p.cache.Get(key); ok {
		return v.(*fuzzy.Result), true, nil
	}
	res, err := p.engine.Evaluate(in)
	if err != nil {
		return nil, false, err
	}
	p.cache.Add(key, res)
	return res, false, nil
}

func isHeader(fields []string) bool {
	return len(fields) > 0 && strings.EqualFold(strings.TrimSpace(fields[0]), linguistic.NameAnamnesis)
}
