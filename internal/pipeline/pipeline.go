// Package pipeline runs a word check over a word list in fixed-size chunks and writes
// the accepted words.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/wordcleaner/internal/wordlist"
)

const DefaultChunkSize = 50

type State string

const (
	StateIdle         State = "idle"
	StateReading      State = "reading"
	StateValidating   State = "validating"
	StateAccumulating State = "accumulating"
	StateFinalizing   State = "finalizing"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

// RunError is returned when a run stops on an I/O error. State is the step that failed.
type RunError struct {
	State State
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s > %v", e.State, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// Outcome is the decision of a CheckFunc for one line.
type Outcome struct {
	Accepted   bool
	Word       string
	Definition string
}

// CheckFunc checks one input line. An error means the check could not be completed
// and is retried.
type CheckFunc func(ctx context.Context, line string) (Outcome, error)

type Job struct {
	Name            string
	InputPath       string
	WordsOutputPath string
	// DefinitionsOutputPath is optional.
	DefinitionsOutputPath string
	Check                 CheckFunc
}

type Stats struct {
	Processed int `yaml:"processed"`
	Accepted  int `yaml:"accepted"`
	Rejected  int `yaml:"rejected"`
	Failed    int `yaml:"failed"`
}

type Options struct {
	ChunkSize      int
	ChunkDelay     time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
}

type Pipeline struct {
	options  Options
	logger   *slog.Logger
	progress io.Writer
	success  *color.Color
}

func New(options Options, logger *slog.Logger, progress io.Writer) *Pipeline {
	if options.ChunkSize <= 0 {
		options.ChunkSize = DefaultChunkSize
	}
	if options.MaxRetries < 0 {
		options.MaxRetries = 0
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Pipeline{
		options:  options,
		logger:   logger,
		progress: progress,
		success:  color.New(color.FgGreen),
	}
}

type checked struct {
	outcome Outcome
	err     error
}

type run struct {
	job         Job
	logger      *slog.Logger
	state       State
	stats       Stats
	words       []string
	definitions []string
}

func (r *run) enter(state State) {
	r.state = state
	r.logger.Debug("pipeline state", "state", state)
}

func (r *run) fail(err error) (Stats, error) {
	failedAt := r.state
	r.enter(StateFailed)
	r.logger.Error("pipeline failed", "state", failedAt, "error", err)
	return r.stats, &RunError{State: failedAt, Err: err}
}

// Run processes job.InputPath chunk by chunk. Words of a chunk are checked concurrently
// and the next chunk starts once all of them settled. Outputs keep the input order.
func (p *Pipeline) Run(ctx context.Context, job Job) (Stats, error) {
	if job.Check == nil {
		return Stats{}, errors.New("job has no check")
	}

	r := &run{
		job:    job,
		logger: p.logger.With("job", job.Name),
		state:  StateIdle,
	}
	r.logger.Info("pipeline started", "input", job.InputPath, "chunk_size", p.options.ChunkSize)

	r.enter(StateReading)
	chunk := make([]string, 0, p.options.ChunkSize)
	chunks := 0
	for line, err := range wordlist.Lines(job.InputPath) {
		if err != nil {
			return r.fail(err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		chunk = append(chunk, line)
		if len(chunk) < p.options.ChunkSize {
			continue
		}

		if err := p.processChunk(ctx, r, chunk, chunks); err != nil {
			return r.fail(err)
		}
		chunks++
		chunk = chunk[:0]
		r.enter(StateReading)
	}
	if len(chunk) > 0 {
		if err := p.processChunk(ctx, r, chunk, chunks); err != nil {
			return r.fail(err)
		}
	}

	r.enter(StateFinalizing)
	if err := wordlist.Write(job.WordsOutputPath, r.words); err != nil {
		return r.fail(err)
	}
	if job.DefinitionsOutputPath != "" {
		if err := wordlist.Write(job.DefinitionsOutputPath, r.definitions); err != nil {
			return r.fail(err)
		}
	}
	r.enter(StateDone)

	_, _ = p.success.Fprintf(p.progress, "✓ %s: %d of %d words accepted (%d rejected, %d failed)\n",
		job.Name, r.stats.Accepted, r.stats.Processed, r.stats.Rejected, r.stats.Failed)
	r.logger.Info("pipeline finished",
		"processed", r.stats.Processed,
		"accepted", r.stats.Accepted,
		"rejected", r.stats.Rejected,
		"failed", r.stats.Failed,
		"output", job.WordsOutputPath,
	)
	return r.stats, nil
}

func (p *Pipeline) processChunk(ctx context.Context, r *run, chunk []string, index int) error {
	if index > 0 && p.options.ChunkDelay > 0 {
		if err := sleep(ctx, p.options.ChunkDelay); err != nil {
			return err
		}
	}

	r.enter(StateValidating)
	results := p.checkChunk(ctx, r, chunk)

	r.enter(StateAccumulating)
	for i, result := range results {
		r.stats.Processed++
		switch {
		case result.err != nil:
			r.stats.Failed++
			r.logger.Warn("word check failed after retries", "line", chunk[i], "error", result.err)
		case result.outcome.Accepted:
			r.stats.Accepted++
			r.words = append(r.words, result.outcome.Word)
			r.definitions = append(r.definitions, DefinitionLine(result.outcome.Word, result.outcome.Definition))
		default:
			r.stats.Rejected++
		}
	}

	_, _ = p.success.Fprintf(p.progress, "✓ Processed %d words (%d valid)\n", r.stats.Processed, r.stats.Accepted)
	return nil
}

// checkChunk returns one result per line of chunk, in the same order.
func (p *Pipeline) checkChunk(ctx context.Context, r *run, chunk []string) []checked {
	results := make([]checked, len(chunk))
	attempts := uint(p.options.MaxRetries) + 1
	backoff := ExponentialBackoff(p.options.RetryBaseDelay)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(chunk))
	for i, line := range chunk {
		g.Go(func() error {
			outcome, err := WithRetry(gctx, func(ctx context.Context) (Outcome, error) {
				return r.job.Check(ctx, line)
			}, attempts, backoff, func(n uint, err error) {
				r.logger.Debug("word check attempt failed", "line", line, "attempt", n+1, "error", err)
			})
			results[i] = checked{outcome: outcome, err: err}
			return nil
		})
	}
	// Per-word failures are kept in results, so Wait has nothing to report.
	_ = g.Wait()
	return results
}

// DefinitionLine formats an accepted word for the definitions output.
func DefinitionLine(word, definition string) string {
	if definition == "" {
		return word
	}
	return word + " - " + definition
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
