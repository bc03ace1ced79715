// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package listscript

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/listadt/container/list"
)

// Option represents an option to NewRunner.
type Option func(*Runner)

// WithLogger sets the logger used by the Runner, by default nothing
// is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// Runner executes scripts, writing a transcript of each step to its
// output.
type Runner struct {
	out    io.Writer
	logger *slog.Logger
}

// NewRunner returns a Runner that writes its transcript to out.
func NewRunner(out io.Writer, opts ...Option) *Runner {
	r := &Runner{out: out}
	for _, fn := range opts {
		fn(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Summary describes the outcome of running a script.
type Summary struct {
	Name      string
	Steps     int
	Failed    int
	Remaining []Record
	Destroyed []Record
}

type run struct {
	out     io.Writer
	log     *slog.Logger
	dl      *list.List[Record]
	summary Summary
}

// Run executes the steps of s against a new list. Steps that fail, for
// example removing a record that is not present, are reported and the
// run continues; all such failures are returned together. Run stops
// early if ctx is canceled. The list is freed once the run completes,
// destroying any records still in it.
func (r *Runner) Run(ctx context.Context, s *Script) (Summary, error) {
	rn := &run{
		out:     r.out,
		log:     r.logger.With("script", s.Name),
		summary: Summary{Name: s.Name},
	}
	rn.dl = list.New(Record.String, rn.destroy, CompareRecords)
	errs := &errors.M{}
	fmt.Fprintf(r.out, "# %v\n", s.Name)
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			errs.Append(err)
			break
		}
		rn.summary.Steps++
		rn.log.Debug("step", "index", i+1, "op", step.Op.String(), "record", step.Record().String())
		if err := rn.apply(step); err != nil {
			rn.summary.Failed++
			rn.log.Warn("step failed", "index", i+1, "op", step.Op.String(), "error", err)
			fmt.Fprintf(r.out, "%v: error: %v\n", step.Op, err)
			errs.Append(fmt.Errorf("%v: step %d: %v: %w", s.Name, i+1, step.Op, err))
		}
	}
	rn.summary.Remaining = make([]Record, 0, rn.dl.Len())
	for rec := range rn.dl.Forward() {
		rn.summary.Remaining = append(rn.summary.Remaining, rec)
	}
	rn.dl.Free()
	rn.log.Info("script complete", "steps", rn.summary.Steps, "failed", rn.summary.Failed, "destroyed", len(rn.summary.Destroyed))
	return rn.summary, errs.Err()
}

func (rn *run) destroy(rec Record) {
	rn.log.Debug("destroy", "record", rec.String())
	rn.summary.Destroyed = append(rn.summary.Destroyed, rec)
}

func (rn *run) apply(step Step) error {
	rec := step.Record()
	switch step.Op {
	case InsertBack:
		rn.dl.InsertBack(rec)
	case InsertFront:
		rn.dl.InsertFront(rec)
	case InsertSorted:
		rn.dl.InsertSorted(rec)
	case Front:
		return rn.report(step.Op, ErrEmpty)(rn.dl.Front())
	case Back:
		return rn.report(step.Op, ErrEmpty)(rn.dl.Back())
	case Remove:
		return rn.report(step.Op, fmt.Errorf("%v: %w", rec, ErrNotFound))(rn.dl.Remove(rec))
	case Erase:
		if !rn.dl.Erase(rec) {
			return fmt.Errorf("%v: %w", rec, ErrNotFound)
		}
	case Find:
		return rn.report(step.Op, fmt.Errorf("%q: %w", step.Name, ErrNotFound))(list.FindFunc(rn.dl, hasName, step.Name))
	case Length:
		fmt.Fprintf(rn.out, "%v: %v\n", step.Op, rn.dl.Len())
		return nil
	case Print:
		fmt.Fprintf(rn.out, "%v:\n", step.Op)
		if s := rn.dl.String(); len(s) > 0 {
			fmt.Fprintf(rn.out, "  %s\n", strings.ReplaceAll(s, list.Separator, "\n  "))
		}
		return nil
	case Clear:
		rn.dl.Clear()
	default:
		return fmt.Errorf("%w: %v", ErrUnknownOp, step.Op)
	}
	switch step.Op {
	case Clear:
		fmt.Fprintf(rn.out, "%v\n", step.Op)
	default:
		fmt.Fprintf(rn.out, "%v %v\n", step.Op, rec)
	}
	return nil
}

// report returns a function that writes the result of an operation
// returning (Record, bool) to the transcript, or returns notOK.
func (rn *run) report(op Op, notOK error) func(Record, bool) error {
	return func(rec Record, ok bool) error {
		if !ok {
			return notOK
		}
		fmt.Fprintf(rn.out, "%v: %v\n", op, rec)
		return nil
	}
}
