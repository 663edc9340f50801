package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/gokatas/katas/internal/config"
)

// Recorder receives what each iteration computed. metrics.Session satisfies it.
type Recorder interface {
	Selection(option string)
	RuleEvaluated(rule string, outcome bool)
	CookingMinutes(quantity string, minutes int)
}

type nopRecorder struct{}

func (nopRecorder) Selection(string)           {}
func (nopRecorder) RuleEvaluated(string, bool) {}
func (nopRecorder) CookingMinutes(string, int) {}

// Driver runs the menu loop over an input and an output stream.
//
// SetFixtures is safe to call from another goroutine while Run is active.
type Driver struct {
	log      *zap.Logger
	rec      Recorder
	fixtures atomic.Pointer[config.Fixtures]
}

// New returns a Driver using fx as demo arguments. A nil logger or recorder
// disables that output.
func New(fx config.Fixtures, log *zap.Logger, rec Recorder) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	d := &Driver{log: log.Named("menu"), rec: rec}
	d.fixtures.Store(&fx)
	return d
}

// SetFixtures replaces the demo arguments used from the next selection on.
func (d *Driver) SetFixtures(fx config.Fixtures) {
	d.fixtures.Store(&fx)
	d.log.Info("fixtures replaced")
}

// Fixtures returns the demo arguments currently in use.
func (d *Driver) Fixtures() config.Fixtures {
	return *d.fixtures.Load()
}

// Run prompts, reads and dispatches selections until a quit selection.
//
// It returns nil on a quit selection, an *InputError when a token is not an
// integer or the input ends first, and ctx.Err() if ctx is cancelled between
// iterations. The read itself blocks until a token arrives.
func (d *Driver) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	state := AwaitingSelection
	for state != Terminated {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := RenderPrompt(w); err != nil {
			return fmt.Errorf("menu: write prompt: %w", err)
		}

		sel, err := readSelection(sc)
		if err != nil {
			d.log.Debug("selection read failed", zap.Error(err))
			return err
		}
		d.log.Debug("selection read", zap.Int("selection", int(sel)), zap.String("option", sel.Option()))

		next, report, err := Transition(state, sel, d.Fixtures())
		if err != nil {
			return err
		}
		d.record(report)

		if err := Render(w, report); err != nil {
			return fmt.Errorf("menu: write report: %w", err)
		}
		state = next
	}

	d.log.Info("menu terminated")
	return nil
}

func (d *Driver) record(r Report) {
	d.rec.Selection(r.Selection.Option())
	if c := r.Cooking; c != nil {
		d.rec.CookingMinutes("remaining", c.Remaining)
		d.rec.CookingMinutes("preparation", c.Preparation)
		d.rec.CookingMinutes("total", c.Total)
		if c.Overrun {
			d.log.Warn("lasagna past expected oven time", zap.Int("remaining", c.Remaining))
		}
	}
	for _, rr := range r.Rules {
		d.rec.RuleEvaluated(rr.Rule.String(), rr.Outcome)
	}
}

// readSelection reads the next whitespace-delimited token as a 32-bit
// integer. A token too long for the scanner's buffer can never be one, so it
// is malformed like any other; its text is not kept.
func readSelection(sc *bufio.Scanner) (Selection, error) {
	if !sc.Scan() {
		err := sc.Err()
		switch {
		case errors.Is(err, bufio.ErrTooLong):
			return 0, &InputError{Err: ErrMalformedSelection}
		case err != nil:
			return 0, fmt.Errorf("menu: read selection: %w", err)
		}
		return 0, &InputError{Err: ErrInputClosed}
	}
	tok := sc.Text()
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, &InputError{Token: tok, Err: ErrMalformedSelection}
	}
	return Selection(n), nil
}
