package stream

import (
	stderrors "errors"

	"github.com/wippyai/cesu8str/errors"
)

// Outcome is the result class of a run.
type Outcome int

const (
	Success Outcome = iota
	IOFault
	EncodingFault
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case IOFault:
		return "io_fault"
	case EncodingFault:
		return "encoding_fault"
	default:
		return "unknown"
	}
}

// ExitCode maps the outcome to a process exit status.
func (o Outcome) ExitCode() int {
	switch o {
	case Success:
		return 0
	case IOFault:
		return 1
	default:
		return 2
	}
}

// Tracker keeps the absolute stream position and the faults of a run.
type Tracker struct {
	ioErr    *errors.Error
	faults   []*errors.Error
	absolute int64
	produced int64
	reads    int
}

// Absolute returns how many input bytes have been consumed so far.
func (t *Tracker) Absolute() int64 { return t.absolute }

// Advance moves the position past k consumed bytes.
func (t *Tracker) Advance(k int) {
	t.absolute += int64(k)
}

// Produced counts bytes handed to the output.
func (t *Tracker) Produced(n int) {
	t.produced += int64(n)
}

// Read counts a successful fill.
func (t *Tracker) Read() { t.reads++ }

// Fault records err. Only the first I/O fault is kept since it ends the run.
func (t *Tracker) Fault(err *errors.Error) {
	if err.Kind == errors.KindIO || err.Kind == errors.KindInvalidInput {
		if t.ioErr == nil {
			t.ioErr = err
		}
		return
	}
	t.faults = append(t.faults, err)
}

// Outcome composes the run result: I/O fault > encoding fault > success.
func (t *Tracker) Outcome() Outcome {
	switch {
	case t.ioErr != nil:
		return IOFault
	case len(t.faults) > 0:
		return EncodingFault
	default:
		return Success
	}
}

// Err joins all recorded faults, I/O first.
func (t *Tracker) Err() error {
	var errs []error
	if t.ioErr != nil {
		errs = append(errs, t.ioErr)
	}
	for _, f := range t.faults {
		errs = append(errs, f)
	}
	return stderrors.Join(errs...)
}
