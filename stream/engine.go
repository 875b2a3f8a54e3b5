package stream

import (
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/cesu8str"
	"github.com/wippyai/cesu8str/codec"
	"github.com/wippyai/cesu8str/errors"
)

// DefaultChunkSize is the buffer size used when Options.ChunkSize is zero.
const DefaultChunkSize = 4096

// Options configures a run.
type Options struct {
	// Logger receives diagnostics. Defaults to Logger().
	Logger *zap.Logger
	// ChunkSize is the buffer capacity. It must hold the longest unit of
	// the source encoding: 4 bytes when encoding, 6 when decoding.
	ChunkSize int
	Direction cesu8str.Direction
	Variant   cesu8str.Variant
}

// Validate checks the options after defaults are applied.
func (o Options) Validate() error {
	if err := o.withDefaults().validate(); err != nil {
		return err
	}
	return nil
}

func (o Options) validate() *errors.Error {
	if o.Direction != cesu8str.Encode && o.Direction != cesu8str.Decode {
		return errors.InvalidInput(errors.PhaseConfig, "unknown direction "+o.Direction.String())
	}
	if o.Variant != cesu8str.Standard && o.Variant != cesu8str.Java {
		return errors.InvalidInput(errors.PhaseConfig, "unknown variant "+o.Variant.String())
	}
	if least := codec.MaxUnitLen(o.Direction); o.ChunkSize < least {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Detail("chunk size %d is below the minimum of %d bytes for %s", o.ChunkSize, least, o.Direction).
			Build()
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.ChunkSize == 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.Logger == nil {
		o.Logger = Logger()
	}
	return o
}

// Report summarizes a finished run.
type Report struct {
	// Err joins every recorded fault; nil on success.
	Err     error
	Faults  []*errors.Error
	Outcome Outcome
	// BytesIn counts consumed input bytes, skipped invalid units included.
	BytesIn  int64
	BytesOut int64
	Reads    int
}

type engine struct {
	opts     Options
	log      *zap.Logger
	buf      *Buffer
	in       *Input
	out      *Output
	track    *Tracker
	pump     *pump
	scratch  []byte
	pending  bool // the last step stopped inside a unit
	failFast bool // reading stopped at an invalid unit
}

// Run transcodes in to out until the input is exhausted or a fault ends the
// run. Run owns in and out: when they implement io.Closer they are closed
// before Run returns, on every path.
func Run(opts Options, in io.Reader, out io.Writer) *Report {
	opts = opts.withDefaults()
	verr := opts.validate()
	if verr != nil {
		opts.ChunkSize = 0
	}
	e := newEngine(opts, in, out)
	defer e.pump.release()

	if verr != nil {
		opts.Logger.Error("invalid options", zap.Error(verr))
		e.track.Fault(verr)
		e.pump.release()
		return e.report()
	}

	e.loop()
	e.pump.release()
	return e.report()
}

func newEngine(opts Options, in io.Reader, out io.Writer) *engine {
	e := &engine{
		opts:  opts,
		log:   opts.Logger,
		buf:   NewBuffer(opts.ChunkSize),
		in:    NewInput(in),
		out:   NewOutput(out),
		track: &Tracker{},
	}
	// Java nul doubles in size; nothing else grows by more than half.
	e.scratch = make([]byte, 0, 2*opts.ChunkSize)
	e.pump = &pump{in: e.in, out: e.out, track: e.track, log: e.log}
	return e
}

func (e *engine) loop() {
	for {
		start, end := e.buf.Start(), e.buf.Start()+e.buf.Len()
		if e.buf.Compact() {
			e.log.Debug("moving buffer",
				zap.Int("from", start),
				zap.Int("to", 0),
				zap.Int("len", end-start))
		}
		if !e.in.Open() && !e.buf.HasData() {
			return
		}

		// Reads may block; every byte of output possible so far was written.
		if e.in.Open() && (e.pending || e.buf.NeedsFill()) && e.buf.RemainingCapacity() > 0 {
			e.pump.tryFill(e.buf)
		}
		if !e.buf.HasData() {
			continue
		}

		data, stop := e.step()
		if len(data) > 0 && !e.pump.drain(data) {
			return
		}
		if stop {
			return
		}
	}
}

func (e *engine) report() *Report {
	return &Report{
		Err:      e.track.Err(),
		Faults:   e.track.faults,
		Outcome:  e.track.Outcome(),
		BytesIn:  e.track.absolute,
		BytesOut: e.track.produced,
		Reads:    e.track.reads,
	}
}
