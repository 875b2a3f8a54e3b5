package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/cesu8str/internal/config"
	"github.com/wippyai/cesu8str/stream"
)

const version = "0.4.0"

const helpText = `Converts files or standard IO streams between standard UTF-8 and CESU-8, or the JVM's modified UTF-8.
Note that many consoles do not support non-UTF-8 sequences; printing CESU-8 to them may show garbage.

This tool stops reading at the first invalid character sequence and exits once the
bytes already read have been written out.

EXIT CODES:
  0 - completed normally
  1 - an I/O error occurred
  2 - an encoding error occurred (invalid or incomplete character sequences)`

const (
	exitSuccess = 0
	exitIO      = 1
)

func main() {
	ignoreSIGPIPE()
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries the process streams so the command can run against buffers.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	code   int
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if a.code == exitSuccess {
			a.code = exitIO
		}
	}
	return a.code
}

func newRootCmd(a *app) *cobra.Command {
	var (
		configPath  string
		interactive bool
		flags       = config.Default()
	)

	cmd := &cobra.Command{
		Use:           "cesu8str",
		Short:         "Convert between UTF-8 and CESU-8 / Java modified UTF-8",
		Long:          helpText,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			overlay(&cfg, flags, cmd.Flags())
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := newLogger(a.stderr, cfg.Debug)
			defer func() { _ = log.Sync() }()

			if interactive {
				return a.interactive(cfg)
			}
			a.code = a.transcode(cfg, log)
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&flags.Java, "java", "j", false, "use the JVM's modified UTF-8: nul bytes are (en|de)coded as 0xC0,0x80")
	f.BoolVarP(&flags.Decode, "decode", "d", false, "decode CESU-8 into standard UTF-8 (default is to encode UTF-8 to CESU-8)")
	f.StringVarP(&flags.Input, "input", "i", "", "input file; stdin if '-' or not set")
	f.StringVarP(&flags.Output, "output", "o", "", "output file; stdout if '-' or not set")
	f.IntVar(&flags.ChunkSize, "chunk", stream.DefaultChunkSize, "buffer size in bytes")
	f.BoolVar(&flags.Debug, "debug", false, "trace buffer activity on stderr (same as setting "+config.EnvDebug+")")
	f.StringVar(&flags.Report, "report", "", "write a run summary to stderr; supported: json")
	f.StringVar(&configPath, "config", "", "YAML file with default settings")
	f.BoolVar(&interactive, "interactive", false, "open a terminal playground instead of transcoding a stream")

	return cmd
}

// overlay copies the flags the user actually set onto cfg.
func overlay(cfg *config.Config, flags config.Config, set *pflag.FlagSet) {
	if set.Changed("java") {
		cfg.Java = flags.Java
	}
	if set.Changed("decode") {
		cfg.Decode = flags.Decode
	}
	if set.Changed("input") {
		cfg.Input = flags.Input
	}
	if set.Changed("output") {
		cfg.Output = flags.Output
	}
	if set.Changed("chunk") {
		cfg.ChunkSize = flags.ChunkSize
	}
	if set.Changed("debug") {
		cfg.Debug = cfg.Debug || flags.Debug
	}
	if set.Changed("report") {
		cfg.Report = flags.Report
	}
}

func (a *app) transcode(cfg config.Config, log *zap.Logger) int {
	in, err := a.openInput(cfg.Input)
	if err != nil {
		log.Error("error while opening input file for reading", zap.Error(err))
		return exitIO
	}
	out, err := a.createOutput(cfg.Output)
	if err != nil {
		if c, ok := in.(io.Closer); ok && !config.IsStdio(cfg.Input) {
			_ = c.Close()
		}
		log.Error("error while creating output file for writing", zap.Error(err))
		return exitIO
	}

	if !cfg.Decode && isTerminal(out) {
		log.Warn("writing CESU-8 to a terminal; characters outside the BMP may not display")
	}

	rep := stream.Run(cfg.StreamOptions(log), in, out)
	if cfg.Report == config.ReportJSON {
		if err := writeReport(a.stderr, cfg, rep); err != nil {
			log.Warn("writing report", zap.Error(err))
		}
	}
	return rep.Outcome.ExitCode()
}

func (a *app) openInput(name string) (io.Reader, error) {
	if config.IsStdio(name) {
		return a.stdin, nil
	}
	return os.Open(name)
}

func (a *app) createOutput(name string) (io.Writer, error) {
	if config.IsStdio(name) {
		return a.stdout, nil
	}
	return os.Create(name)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
