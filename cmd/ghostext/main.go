package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/unkn0wn-root/ghostext"
	ghostzap "github.com/unkn0wn-root/ghostext/log/zap"
)

const usage = `Usage: ghostext [-d] [-debug] [-alphabet vs|vss] [-max N]
                [-envelope | -cover TEXT [-place suffix|prefix|interleave]]

Reads stdin and writes the invisible encoding to stdout.
With -d, reads text and writes the hidden bytes instead.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	decode   bool
	debug    bool
	alphabet string
	envelope bool
	cover    string
	place    string
	max      int
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("ghostext", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.BoolVar(&cfg.decode, "d", false, "Decode instead of encode")
	fs.BoolVar(&cfg.decode, "decode", false, "Decode instead of encode")
	fs.BoolVar(&cfg.debug, "debug", false, "Write diagnostics to stderr")
	fs.StringVar(&cfg.alphabet, "alphabet", "vs", "Alphabet: vs (U+FE00..U+FE0F) or vss (U+E0100..U+E010F)")
	fs.BoolVar(&cfg.envelope, "envelope", false, "Seal/open the payload between start and end markers")
	fs.StringVar(&cfg.cover, "cover", "", "Visible cover text to hide the payload in (encode only)")
	fs.StringVar(&cfg.place, "place", "suffix", "Where to hide in the cover text: suffix, prefix or interleave")
	fs.IntVar(&cfg.max, "max", 0, "Reject decode input larger than N bytes (0 = no limit)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.envelope && cfg.cover != "" {
		return cfg, errors.New("-envelope and -cover cannot be combined")
	}
	if cfg.decode && cfg.cover != "" {
		return cfg, errors.New("-cover only applies when encoding")
	}
	return cfg, nil
}

func encodingFor(name string) (*ghostext.Encoding, error) {
	switch name {
	case "vs", "":
		return ghostext.StdEncoding, nil
	case "vss":
		return ghostext.SupplementEncoding, nil
	default:
		return nil, fmt.Errorf("unknown alphabet %q", name)
	}
}

func newLogger(debug bool, stderr io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(stderr),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	enc, err := encodingFor(cfg.alphabet)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	place, err := ghostext.ParsePlacement(cfg.place)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	zl := newLogger(cfg.debug, stderr)
	defer zl.Sync()

	c, err := ghostext.New(ghostext.Options{
		Encoding:  enc,
		Logger:    ghostzap.New(zl),
		MaxDecode: cfg.max,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(stderr, "ghostext: reading from terminal, end input with Ctrl-D")
	}
	in, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: read stdin: %v\n", err)
		return 1
	}

	var out []byte
	switch {
	case cfg.decode && cfg.envelope:
		out, err = c.Open(string(in))
	case cfg.decode:
		out, err = c.Decode(string(in))
	case cfg.envelope:
		out = []byte(c.Seal(in))
	case cfg.cover != "":
		var s string
		s, err = c.Hide(cfg.cover, in, place)
		out = []byte(s)
	default:
		out = []byte(c.Encode(in))
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.debug {
		t := enc.Scan(string(in))
		zl.Debug("ghostext.input",
			zap.Int("bytes", len(in)),
			zap.Int("members", t.Members),
			zap.Int("carriers", t.Carriers),
			zap.Int("output_bytes", len(out)),
		)
	}

	if _, err := stdout.Write(out); err != nil {
		fmt.Fprintf(stderr, "Error: write stdout: %v\n", err)
		return 1
	}
	return 0
}
