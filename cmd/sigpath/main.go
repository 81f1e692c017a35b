/*
Command sigpath converts recorded pointer gestures into SVG path data.

Input is read from the files given as arguments, or from stdin. Every line
holds the coordinates of one sample, separated by blanks or a comma. An
empty line ends a gesture, as does a line containing "up". A line "leave x y"
signals that the pointer left the drawing surface at (x,y). Lines starting
with '#' are ignored.

	sigpath [-c options.yaml] [-svg] [-crop] [-trace level] [file ...]

By default the encoded path data is printed. With -svg a complete SVG
document is written instead.
*/
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/sigpath"
	"github.com/npillmayer/sigpath/config"
	"github.com/npillmayer/sigpath/session"
	"github.com/npillmayer/sigpath/svgdoc"
	"github.com/tdewolff/parse/v2/strconv"
)

var errInput = errors.New("invalid input")

func main() {
	confFile := flag.String("c", "", "read options from YAML `file`")
	asSVG := flag.Bool("svg", false, "write an SVG document")
	crop := flag.Bool("crop", false, "crop the SVG document to the strokes")
	level := flag.String("trace", "Error", "trace `level` (Debug, Info, Error)")
	flag.Parse()

	tr := gologadapter.New()
	tr.SetOutput(os.Stderr)
	tr.SetTraceLevel(tracing.TraceLevelFromString(*level))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return tr }))

	opts := config.Default()
	if *confFile != "" {
		var err error
		if opts, err = config.LoadFile(*confFile); err != nil {
			log.Fatal(err)
		}
	}
	if *crop {
		opts.Crop = true
	}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		var readers []io.Reader
		for _, fname := range flag.Args() {
			f, err := os.Open(fname)
			if err != nil {
				log.Fatal(err)
			}
			defer f.Close()
			readers = append(readers, f, bytes.NewReader([]byte("\n")))
		}
		in = io.MultiReader(readers...)
	}
	if err := run(in, os.Stdout, opts, *asSVG); err != nil {
		log.Fatal(err)
	}
}

// run replays the gestures of in and writes the result to out.
func run(in io.Reader, out io.Writer, opts config.Options, asSVG bool) error {
	s, err := session.New(opts)
	if err != nil {
		return err
	}
	s.SetSurface(nil)
	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := bytes.TrimSpace(scanner.Bytes())
		switch {
		case len(line) == 0 || bytes.Equal(line, []byte("up")):
			if _, err := s.End(); err != nil {
				return fmt.Errorf("line %d: %w", lineno, err)
			}
		case line[0] == '#':
		case bytes.HasPrefix(line, []byte("leave")):
			p, err := parsePoint(line[len("leave"):])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineno, err)
			}
			// replay leaving synchronously: the last sample ends the gesture
			s.Move(p)
			if _, err := s.End(); err != nil {
				return fmt.Errorf("line %d: %w", lineno, err)
			}
		default:
			p, err := parsePoint(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineno, err)
			}
			if s.Drawing() {
				s.Move(p)
			} else if err := s.Begin(p); err != nil {
				return fmt.Errorf("line %d: %w", lineno, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if _, err := s.End(); err != nil {
		return err
	}
	if !asSVG {
		_, err := fmt.Fprintln(out, s.D())
		return err
	}
	doc, err := svgdoc.FromData(s.Data(), opts)
	if err != nil {
		return err
	}
	if err := doc.Write(out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}

// parsePoint reads two numbers, separated by blanks and/or a comma.
func parsePoint(b []byte) (sigpath.Pair, error) {
	var xy [2]float64
	for i := range xy {
		b = skipSeparators(b)
		v, n := strconv.ParseFloat(b)
		if n == 0 {
			return sigpath.Origin, fmt.Errorf("%w: expected coordinate at %q", errInput, b)
		}
		xy[i], b = v, b[n:]
	}
	if b = skipSeparators(b); len(b) > 0 {
		return sigpath.Origin, fmt.Errorf("%w: trailing %q", errInput, b)
	}
	return sigpath.P(xy[0], xy[1]), nil
}

func skipSeparators(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t' || b[0] == ',') {
		b = b[1:]
	}
	return b
}
