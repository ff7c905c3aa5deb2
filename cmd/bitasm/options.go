package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/tebeka/atexit"

	"github.com/ezrec/bitasm/asm"
	"github.com/ezrec/bitasm/image"
	"github.com/ezrec/bitasm/internal/config"
)

const (
	SOURCE_EXT = ".bit"
	IMAGE_EXT  = ".bin"

	IMAGE_MODE = 0o644
)

var (
	ErrDefine         = errors.New(f("define must be NAME=EXPR"))
	ErrOutputMultiple = errors.New(f("output may only be set for a single input"))
	ErrNoSources      = errors.New(f("no .bit sources"))
)

// Options controls assembly of a set of source files.
type Options struct {
	Config  config.Config
	Profile image.Profile
	Origin  uint16
	Strict  bool
	Defines []string
	Output  string
	Listing bool
	Verbose bool
	Stdout  io.Writer
}

// ParseDefine splits a NAME=EXPR predefine.
func ParseDefine(define string) (name string, expr string, err error) {
	name, expr, ok := strings.Cut(define, "=")
	name = strings.TrimSpace(name)
	expr = strings.TrimSpace(expr)
	if !ok || len(name) == 0 || len(expr) == 0 {
		err = fmt.Errorf("%q: %w", define, ErrDefine)
	}
	return
}

// OutputPath is the image path for a source: the source name with a .bin
// extension.
func OutputPath(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + IMAGE_EXT
}

// Assembler builds an assembler from the configuration and flags.
func (opts *Options) Assembler() (a *asm.Assembler, err error) {
	a = &asm.Assembler{
		Log: logrus.StandardLogger(),
	}
	opts.Config.Apply(a)
	a.Origin = opts.Origin
	a.Strict = opts.Strict
	a.Verbose = opts.Verbose

	for _, define := range opts.Defines {
		var name, expr string
		name, expr, err = ParseDefine(define)
		if err != nil {
			return
		}
		a.Predefine(name, expr)
	}

	return
}

// AssembleFiles assembles every .bit file in paths. Other files are skipped
// with a warning. All failures are reported together.
func (opts *Options) AssembleFiles(paths []string) (err error) {
	var sources []string
	for _, path := range paths {
		if filepath.Ext(path) != SOURCE_EXT {
			logrus.WithField("file", path).Warn(f("not a %v file, skipping", SOURCE_EXT))
			continue
		}
		sources = append(sources, path)
	}

	if len(sources) == 0 {
		return ErrNoSources
	}

	if len(opts.Output) != 0 && len(sources) > 1 {
		return ErrOutputMultiple
	}

	var result *multierror.Error
	for _, source := range sources {
		output := opts.Output
		if len(output) == 0 {
			output = OutputPath(source)
		}

		err := opts.AssembleFile(source, output)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%v: %w", source, err))
		}
	}

	return result.ErrorOrNil()
}

// AssembleFile assembles source into an image at output.
func (opts *Options) AssembleFile(source string, output string) (err error) {
	a, err := opts.Assembler()
	if err != nil {
		return
	}

	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err := a.Parse(inf)
	if err != nil {
		return
	}

	code, err := prog.Encode()
	if err != nil {
		return
	}

	if opts.Profile.Oversize(code) {
		logrus.WithFields(logrus.Fields{
			"file":  source,
			"bytes": len(code),
			"limit": opts.Profile.Threshold(),
		}).Warn(f("image exceeds boot sector"))
	}

	if opts.Listing && opts.Stdout != nil {
		err = writeListing(opts.Stdout, source, prog)
		if err != nil {
			return
		}
	}

	return writeImage(output, opts.Profile.Bytes(code))
}

func writeListing(w io.Writer, source string, prog *asm.Program) (err error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "; %v\n", source)
	err = prog.Listing(&buf)
	if err != nil {
		return
	}
	for name, addr := range prog.Symbols() {
		fmt.Fprintf(&buf, ";       %04X %v\n", addr, name)
	}

	_, err = w.Write(buf.Bytes())
	return
}

// writeImage writes data to a temporary file beside path, then renames it
// into place.
func writeImage(path string, data []byte) (err error) {
	ouf, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return
	}
	tmp := ouf.Name()
	atexit.Register(func() {
		_ = os.Remove(tmp)
	})

	_, err = ouf.Write(data)
	if err == nil {
		err = ouf.Chmod(IMAGE_MODE)
	}
	if cerr := ouf.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return
	}

	err = os.Rename(tmp, path)
	if err != nil {
		_ = os.Remove(tmp)
	}

	return
}
