package catr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rcarmo/catr/pkg/core"
)

// MaxLineSize is the longest line the emitter accepts; longer lines are
// reported as read errors.
const MaxLineSize = 16 << 20

// OpenError reports an input that could not be opened.
type OpenError struct {
	Name string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open %s: %v", e.Name, core.Cause(e.Err))
}

func (e *OpenError) Unwrap() error { return e.Err }

// ReadError reports an I/O failure on an input after it was opened.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, core.Cause(e.Err))
}

func (e *ReadError) Unwrap() error { return e.Err }

// Emitter streams sources to an output sink, numbering lines per Config.
type Emitter struct {
	stdin          io.Reader
	out            *bufio.Writer
	flushEachLine  bool
	numberLines    bool
	numberNonBlank bool
	logger         *slog.Logger
}

// NewEmitter creates an Emitter writing to stdio.Out. Output is flushed
// per line when stdout is a terminal and per source otherwise.
func NewEmitter(stdio *core.Stdio, cfg *Config, logger *slog.Logger) *Emitter {
	return &Emitter{
		stdin:          stdio.In,
		out:            bufio.NewWriter(stdio.Out),
		flushEachLine:  stdio.OutIsTerminal(),
		numberLines:    cfg.NumberLines,
		numberNonBlank: cfg.NumberNonBlank,
		logger:         logger,
	}
}

// Emit writes every input in cfg to stdio.Out and returns the exit code.
//
// An input that cannot be opened is reported and ends the run with
// ExitSuccess; inputs after it are not read. A read or write failure ends
// the run with ExitFailure.
func Emit(stdio *core.Stdio, cfg *Config, logger *slog.Logger) int {
	e := NewEmitter(stdio, cfg, logger)
	for _, name := range cfg.Inputs {
		err := e.EmitSource(NewSource(name))
		if err == nil {
			continue
		}

		var openErr *OpenError
		var readErr *ReadError
		switch {
		case errors.As(err, &openErr):
			stdio.Errorf("%s: %v\n", Name, err)
			logger.Debug("stopping after open failure", "input", name)
			return core.ExitSuccess
		case errors.As(err, &readErr):
			return core.FileError(stdio, Name, readErr.Name, readErr.Err)
		default:
			stdio.Errorf("%s: %v\n", Name, err)
			return core.ExitFailure
		}
	}
	return core.ExitSuccess
}

// EmitSource writes one source. Output is flushed before returning, so a
// diagnostic written afterwards follows the lines already emitted.
func (e *Emitter) EmitSource(src Source) error {
	r, err := src.Open(e.stdin)
	if err != nil {
		return &OpenError{Name: src.Name(), Err: err}
	}
	defer r.Close()
	e.logger.Debug("opened input", "input", src.Name(), "kind", src.Kind)

	lines, err := e.emitLines(src.Name(), r)
	if ferr := e.out.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("write error: %w", ferr)
	}
	e.logger.Debug("finished input", "input", src.Name(), "lines", lines, "err", err)
	return err
}

func (e *Emitter) emitLines(name string, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	lineNum := 1
	lines := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		lines++

		numbered := e.numberLines || (e.numberNonBlank && len(line) > 0)
		if err := e.writeLine(lineNum, line, numbered); err != nil {
			return lines, fmt.Errorf("write error: %w", err)
		}
		if numbered {
			lineNum++
		}
	}
	if err := scanner.Err(); err != nil {
		return lines, &ReadError{Name: name, Err: err}
	}
	return lines, nil
}

func (e *Emitter) writeLine(num int, line []byte, numbered bool) error {
	if numbered {
		if _, err := fmt.Fprintf(e.out, "%6d\t", num); err != nil {
			return err
		}
	}
	if _, err := e.out.Write(line); err != nil {
		return err
	}
	if err := e.out.WriteByte('\n'); err != nil {
		return err
	}
	if e.flushEachLine {
		return e.out.Flush()
	}
	return nil
}
