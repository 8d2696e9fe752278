// Package pipeline streams a text file through the aligner, one output
// line per fixed-size chunk, and reports the run as a status string.
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/logos-dual/internal/align"
)

// ChunkSize is the number of runes handed to the aligner at a time.
const ChunkSize = 1024

// Status is the terminal outcome string of a run. Callers parse it, so
// the values are fixed.
type Status string

const (
	StatusFileNotFound Status = "ERROR_FILE_NOT_FOUND"
	StatusSuccess      Status = "SUCCESS_ABSOLUTE_NATURALNESS_CONFIRMED"

	failurePrefix = "SYSTEM_CRITICAL_FAILURE: "
)

// FailureStatus embeds err in the failure status.
func FailureStatus(err error) Status {
	return Status(failurePrefix + err.Error())
}

// Failed reports whether s is a failure status.
func (s Status) Failed() bool {
	return strings.HasPrefix(string(s), failurePrefix)
}

// Result describes a finished run.
type Result struct {
	Status Status
	Chunks int   // lines written
	Err    error // *Error on failure, nil otherwise
}

// Pipeline drives the read/align/write loop.
type Pipeline struct {
	engine *align.Engine
	logger *slog.Logger
}

// New creates a pipeline. A nil logger uses slog.Default().
func New(engine *align.Engine, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{engine: engine, logger: logger}
}

// Execute aligns inputPath chunk by chunk into outputPath.
// An input that cannot be stat'ed for any reason counts as missing and is
// reported before any file is opened. Any other failure stops the run;
// lines already written are left in place. The output is created 0644.
func (p *Pipeline) Execute(inputPath, outputPath string) Result {
	if _, err := os.Stat(inputPath); err != nil {
		p.logger.Warn("input not found", "path", inputPath, "error", err)
		return Result{Status: StatusFileNotFound}
	}

	log := p.logger.With("run", uuid.NewString())
	n, err := p.run(log, inputPath, outputPath)
	if err != nil {
		log.Error("pipeline failed", "chunks", n, "error", err)
		return Result{Status: FailureStatus(err), Chunks: n, Err: err}
	}

	log.Info("pipeline complete", "chunks", n, "output", outputPath)
	return Result{Status: StatusSuccess, Chunks: n}
}

func (p *Pipeline) run(log *slog.Logger, inputPath, outputPath string) (n int, err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, ioError("open input", -1, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, ioError("stat input", -1, err)
	}
	if info.IsDir() {
		return 0, ioError("open input", -1, fmt.Errorf("%s: is a directory", inputPath))
	}
	log.Info("aligning input",
		"path", inputPath,
		"size", humanize.Bytes(uint64(info.Size())),
		"chunk_runes", ChunkSize,
	)

	out, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, ioError("open output", -1, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = ioError("close output", -1, cerr)
		}
	}()

	w := bufio.NewWriter(out)
	n, err = p.stream(log, newTextReader(in), w)
	// Flush on failure too so completed lines reach the file.
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ioError("flush output", -1, ferr)
	}
	return n, err
}

// stream writes one formatted line per chunk of r and returns the number
// of lines written.
func (p *Pipeline) stream(log *slog.Logger, r io.Reader, w io.Writer) (int, error) {
	chunks := NewChunkReader(r, ChunkSize)
	debug := log.Enabled(context.Background(), slog.LevelDebug)
	line := make([]byte, 0, 64)

	for n := 0; ; n++ {
		chunk, err := chunks.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, readError(n, err)
		}

		v, err := p.engine.Align(chunk)
		if err != nil {
			return n, classify("align", n, err)
		}
		if debug {
			if rep, err := p.engine.Inspect(chunk); err == nil {
				log.Debug("chunk aligned", "chunk", n, "runes", utf8.RuneCountInString(chunk), "report", rep)
			}
		}

		line = append(appendResult(line[:0], v), '\n')
		if _, err := w.Write(line); err != nil {
			return n, ioError("write", n, err)
		}
	}
}

// FormatResult renders v the way it appears in the output file: fixed
// point with exactly 20 fractional digits.
func FormatResult(v float64) string {
	return string(appendResult(nil, v))
}

func appendResult(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'f', 20, 64)
}
