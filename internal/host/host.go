// Package host provides the line-buffered I/O abstraction the evaluator
// consumes: a standard-output sink and an input source, kept outside the
// evaluator so tests can swap in an in-memory Host without touching the OS.
package host

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Host is the external collaborator the evaluator talks to for print and
// input statements. Output writes one whole line at a time and must be
// flushed before the next call becomes observable; GetInput reads one
// whole line, without its trailing newline.
type Host interface {
	Output(line string)
	GetInput() (string, error)
}

// StdHost backs Host with the process's real stdout/stdin.
type StdHost struct {
	out *bufio.Writer
	in  *bufio.Scanner
}

// NewStdHost wires a Host to the given writer and reader, mirroring the
// native console abstraction of a platform layer: output is line buffered
// and flushed after every write, input is scanned line by line.
func NewStdHost(out io.Writer, in io.Reader) *StdHost {
	return &StdHost{
		out: bufio.NewWriter(out),
		in:  bufio.NewScanner(in),
	}
}

// Output writes line followed by a newline and flushes immediately.
func (h *StdHost) Output(line string) {
	fmt.Fprintln(h.out, line)
	h.out.Flush()
}

// GetInput reads the next line from the input source.
func (h *StdHost) GetInput() (string, error) {
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return h.in.Text(), nil
}

// BufferHost backs Host with in-memory buffers, for tests and fixtures
// that should not touch the OS.
type BufferHost struct {
	Lines []string
	input []string
	pos   int
}

// NewBufferHost creates a BufferHost whose GetInput calls return the given
// input lines in order.
func NewBufferHost(input string) *BufferHost {
	bh := &BufferHost{}
	if input != "" {
		bh.input = strings.Split(strings.TrimRight(input, "\n"), "\n")
	}
	return bh
}

// Output records line for later inspection via Lines.
func (h *BufferHost) Output(line string) {
	h.Lines = append(h.Lines, line)
}

// GetInput returns the next buffered input line.
func (h *BufferHost) GetInput() (string, error) {
	if h.pos >= len(h.input) {
		return "", io.EOF
	}
	line := h.input[h.pos]
	h.pos++
	return line, nil
}

// String joins every output line, one per line, the way a terminal would
// render them.
func (h *BufferHost) String() string {
	return strings.Join(h.Lines, "\n")
}
