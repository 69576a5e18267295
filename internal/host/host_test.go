package host

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestStdHostOutput(t *testing.T) {
	var buf bytes.Buffer
	h := NewStdHost(&buf, strings.NewReader(""))
	h.Output("hello")
	h.Output("world")
	if buf.String() != "hello\nworld\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestStdHostInput(t *testing.T) {
	h := NewStdHost(&bytes.Buffer{}, strings.NewReader("first\nsecond\n"))
	line, err := h.GetInput()
	if err != nil || line != "first" {
		t.Fatalf("got %q, %v", line, err)
	}
	line, err = h.GetInput()
	if err != nil || line != "second" {
		t.Fatalf("got %q, %v", line, err)
	}
	_, err = h.GetInput()
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestBufferHost(t *testing.T) {
	h := NewBufferHost("hello\n42")
	line, err := h.GetInput()
	if err != nil || line != "hello" {
		t.Fatalf("got %q, %v", line, err)
	}
	line, err = h.GetInput()
	if err != nil || line != "42" {
		t.Fatalf("got %q, %v", line, err)
	}

	h.Output("out1")
	h.Output("out2")
	if h.String() != "out1\nout2" {
		t.Errorf("got %q", h.String())
	}
}
