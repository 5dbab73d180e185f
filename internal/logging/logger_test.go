package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("greeter", &buf)
	logger.Print("listening")

	out := buf.String()
	if !strings.HasPrefix(out, "[greeter] ") {
		t.Errorf("expected component prefix, got %q", out)
	}
	if !strings.Contains(out, "listening") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestNewWithWriter_NoComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("", &buf)
	logger.Print("hi")

	if strings.HasPrefix(buf.String(), "[") {
		t.Errorf("expected no prefix, got %q", buf.String())
	}
}
