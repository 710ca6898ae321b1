package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	type spec struct {
		in       string
		out      Level
		expError bool
	}
	specs := []spec{
		{"debug", Debug, false},
		{" Warning ", Warning, false},
		{"ERROR", Error, false},
		{"chatty", Notice, true},
	}

	for idx, s := range specs {
		level, err := ParseLevel(s.in)
		if s.expError {
			if err == nil {
				t.Fatalf("[spec %d] expected an error", idx)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", idx, err)
		}
		if level != s.out {
			t.Fatalf("[spec %d] expected level %d; got %d", idx, s.out, level)
		}
	}
}

func TestSinkAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetSink(os.Stderr)
		SetLevel(Notice)
	}()

	logger := New("test")
	SetLevel(Warning)
	logger.Infof("hidden %d", 1)
	logger.Warningf("visible %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden 1") {
		t.Fatalf("expected info message to be filtered; got %q", out)
	}
	if !strings.Contains(out, "visible 2") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected warning message tagged with module name; got %q", out)
	}
}
