package logging

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"
)

// Level orders the bracketed tags used in log lines, e.g. "[WARN] ..."
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var tags = map[string]Level{
	"DEBUG": LevelDebug,
	"INFO":  LevelInfo,
	"WARN":  LevelWarn,
	"ERROR": LevelError,
}

// ParseLevel maps a --log-level value to a Level
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		name = "WARN"
	}
	if level, ok := tags[name]; ok {
		return level, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", s)
}

// Writer drops lines tagged below its minimum level. Lines without a known
// tag are always written.
type Writer struct {
	out io.Writer
	min Level
}

func NewWriter(out io.Writer, min Level) *Writer {
	return &Writer{out: out, min: min}
}

func (w *Writer) Write(p []byte) (int, error) {
	if level, ok := lineLevel(p); ok && level < w.min {
		return len(p), nil
	}
	return w.out.Write(p)
}

// lineLevel reads the first bracketed tag of a line
func lineLevel(p []byte) (Level, bool) {
	start := bytes.IndexByte(p, '[')
	if start < 0 {
		return 0, false
	}
	end := bytes.IndexByte(p[start:], ']')
	if end < 0 {
		return 0, false
	}
	level, ok := tags[string(p[start+1:start+end])]
	return level, ok
}

// Setup routes the standard logger through a level filter
func Setup(out io.Writer, min Level) {
	log.SetOutput(NewWriter(out, min))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
