// file: cmd/logging.go
// version: 1.0.0
// guid: 6a0c3c1e-2f4d-4b8e-9a51-3c7e2d90b4f1

package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
)

var logLevels = map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}

// levelWriter drops log lines tagged below the configured level. Untagged
// lines always pass.
type levelWriter struct {
	out io.Writer
	min int
}

func (w levelWriter) Write(p []byte) (int, error) {
	if lvl, ok := lineLevel(p); ok && lvl < w.min {
		return len(p), nil
	}
	return w.out.Write(p)
}

// lineLevel finds the first [LEVEL] tag in a formatted log line.
func lineLevel(p []byte) (int, bool) {
	start := bytes.IndexByte(p, '[')
	if start < 0 {
		return 0, false
	}
	end := bytes.IndexByte(p[start:], ']')
	if end < 0 {
		return 0, false
	}
	tag := string(bytes.ToLower(p[start+1 : start+end]))
	if tag == "warning" {
		tag = "warn"
	}
	lvl, ok := logLevels[tag]
	return lvl, ok
}

func setupLogging(level string) {
	min, ok := logLevels[level]
	if !ok {
		min = logLevels["info"]
	}
	log.SetOutput(levelWriter{out: os.Stderr, min: min})
}
