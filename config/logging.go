package config

import (
	"io"
	"log"
	"os"
)

// RedirectLog sends the standard logger to path, or discards it when path
// is empty. The returned func puts the logger back on stderr.
func RedirectLog(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("[WARN] cannot open log file %s: %v", path, err)
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}
