package tui

import (
	"log"

	"github.com/goliatone/go-memorymap/pkg/record"
)

// Exporter stores a local copy of r and returns where it went.
type Exporter func(r record.Record) (string, error)

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithLogger routes session logging to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithExporter enables the export action on the review step.
func WithExporter(fn Exporter) Option {
	return func(s *Session) {
		s.exporter = fn
	}
}

// WithFileReader overrides how photo paths are read.
func WithFileReader(read func(path string) ([]byte, error)) Option {
	return func(s *Session) {
		if read != nil {
			s.readFile = read
		}
	}
}
