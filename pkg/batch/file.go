package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/telvenn/hookbatch/pkg/match"
	"github.com/telvenn/hookbatch/pkg/queue"
	"github.com/telvenn/hookbatch/pkg/registry"
)

// File is the YAML shape of a batch definition. File entries can express
// constant injections and class-method removals; callback references are
// process-local values and cannot appear in a file.
type File struct {
	DefaultPriority *int         `yaml:"default_priority,omitempty"`
	Deferred        *FileBinding `yaml:"deferred,omitempty"`
	Entries         []FileEntry  `yaml:"entries"`
}

// FileBinding names the hook and priority a deferred batch executes at.
type FileBinding struct {
	Hook     string `yaml:"hook"`
	Priority int    `yaml:"priority"`
}

// FileEntry is one entry of a batch file.
type FileEntry struct {
	Hook     string     `yaml:"hook"`
	Constant *bool      `yaml:"constant,omitempty"`
	Class    string     `yaml:"class,omitempty"`
	Method   string     `yaml:"method,omitempty"`
	Priority *int       `yaml:"priority,omitempty"`
	Match    *FileMatch `yaml:"match,omitempty"`
}

// FileMatch configures class-name matching for a file entry.
type FileMatch struct {
	Strict        bool `yaml:"strict"`
	CaseSensitive bool `yaml:"case_sensitive"`
}

// Parse decodes a YAML batch definition.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileParse, err)
	}
	return &f, nil
}

// LoadFile reads and parses a batch file from disk.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return Parse(data)
}

// StructuredEntries converts the file entries to builder entries.
func (f *File) StructuredEntries() []StructuredEntry {
	entries := make([]StructuredEntry, 0, len(f.Entries))
	for _, fe := range f.Entries {
		entries = append(entries, fe.structured())
	}
	return entries
}

// Validate checks every entry and returns one error per problem, in entry
// order. An empty slice means the file is well-formed.
func (f *File) Validate() []error {
	var errs []error
	for i, fe := range f.Entries {
		if _, err := fe.structured().toEntry(); err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
		}
	}
	if f.Deferred != nil && f.Deferred.Hook == "" {
		errs = append(errs, fmt.Errorf("deferred binding: %w", ErrMissingHook))
	}
	return errs
}

// Build constructs, fills, and commits a queue from the file, applying its
// default priority and deferred binding. Same contract as BuildStructured.
func (f *File) Build(reg registry.Registry, opts ...Option) *queue.Queue {
	var queueOpts []queue.Option
	if f.DefaultPriority != nil {
		queueOpts = append(queueOpts, queue.WithDefaultPriority(*f.DefaultPriority))
	}
	if f.Deferred != nil {
		queueOpts = append(queueOpts, queue.WithDeferredBinding(queue.DeferredBinding{
			Hook:     f.Deferred.Hook,
			Priority: f.Deferred.Priority,
		}))
	}
	opts = append(opts, WithQueueOptions(queueOpts...))
	return BuildStructured(reg, f.StructuredEntries(), opts...)
}

func (fe FileEntry) structured() StructuredEntry {
	se := StructuredEntry{
		Hook:     fe.Hook,
		Constant: fe.Constant,
		Class:    fe.Class,
		Method:   fe.Method,
		Priority: fe.Priority,
	}
	if fe.Match != nil {
		se.Match = &match.Options{
			Strict:        fe.Match.Strict,
			CaseSensitive: fe.Match.CaseSensitive,
		}
	}
	return se
}
