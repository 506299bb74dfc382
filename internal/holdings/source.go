package holdings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one holding as read from the outside world. Value is the raw
// market value text, e.g. "1,234,567" or "---" when no price is available.
type Entry struct {
	ID    string `yaml:"id"`
	Code  string `yaml:"code"`
	Value string `yaml:"value"`
}

// Source defines the interface for reading holdings.
type Source interface {
	Entries() ([]Entry, error)
	Name() string
}

// StaticSource returns a fixed list of entries, for development and testing.
type StaticSource struct {
	List []Entry
}

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) Entries() ([]Entry, error) {
	out := make([]Entry, len(s.List))
	copy(out, s.List)
	return out, nil
}

// FileSource reads entries from a YAML file of the form:
//
//	holdings:
//	  - id: viewItem1
//	    code: "03319172"
//	    value: "1,234,567"
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Name() string { return "file:" + f.Path }

func (f *FileSource) Entries() ([]Entry, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read holdings: %w", err)
	}
	var doc struct {
		Holdings []Entry `yaml:"holdings"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse holdings: %w", err)
	}
	return doc.Holdings, nil
}
