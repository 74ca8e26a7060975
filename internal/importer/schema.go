package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CaseFile is the top-level structure of a triage case file.
type CaseFile struct {
	Name     string       `json:"name" yaml:"name"`
	Language string       `json:"language,omitempty" yaml:"language,omitempty"`
	Cases    []CaseImport `json:"cases" yaml:"cases"`
}

// CaseImport is one named selection in a case file. Symptoms may be ids,
// English display names or aliases.
type CaseImport struct {
	Name     string        `json:"name" yaml:"name"`
	Symptoms []string      `json:"symptoms" yaml:"symptoms"`
	Other    string        `json:"other,omitempty" yaml:"other,omitempty"`
	Expect   *ExpectImport `json:"expect,omitempty" yaml:"expect,omitempty"`
}

// ExpectImport is the outcome a case asserts.
type ExpectImport struct {
	Severity string `json:"severity" yaml:"severity"`
	Rule     string `json:"rule,omitempty" yaml:"rule,omitempty"`
}

// Format is a case file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported case file extension %q (expected .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// LoadCaseFile reads and parses a case file.
func LoadCaseFile(path string) (*CaseFile, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCaseFile(data, format)
}

// ParseCaseFile decodes data in the given format. Unknown fields are errors,
// so typos in expectations do not silently pass.
func ParseCaseFile(data []byte, format Format) (*CaseFile, error) {
	var file CaseFile
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing case file: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing case file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown case file format %q", format)
	}
	return &file, nil
}
