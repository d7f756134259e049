// Package output renders blueprints and catalog listings for the terminal,
// files, and machine-readable consumers.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format identifies a rendering of blueprint content.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("output: unknown format %q (want text, json, or yaml)", s)
	}
}

// document is the shape of structured (json/yaml) blueprint output.
type document struct {
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
}

// Render returns the blueprint content in the requested format. Text is the
// content verbatim; json and yaml wrap it with the blueprint name.
func Render(name, content string, format Format) (string, error) {
	switch format {
	case FormatText:
		return content, nil
	case FormatJSON:
		data, err := json.MarshalIndent(document{Name: name, Content: content}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("output: encode json: %w", err)
		}
		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(document{Name: name, Content: content})
		if err != nil {
			return "", fmt.Errorf("output: encode yaml: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("output: unknown format %q", format)
	}
}

// Write sends rendered output to the given file path, or to w when path is
// empty.
func Write(rendered, path string, w io.Writer) error {
	if path == "" {
		_, err := io.WriteString(w, rendered)
		return err
	}
	if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}
