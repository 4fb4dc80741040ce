package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bleready/bleready/internal/domain"
)

// FileLoader implements domain.ResultLoader for YAML or JSON files.
// A document starting with '{' is decoded as JSON, anything else as YAML.
// Keys that do not map to a known field are rejected in both formats.
type FileLoader struct{}

// New creates a FileLoader.
func New() *FileLoader { return &FileLoader{} }

// Load reads and validates the validation result at path.
func (l *FileLoader) Load(path string) (*domain.ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a validation result document.
func Parse(data []byte) (*domain.ValidationResult, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", domain.ErrMalformedResult)
	}

	var result domain.ValidationResult
	if err := decode(data, &result); err != nil {
		return nil, fmt.Errorf("%w: parsing document: %v", domain.ErrMalformedResult, err)
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}
	return &result, nil
}

func decode(data []byte, out *domain.ValidationResult) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(out); err != nil {
			return err
		}
		if dec.More() {
			return errors.New("unexpected data after JSON document")
		}
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}
