// Package settingsfile loads and saves shipping settings as YAML documents for the CLI.
package settingsfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"

	"gopkg.in/yaml.v3"
)

// Decode reads a settings document. Unknown keys are rejected so typos in
// profile names do not silently fall back to defaults. Numeric fields are
// kept as written.
func Decode(r io.Reader) (settings.ShippingSettings, error) {
	var s settings.ShippingSettings

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return settings.ShippingSettings{}, nil
		}
		return settings.ShippingSettings{}, fmt.Errorf("decode settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return settings.ShippingSettings{}, err
	}

	return s, nil
}

// Load reads the settings file at path. An empty path yields settings.Default().
func Load(path string) (settings.ShippingSettings, error) {
	if path == "" {
		return settings.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return settings.ShippingSettings{}, fmt.Errorf("open settings file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode renders s as a YAML document.
func Encode(s settings.ShippingSettings) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}

	return buf.Bytes(), nil
}
