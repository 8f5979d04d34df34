package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Manifest is the on-disk list of conversions, newest last.
type Manifest struct {
	Conversions []ConversionRecord `json:"conversions"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ManifestRecorder appends conversion records to a JSON manifest file.
type ManifestRecorder struct {
	manifest *Manifest
	filePath string
}

// NewManifestRecorder loads an existing manifest or starts an empty one.
func NewManifestRecorder(filePath string) (*ManifestRecorder, error) {
	m, err := LoadManifest(filePath)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	return &ManifestRecorder{manifest: m, filePath: filePath}, nil
}

func (r *ManifestRecorder) RecordConversion(rec *ConversionRecord) error {
	r.manifest.Conversions = append(r.manifest.Conversions, *rec)
	if err := SaveManifest(r.filePath, r.manifest); err != nil {
		return fmt.Errorf("save manifest: %w", err)
	}
	return nil
}

func (r *ManifestRecorder) Close() error { return nil }

// LoadManifest reads a manifest from a JSON file. Returns an empty manifest if the file doesn't exist.
func LoadManifest(filePath string) (*Manifest, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{}, nil
		}
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveManifest writes the manifest to a JSON file, creating its directory if needed.
func SaveManifest(filePath string, m *Manifest) error {
	m.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(filePath, data, 0o644)
}
