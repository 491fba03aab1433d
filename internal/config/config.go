package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rtomasi/animbind/internal/model"
)

// Decode parses a group configuration from data. The configuration may
// be a single group object or a sequence of them, encoded as JSON or
// YAML; the encoding is detected from the content.
func Decode(data []byte) ([]model.GroupSpec, error) {
	if looksLikeJSON(data) {
		return decodeJSON(data)
	}
	return decodeYAML(data)
}

// DecodeFile parses a group configuration from a file, choosing the
// decoder by extension (.yaml/.yml for YAML, anything else JSON).
func DecodeFile(path string) ([]model.GroupSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

// DecodeSource parses a configuration supplied either inline or as a
// file path. A source starting with '{' or '[' is inline JSON;
// anything else is read as a file via DecodeFile.
func DecodeSource(src string) ([]model.GroupSpec, error) {
	if looksLikeJSON([]byte(src)) {
		return decodeJSON([]byte(src))
	}
	return DecodeFile(src)
}

// DecodeDocument parses a remote configuration document: the envelope
// carrying version fields and the groups list. Remote documents are
// always JSON.
func DecodeDocument(data []byte) (*model.Document, error) {
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &doc, nil
}

func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

func decodeJSON(data []byte) ([]model.GroupSpec, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var specs []model.GroupSpec
		if err := json.Unmarshal(data, &specs); err != nil {
			return nil, fmt.Errorf("parse group list: %w", err)
		}
		return specs, nil
	}

	var spec model.GroupSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse group: %w", err)
	}
	return []model.GroupSpec{spec}, nil
}

func decodeYAML(data []byte) ([]model.GroupSpec, error) {
	// A YAML document is either a sequence of groups or a single
	// mapping; try the sequence form first.
	var specs []model.GroupSpec
	seqErr := yaml.Unmarshal(data, &specs)
	if seqErr == nil {
		return specs, nil
	}

	var spec model.GroupSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse group config: %w", seqErr)
	}
	return []model.GroupSpec{spec}, nil
}
