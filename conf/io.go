package conf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the file at path, parses it, and replaces the entire tree
// with the parsed document. An empty path falls back to the path bound
// at construction; ErrNoPath is returned when neither is set.
//
// The format is chosen by file extension (.json, .toml, .yaml/.yml),
// then by content detection, defaulting to JSON. A missing file yields
// ErrNotFound, malformed content ErrParse.
func (s *Store) Load(path string) error {
	target := path
	if target == "" {
		target = s.path
	}
	if target == "" {
		return ErrNoPath
	}

	data, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, target)
		}
		return fmt.Errorf("failed to read config file %q: %w", target, err)
	}

	format := detectFileFormat(target)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			format = "json"
		}
	}

	tree := make(map[string]any)
	var order []string

	switch format {
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // preserve number precision
		if err := decoder.Decode(&tree); err != nil {
			return fmt.Errorf("%w: JSON file %q: %w", ErrParse, target, err)
		}
		order = topLevelJSONKeys(data)
	case "toml":
		md, err := toml.Decode(string(data), &tree)
		if err != nil {
			return fmt.Errorf("%w: TOML file %q: %w", ErrParse, target, err)
		}
		for _, key := range md.Keys() {
			if len(key) == 1 {
				order = append(order, key[0])
			}
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return fmt.Errorf("%w: YAML file %q: %w", ErrParse, target, err)
		}
		order = sortedKeys(tree)
	}

	s.setTree(tree, order)
	return nil
}

// Save serializes the tree to the file at path as pretty-printed JSON
// (2-space indent, non-ASCII characters unescaped), creating any missing
// parent directories. The write is atomic: a temp file in the target
// directory is renamed over the destination. An empty path falls back to
// the bound path; ErrNoPath is returned when neither is set.
func (s *Store) Save(path string) error {
	target := path
	if target == "" {
		target = s.path
	}
	if target == "" {
		return ErrNoPath
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.tree); err != nil {
		return fmt.Errorf("failed to marshal config data to JSON: %w", err)
	}

	return atomicWriteFile(target, buf.Bytes())
}

// atomicWriteFile performs atomic file write.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// detectFileFormat determines format from file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".toml", ".tml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing.
func detectFormatFromContent(data []byte) string {
	// JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// TOML before YAML: YAML accepts nearly any scalar document
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}

// topLevelJSONKeys walks the token stream of a JSON object and returns
// its top-level keys in document order, deduplicated. It returns nil for
// anything that is not an object; the caller has already decoded the
// document, so errors here only cost key ordering.
func topLevelJSONKeys(data []byte) []string {
	decoder := json.NewDecoder(bytes.NewReader(data))

	tok, err := decoder.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	var keys []string
	seen := make(map[string]bool)
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil
		}
		if !seen[key] {
			keys = append(keys, key)
			seen[key] = true
		}
		if err := skipJSONValue(decoder); err != nil {
			return nil
		}
	}
	return keys
}

// skipJSONValue consumes one value, descending through nested objects
// and arrays.
func skipJSONValue(decoder *json.Decoder) error {
	tok, err := decoder.Token()
	if err != nil {
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil // scalar
	}

	for decoder.More() {
		if delim == '{' {
			if _, err := decoder.Token(); err != nil { // key
				return err
			}
		}
		if err := skipJSONValue(decoder); err != nil {
			return err
		}
	}

	_, err = decoder.Token() // closing delimiter
	return err
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}
