package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"github.com/napolitain/proai/internal/ruleset"
)

// Supported ruleset file extensions
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtHCL  = ".hcl"
)

// LoadRuleset reads a ruleset file and builds it. The format is chosen from
// the file extension.
func LoadRuleset(path string) (*ruleset.Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ruleset: %w", err)
	}

	def, err := Decode(filepath.Base(path), data)
	if err != nil {
		return nil, err
	}

	r, err := ruleset.New(def)
	if err != nil {
		return nil, fmt.Errorf("failed to build ruleset %s: %w", filepath.Base(path), err)
	}
	return r, nil
}

// Decode parses a ruleset definition. name is only used to pick the format
// and in error messages.
func Decode(name string, data []byte) (ruleset.Definition, error) {
	var def ruleset.Definition

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ExtJSON:
		if err := json.Unmarshal(data, &def); err != nil {
			return def, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	case ExtYAML, ExtYML:
		if err := yaml.Unmarshal(data, &def); err != nil {
			return def, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	case ExtHCL:
		if err := hclsimple.Decode(name, data, nil, &def); err != nil {
			return def, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	default:
		return def, fmt.Errorf("unsupported ruleset format %q", ext)
	}

	return def, nil
}
