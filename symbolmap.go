package pricedb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// SymbolMap maps commodities to explicit provider symbols, tried in order.
//
// In YAML, a commodity maps either to one symbol or to a list:
//
//	VWCE: VWCE.XETRA
//	GOLD: [XAUUSD.FOREX, GLD.US]
type SymbolMap map[string]Symbols

// Symbols is a list of provider symbols.
type Symbols []string

// UnmarshalYAML accepts a scalar or a sequence.
func (s *Symbols) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*s = Symbols{value.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("line %d: symbols must be a string or a list of strings", value.Line)
	}
}

// LoadSymbolMap reads a symbol map file. An empty path is an empty map.
func LoadSymbolMap(path string) (SymbolMap, error) {
	if path == "" {
		return SymbolMap{}, nil
	}
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("symbol map %q does not exist", path)
	}
	if err != nil {
		return nil, err
	}
	m := SymbolMap{}
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("could not parse symbol map %q: %w", path, err)
	}
	return m, nil
}
