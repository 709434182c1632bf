package config

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/jo/hyperwood/hef"
)

// ErrUnknownStock is returned when a stock preset is requested by a name
// no settings file defines.
var ErrUnknownStock = errors.New("unknown stock")

// Settings is the merged result of all settings files. Empty strings mean
// "not set" so that command-line flags and built-in defaults can fill in.
type Settings struct {
	LogLevel  string
	LogFormat string
	Listen    string
	Stocks    map[string]*Stock
}

// Stock is a named variant preset.
type Stock struct {
	Name        string
	Description string
	Variant     hef.Variant
}

// NewSettings returns empty settings.
func NewSettings() *Settings {
	return &Settings{Stocks: make(map[string]*Stock)}
}

// AddStock registers a preset, rejecting duplicates and factors that are
// not finite and positive.
func (s *Settings) AddStock(stock *Stock) error {
	if stock.Name == "" {
		return errors.New("stock name must not be empty")
	}
	if _, exists := s.Stocks[stock.Name]; exists {
		return fmt.Errorf("stock %q defined more than once", stock.Name)
	}
	for axis, f := range map[string]float64{"x": stock.Variant.X, "y": stock.Variant.Y, "z": stock.Variant.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			return fmt.Errorf("stock %q: %s must be a positive number, got %v", stock.Name, axis, f)
		}
	}
	s.Stocks[stock.Name] = stock
	return nil
}

// Stock looks a preset up by name.
func (s *Settings) Stock(name string) (*Stock, error) {
	if stock, ok := s.Stocks[name]; ok {
		return stock, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownStock, name)
}

// StockNames lists preset names in sorted order.
func (s *Settings) StockNames() []string {
	names := make([]string, 0, len(s.Stocks))
	for name := range s.Stocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
