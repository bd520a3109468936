package schedule

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/stopbook/backend/internal/domain"
)

//go:embed directions.yaml
var defaultDirections []byte

type directionDoc struct {
	Outbound []string `yaml:"outbound" validate:"dive,required"`
	Inbound  []string `yaml:"inbound" validate:"dive,required"`
}

// DirectionTable classifies trips by the name of their terminal station.
type DirectionTable struct {
	byTerminal map[string]domain.Direction
}

// LoadDirections parses the embedded direction table.
func LoadDirections() (*DirectionTable, error) {
	return ParseDirections(defaultDirections)
}

// ParseDirections builds a DirectionTable from YAML. A terminal listed under
// both directions is an error.
func ParseDirections(data []byte) (*DirectionTable, error) {
	var doc directionDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schedule.ParseDirections: decode: %w", err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("schedule.ParseDirections: validate: %w", err)
	}

	t := &DirectionTable{byTerminal: make(map[string]domain.Direction, len(doc.Outbound)+len(doc.Inbound))}
	add := func(names []string, d domain.Direction) error {
		for _, n := range names {
			if prev, ok := t.byTerminal[n]; ok && prev != d {
				return fmt.Errorf("schedule.ParseDirections: terminal %q listed as both %s and %s", n, prev, d)
			}
			t.byTerminal[n] = d
		}
		return nil
	}
	if err := add(doc.Outbound, domain.DirectionOutbound); err != nil {
		return nil, err
	}
	if err := add(doc.Inbound, domain.DirectionInbound); err != nil {
		return nil, err
	}
	return t, nil
}

// Classify returns the direction of a train ending at terminal. ok is false
// when the terminal is unknown or empty.
func (t *DirectionTable) Classify(terminal string) (domain.Direction, bool) {
	if t == nil || terminal == "" {
		return "", false
	}
	d, ok := t.byTerminal[terminal]
	return d, ok
}

// Match reports whether e passes the direction filter want. Everything
// matches DirectionAll; unclassifiable entries match nothing else.
func (t *DirectionTable) Match(e domain.ScheduleEntry, want domain.Direction) bool {
	if want == "" || want == domain.DirectionAll {
		return true
	}
	got, ok := t.Classify(e.TerminalStationName)
	return ok && got == want
}
