// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/disasteraid/beneficiary"
	"github.com/katalvlaran/disasteraid/core"
)

var (
	// ErrNotFound indicates a scenario path that does not exist.
	ErrNotFound = errors.New("scenario: file not found")

	// ErrUnknownKey indicates keys in the file that map to no field.
	ErrUnknownKey = errors.New("scenario: unknown key")

	// ErrNoCities indicates an empty city list.
	ErrNoCities = errors.New("scenario: no cities declared")

	// ErrDuplicateCity indicates the same city declared twice.
	ErrDuplicateCity = errors.New("scenario: duplicate city")

	// ErrMissingSource indicates an empty supply source.
	ErrMissingSource = errors.New("scenario: source is required")

	// ErrBadRoad indicates a road that cannot be added to the graph.
	ErrBadRoad = errors.New("scenario: invalid road")
)

// Road is one directed connection between two declared cities.
type Road struct {
	From     string `toml:"from"`
	To       string `toml:"to"`
	Distance int64  `toml:"distance"`
}

// Scenario is the decoded file. Policy is nil when the file has no [policy]
// table; EffectivePolicy then falls back to beneficiary.DefaultPolicy().
type Scenario struct {
	Source      string               `toml:"source"`
	Destination string               `toml:"destination"`
	Cities      []string             `toml:"cities"`
	Policy      *beneficiary.Policy  `toml:"policy"`
	Roads       []Road               `toml:"roads"`
	People      []beneficiary.Person `toml:"people"`
}

// Load decodes and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	var s Scenario
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("scenario: decode %s: %w", path, err)
	}

	return finish(&s, md)
}

// Decode reads a scenario from r and validates it.
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}

	return finish(&s, md)
}

func finish(s *Scenario, md toml.MetaData) (*Scenario, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// EffectivePolicy returns the file's policy or the default one.
func (s *Scenario) EffectivePolicy() beneficiary.Policy {
	if s.Policy == nil {
		return beneficiary.DefaultPolicy()
	}

	return *s.Policy
}

// Validate checks the whole scenario and joins every failure found.
// People whose city is not declared are accepted; routing reports them.
func (s *Scenario) Validate() error {
	var errs []error

	declared := make(map[string]bool, len(s.Cities))
	if len(s.Cities) == 0 {
		errs = append(errs, ErrNoCities)
	}
	for i, c := range s.Cities {
		switch {
		case strings.TrimSpace(c) == "":
			errs = append(errs, fmt.Errorf("city #%d: %w", i+1, core.ErrEmptyCityName))
		case declared[c]:
			errs = append(errs, fmt.Errorf("city #%d: %w: %q", i+1, ErrDuplicateCity, c))
		}
		declared[c] = true
	}

	for i, r := range s.Roads {
		if !declared[r.From] {
			errs = append(errs, fmt.Errorf("%w #%d: %w: %q", ErrBadRoad, i+1, core.ErrUnknownCity, r.From))
		}
		if !declared[r.To] {
			errs = append(errs, fmt.Errorf("%w #%d: %w: %q", ErrBadRoad, i+1, core.ErrUnknownCity, r.To))
		}
		if r.Distance < 0 {
			errs = append(errs, fmt.Errorf("%w #%d: %w: %d", ErrBadRoad, i+1, core.ErrNegativeWeight, r.Distance))
		}
	}

	if s.Source == "" {
		errs = append(errs, ErrMissingSource)
	} else if !declared[s.Source] {
		errs = append(errs, fmt.Errorf("source: %w: %q", core.ErrUnknownCity, s.Source))
	}
	if s.Destination != "" && !declared[s.Destination] {
		errs = append(errs, fmt.Errorf("destination: %w: %q", core.ErrUnknownCity, s.Destination))
	}

	if s.Policy != nil {
		if err := s.Policy.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := beneficiary.ValidateAll(s.People); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// BuildGraph binds cities to indices in declaration order and adds every road.
func (s *Scenario) BuildGraph() (*core.Graph, error) {
	g, err := core.NewGraph(len(s.Cities))
	if err != nil {
		return nil, err
	}
	for i, c := range s.Cities {
		if err := g.AssignCity(c, i); err != nil {
			return nil, fmt.Errorf("scenario: city %q: %w", c, err)
		}
	}
	for i, r := range s.Roads {
		if err := g.AddEdge(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("%w #%d: %w", ErrBadRoad, i+1, err)
		}
	}

	return g, nil
}
