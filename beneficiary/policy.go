// SPDX-License-Identifier: MIT

package beneficiary

import (
	"errors"
	"fmt"
)

// Default age thresholds.
const (
	DefaultChildMaxAge = 12
	DefaultElderMinAge = 60
)

// ErrBadPolicy indicates thresholds that do not split ages into three groups.
var ErrBadPolicy = errors.New("beneficiary: invalid age policy")

// AgeGroup is the most significant ranking key. Lower values rank first.
type AgeGroup int

const (
	Children AgeGroup = iota
	Elders
	Adults
)

// String returns the group's plural name.
func (g AgeGroup) String() string {
	switch g {
	case Children:
		return "children"
	case Elders:
		return "elders"
	case Adults:
		return "adults"
	default:
		return fmt.Sprintf("AgeGroup(%d)", int(g))
	}
}

// Policy holds the age thresholds used by ranking.
type Policy struct {
	ChildMaxAge int `toml:"child_max_age"` // ages ≤ ChildMaxAge are children
	ElderMinAge int `toml:"elder_min_age"` // ages ≥ ElderMinAge are elders
}

// PolicyOption adjusts a Policy built by NewPolicy.
type PolicyOption func(*Policy)

// WithChildMaxAge sets the oldest age still counted as a child.
func WithChildMaxAge(age int) PolicyOption {
	return func(p *Policy) { p.ChildMaxAge = age }
}

// WithElderMinAge sets the youngest age counted as an elder.
func WithElderMinAge(age int) PolicyOption {
	return func(p *Policy) { p.ElderMinAge = age }
}

// DefaultPolicy returns the 12/60 thresholds.
func DefaultPolicy() Policy {
	return Policy{ChildMaxAge: DefaultChildMaxAge, ElderMinAge: DefaultElderMinAge}
}

// NewPolicy applies opts on top of DefaultPolicy and validates the result.
func NewPolicy(opts ...PolicyOption) (Policy, error) {
	p := DefaultPolicy()
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	return p, nil
}

// Validate requires 0 ≤ ChildMaxAge < ElderMinAge.
func (p Policy) Validate() error {
	if p.ChildMaxAge < 0 || p.ElderMinAge < 0 {
		return fmt.Errorf("%w: negative threshold (child ≤ %d, elder ≥ %d)", ErrBadPolicy, p.ChildMaxAge, p.ElderMinAge)
	}
	if p.ChildMaxAge >= p.ElderMinAge {
		return fmt.Errorf("%w: child max age %d must be below elder min age %d", ErrBadPolicy, p.ChildMaxAge, p.ElderMinAge)
	}

	return nil
}

// Group classifies age.
func (p Policy) Group(age int) AgeGroup {
	switch {
	case age <= p.ChildMaxAge:
		return Children
	case age >= p.ElderMinAge:
		return Elders
	default:
		return Adults
	}
}

// Less reports whether a ranks strictly before b.
func (p Policy) Less(a, b Person) bool {
	ga, gb := p.Group(a.Age), p.Group(b.Age)
	if ga != gb {
		return ga < gb
	}
	if a.Gender != b.Gender {
		return a.Gender == Female
	}
	if a.Age != b.Age {
		if ga == Children {
			return a.Age < b.Age
		}
		return a.Age > b.Age
	}

	return a.Name < b.Name
}
