// SPDX-License-Identifier: MIT

package beneficiary

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for beneficiary records.
var (
	// ErrEmptyName indicates a person without a name.
	ErrEmptyName = errors.New("beneficiary: name is empty")

	// ErrNegativeAge indicates an age below zero.
	ErrNegativeAge = errors.New("beneficiary: age must be non-negative")

	// ErrInvalidGender indicates a gender other than female or male.
	ErrInvalidGender = errors.New("beneficiary: gender must be F or M")

	// ErrEmptyCity indicates a person without a home city.
	ErrEmptyCity = errors.New("beneficiary: city is empty")
)

// Gender of a beneficiary. The zero value is invalid.
type Gender int

const (
	// Female ranks before Male inside an age group.
	Female Gender = iota + 1
	// Male ranks after Female inside an age group.
	Male
)

// String returns "F", "M", or "?" for an invalid value.
func (g Gender) String() string {
	switch g {
	case Female:
		return "F"
	case Male:
		return "M"
	default:
		return "?"
	}
}

// Valid reports whether g is Female or Male.
func (g Gender) Valid() bool { return g == Female || g == Male }

// ParseGender accepts "F"/"M" or "female"/"male", case-insensitive, surrounding
// spaces ignored.
func ParseGender(s string) (Gender, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "F", "FEMALE":
		return Female, nil
	case "M", "MALE":
		return Male, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g Gender) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGender, int(g))
	}

	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseGender.
func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed

	return nil
}

// Person is one beneficiary. It is a plain value; the package never mutates it.
// Two persons with the same name are distinct records.
type Person struct {
	Name   string `toml:"name"`
	Age    int    `toml:"age"`
	Gender Gender `toml:"gender"`
	City   string `toml:"city"`
}

// Validate reports the first field that breaks the record's rules.
func (p Person) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return ErrEmptyName
	case p.Age < 0:
		return fmt.Errorf("%w: %s is %d", ErrNegativeAge, p.Name, p.Age)
	case !p.Gender.Valid():
		return fmt.Errorf("%w: %s", ErrInvalidGender, p.Name)
	case strings.TrimSpace(p.City) == "":
		return fmt.Errorf("%w: %s", ErrEmptyCity, p.Name)
	}

	return nil
}

// ValidateAll validates every person and joins all failures, each prefixed
// with the record's position.
func ValidateAll(people []Person) error {
	var errs []error
	for i, p := range people {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("person #%d: %w", i+1, err))
		}
	}

	return errors.Join(errs...)
}
