// Package classes provides named character classes for grammar authors:
// the builtin POSIX-style ASCII classes plus user-defined classes loaded
// from a YAML definitions file. Definitions resolve in order, so a class
// may include any class defined before it.
package classes

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/lexfang/pkg/alg/mapx"
	"github.com/Sumatoshi-tech/lexfang/pkg/charset"
)

// Validation errors.
var (
	ErrDuplicateClass = errors.New("duplicate class name")
	ErrUnknownClass   = errors.New("unknown class")
	ErrBadRange       = errors.New("malformed range")
	ErrMissingName    = errors.New("class definition without a name")
)

// Definition is one class entry in a definitions file.
type Definition struct {
	Name    string   `yaml:"name"`
	Chars   string   `yaml:"chars,omitempty"`
	Ranges  []string `yaml:"ranges,omitempty"`
	Include []string `yaml:"include,omitempty"`
}

// File is the top-level definitions document.
type File struct {
	Classes []Definition `yaml:"classes"`
}

// Registry maps class names to character sets.
type Registry struct {
	sets map[string]charset.Set
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sets: map[string]charset.Set{}}
}

// Builtin returns a registry seeded with the POSIX-style ASCII classes.
func Builtin() *Registry {
	r := NewRegistry()

	lower := charset.FromRange('a', 'z')
	upper := charset.FromRange('A', 'Z')
	digit := charset.FromRange('0', '9')
	alpha := lower.Union(upper)
	alnum := alpha.Union(digit)
	graph := charset.FromRange('!', '~')

	builtins := []struct {
		name string
		set  charset.Set
	}{
		{"lower", lower},
		{"upper", upper},
		{"digit", digit},
		{"alpha", alpha},
		{"alnum", alnum},
		{"xdigit", digit.Union(charset.FromRange('a', 'f')).Union(charset.FromRange('A', 'F'))},
		{"space", charset.FromString(" \t\n\v\f\r")},
		{"graph", graph},
		{"punct", graph.Difference(alnum)},
		{"word", alnum.Add('_')},
		{"ascii", charset.FromRange(0, 0x7F)},
	}

	for _, b := range builtins {
		// Builtin names are unique by construction.
		_ = r.Define(b.name, b.set)
	}

	return r
}

// Define registers a class under name.
func (r *Registry) Define(name string, set charset.Set) error {
	if name == "" {
		return ErrMissingName
	}

	if _, ok := r.sets[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateClass, name)
	}

	r.sets[name] = set

	return nil
}

// Lookup returns the class registered under name.
func (r *Registry) Lookup(name string) (charset.Set, bool) {
	s, ok := r.sets[name]

	return s, ok
}

// Names returns all registered class names, sorted.
func (r *Registry) Names() []string {
	return mapx.SortedKeys(r.sets)
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	return len(r.sets)
}

// LoadFile reads a YAML definitions file and registers its classes.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading class definitions: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing class definitions: %w", err)
	}

	return r.LoadDefinitions(f.Classes)
}

// LoadDefinitions resolves and registers definitions in order. Each
// definition may include builtins or classes defined earlier in the
// slice.
func (r *Registry) LoadDefinitions(defs []Definition) error {
	for _, def := range defs {
		set, err := r.resolve(def)
		if err != nil {
			return fmt.Errorf("class %q: %w", def.Name, err)
		}

		if err := r.Define(def.Name, set); err != nil {
			return err
		}
	}

	return nil
}

func (r *Registry) resolve(def Definition) (charset.Set, error) {
	set := charset.FromString(def.Chars)

	for _, spec := range def.Ranges {
		lo, hi, err := ParseRange(spec)
		if err != nil {
			return charset.Set{}, err
		}

		set = set.AddRange(lo, hi)
	}

	for _, name := range def.Include {
		inc, ok := r.Lookup(name)
		if !ok {
			return charset.Set{}, fmt.Errorf("%w: %q", ErrUnknownClass, name)
		}

		set = set.Union(inc)
	}

	return set, nil
}

// ParseRange parses a range expression of the form "a-z" into its
// inclusive bounds.
func ParseRange(spec string) (rune, rune, error) {
	rs := []rune(spec)
	if len(rs) != 3 || rs[1] != '-' {
		return 0, 0, fmt.Errorf("%w: %q (want \"lo-hi\")", ErrBadRange, spec)
	}

	lo, hi := rs[0], rs[2]
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: %q (bounds inverted)", ErrBadRange, spec)
	}

	return lo, hi, nil
}
