// Package manifest defines the YAML generation manifest consumed by
// propgen: which packages to analyze and which types to generate
// accessors for.
package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"property-mapper/property"
)

// File represents the root of a propgen manifest.
type File struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Packages lists the packages to analyze and their property types.
	Packages []Package `yaml:"packages"`

	// Output controls where and how generated files are written.
	Output Output `yaml:"output,omitempty"`
}

// Package names one Go package and the property types declared in it.
type Package struct {
	// Path is a standard Go package pattern (e.g. "./examples/bucket").
	Path string `yaml:"path"`

	// Types lists the property types to generate for.
	Types []TypeDef `yaml:"types"`
}

// TypeDef names one struct type and its kind.
type TypeDef struct {
	// Name of the struct type within the package.
	Name string `yaml:"name"`

	// Kind is "input" or "output".
	Kind string `yaml:"kind"`
}

// Output holds generation output settings.
type Output struct {
	// Suffix of generated files, "_props.go" when empty.
	Suffix string `yaml:"suffix,omitempty"`
}

// DefaultSuffix is used when the manifest does not set one.
const DefaultSuffix = "_props.go"

// Parse decodes a manifest from YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &f, nil
}

// Suffix returns the effective generated-file suffix.
func (f *File) Suffix() string {
	if f.Output.Suffix == "" {
		return DefaultSuffix
	}
	return f.Output.Suffix
}

// KindEnum maps the manifest kind string onto the property kind tag.
func (t TypeDef) KindEnum() property.KindEnum {
	switch t.Kind {
	case "input":
		return property.KindInput
	case "output":
		return property.KindOutput
	default:
		return property.KindUnknown
	}
}

// Validate checks the manifest for structural problems. It returns all
// problems found, not just the first.
func (f *File) Validate() []error {
	var errs []error

	if len(f.Packages) == 0 {
		errs = append(errs, fmt.Errorf("manifest lists no packages"))
	}

	for i, pkg := range f.Packages {
		if pkg.Path == "" {
			errs = append(errs, fmt.Errorf("packages[%d]: missing path", i))
		}
		if len(pkg.Types) == 0 {
			errs = append(errs, fmt.Errorf("packages[%d] (%s): lists no types", i, pkg.Path))
		}

		seen := make(map[string]bool)
		for j, td := range pkg.Types {
			switch {
			case td.Name == "":
				errs = append(errs, fmt.Errorf("packages[%d].types[%d]: missing name", i, j))
			case seen[td.Name]:
				errs = append(errs, fmt.Errorf("packages[%d] (%s): duplicate type %q", i, pkg.Path, td.Name))
			default:
				seen[td.Name] = true
			}

			if td.KindEnum() == property.KindUnknown {
				errs = append(errs, fmt.Errorf("packages[%d].types[%d] (%s): kind must be %q or %q, got %q",
					i, j, td.Name, "input", "output", td.Kind))
			}
		}
	}

	return errs
}
