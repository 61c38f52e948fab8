// Package gen emits accessor methods for property types: a kind marker,
// one getter per declared field (plus a setter for input kinds), an
// output-payload constructor, and an init that registers the type. The
// emitted methods carry the exact get/set semantics of the property
// package; generation only moves the synthesis to compile time.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"property-mapper/internal/analyze"
	"property-mapper/internal/manifest"
	"property-mapper/property"
)

const propertyPkg = "property-mapper/property"

// Config controls generation.
type Config struct {
	// Suffix of generated filenames, manifest default when empty.
	Suffix string
	// GenerateComments emits doc comments on accessors.
	GenerateComments bool
}

// Generator renders accessor files from an analyzed graph and a manifest.
type Generator struct {
	config Config
}

// NewGenerator creates a Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile is one rendered, gofmt-formatted source file.
type GeneratedFile struct {
	// PkgPath is the import path of the target package.
	PkgPath string
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the base name of the file.
	Filename string
	// Content is the formatted source.
	Content []byte
}

type fileData struct {
	PackageName string
	Imports     []string
	Types       []typeData
	Comments    bool
}

type typeData struct {
	Name         string
	KindConst    string
	KindWord     string
	RegisterFunc string
	IsOutput     bool
	Accessors    []accessorData
}

type accessorData struct {
	MethodName string
	SetterName string
	WireName   string
	TypeStr    string
	EmitGetter bool
	EmitSetter bool
}

// Generate renders one file per manifest package.
func (g *Generator) Generate(graph *analyze.Graph, mf *manifest.File) ([]GeneratedFile, error) {
	suffix := g.config.Suffix
	if suffix == "" {
		suffix = mf.Suffix()
	}

	var files []GeneratedFile

	for _, pkg := range mf.Packages {
		info, ok := findPackage(graph, pkg.Path)
		if !ok {
			return nil, fmt.Errorf("package %q was not analyzed", pkg.Path)
		}

		data := fileData{
			PackageName: info.Name,
			Comments:    g.config.GenerateComments,
		}
		imports := map[string]struct{}{propertyPkg: {}}

		for _, td := range pkg.Types {
			s, ok := info.Structs[td.Name]
			if !ok {
				return nil, fmt.Errorf("type %s.%s not found", pkg.Path, td.Name)
			}
			if !s.HasStore {
				return nil, fmt.Errorf("type %s.%s does not embed property.Store", pkg.Path, td.Name)
			}

			t, err := buildTypeData(s, td.KindEnum(), imports)
			if err != nil {
				return nil, err
			}
			data.Types = append(data.Types, t)
		}

		data.Imports = sortedKeys(imports)

		content, err := render(data)
		if err != nil {
			return nil, fmt.Errorf("package %q: %w", pkg.Path, err)
		}

		files = append(files, GeneratedFile{
			PkgPath:  info.Path,
			Dir:      info.Dir,
			Filename: info.Name + suffix,
			Content:  content,
		})
	}

	return files, nil
}

func buildTypeData(s *analyze.StructInfo, kind property.KindEnum, imports map[string]struct{}) (typeData, error) {
	t := typeData{Name: s.Name}

	switch kind {
	case property.KindInput:
		t.KindConst = "KindInput"
		t.KindWord = "input"
		t.RegisterFunc = "RegisterInputType"
	case property.KindOutput:
		t.KindConst = "KindOutput"
		t.KindWord = "output"
		t.RegisterFunc = "RegisterOutputType"
		t.IsOutput = true
	default:
		return typeData{}, fmt.Errorf("type %s: unknown kind", s.Name)
	}

	for _, f := range s.Fields {
		if f.Embedded {
			continue
		}

		acc := accessorData{
			MethodName: methodName(f),
			WireName:   f.WireName,
			TypeStr:    f.TypeStr,
		}
		acc.SetterName = setterName(f)

		// A hand-written accessor is user logic to preserve; generate only
		// what is missing.
		_, hasGetter := s.Methods[acc.MethodName]
		_, hasSetter := s.Methods[acc.SetterName]
		acc.EmitGetter = !hasGetter
		acc.EmitSetter = kind == property.KindInput && !hasSetter

		if acc.EmitGetter || acc.EmitSetter {
			for _, imp := range f.Imports {
				imports[imp] = struct{}{}
			}
		}

		t.Accessors = append(t.Accessors, acc)
	}

	return t, nil
}

// methodName derives the accessor method name from the field name. An
// already-exported field keeps its storage role, so its getter gains a Get
// prefix to avoid colliding with the field itself.
func methodName(f analyze.FieldInfo) string {
	if f.Exported {
		return "Get" + f.Name
	}

	r, size := utf8.DecodeRuneInString(f.Name)
	return string(unicode.ToUpper(r)) + f.Name[size:]
}

// setterName pairs with methodName. The exported-field case builds on the
// raw field name so that a field whose own name begins with "Get" never has
// that part stripped.
func setterName(f analyze.FieldInfo) string {
	if f.Exported {
		return "Set" + f.Name
	}
	return "Set" + methodName(f)
}

func render(data fileData) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("template execution failed: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not format: %w", err)
	}
	return formatted, nil
}

// findPackage matches a manifest path, which may be a relative pattern like
// "./examples/bucket", against analyzed import paths.
func findPackage(graph *analyze.Graph, path string) (*analyze.PackageInfo, bool) {
	if info, ok := graph.Package(path); ok {
		return info, true
	}

	trimmed := strings.TrimPrefix(path, "./")
	for _, p := range graph.Packages() {
		if p == trimmed || strings.HasSuffix(p, "/"+trimmed) {
			info, _ := graph.Package(p)
			return info, true
		}
	}
	return nil, false
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
