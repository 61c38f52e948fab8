// Package analyze loads Go packages and discovers property-struct
// declarations for the generator: named structs, their declared fields
// with wire names, and their existing method sets.
package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo

const storePath = "property-mapper/property"

// Graph holds the analyzed packages, keyed by import path.
type Graph struct {
	packages map[string]*PackageInfo
}

// PackageInfo describes one loaded package.
type PackageInfo struct {
	// Name is the package identifier used in generated files.
	Name string
	// Path is the import path.
	Path string
	// Dir is the directory holding the package sources.
	Dir string
	// Structs maps type names to their analyzed declarations.
	Structs map[string]*StructInfo
}

// StructInfo describes one named struct type.
type StructInfo struct {
	// Name of the type within its package.
	Name string
	// Pkg is the declaring package.
	Pkg *PackageInfo
	// Fields are the type's own field declarations, in order. Embedded
	// fields are listed with Embedded set and are not property fields.
	Fields []FieldInfo
	// Methods is the pointer method set, used to skip fields whose
	// accessors the user already wrote by hand.
	Methods map[string]struct{}
	// HasStore reports whether the struct embeds property.Store.
	HasStore bool
}

// FieldInfo describes one field declaration.
type FieldInfo struct {
	// Name is the in-memory field name.
	Name string
	// WireName is the external name: the prop tag when present, the field
	// name otherwise.
	WireName string
	// TypeStr is the field's type rendered relative to its package.
	TypeStr string
	// Exported reports whether the field name is exported.
	Exported bool
	// Embedded reports an anonymous field.
	Embedded bool
	// Imports lists the import paths the field's type refers to, excluding
	// the declaring package itself.
	Imports []string
}

// Load analyzes the packages matched by the given patterns.
func Load(patterns ...string) (*Graph, error) {
	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package loading reported errors: %w", errors.Join(errs...))
	}

	graph := &Graph{packages: make(map[string]*PackageInfo)}
	for _, pkg := range pkgs {
		graph.addPackage(pkg)
	}
	return graph, nil
}

// Struct looks up an analyzed struct by package path and type name.
func (g *Graph) Struct(pkgPath, name string) (*StructInfo, bool) {
	pkg, ok := g.packages[pkgPath]
	if !ok {
		return nil, false
	}
	s, ok := pkg.Structs[name]
	return s, ok
}

// Package looks up an analyzed package by import path.
func (g *Graph) Package(pkgPath string) (*PackageInfo, bool) {
	pkg, ok := g.packages[pkgPath]
	return pkg, ok
}

// Packages returns the import paths of all analyzed packages.
func (g *Graph) Packages() []string {
	paths := make([]string, 0, len(g.packages))
	for p := range g.packages {
		paths = append(paths, p)
	}
	return paths
}

func (g *Graph) addPackage(pkg *packages.Package) {
	info := &PackageInfo{
		Name:    pkg.Name,
		Path:    pkg.PkgPath,
		Structs: make(map[string]*StructInfo),
	}
	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || obj.IsAlias() {
			continue
		}

		named, ok := obj.Type().(*types.Named)
		if !ok {
			continue
		}
		structType, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		info.Structs[name] = analyzeStruct(name, info, named, structType)
	}

	g.packages[pkg.PkgPath] = info
}

func analyzeStruct(name string, pkg *PackageInfo, named *types.Named, structType *types.Struct) *StructInfo {
	s := &StructInfo{
		Name:    name,
		Pkg:     pkg,
		Methods: make(map[string]struct{}),
	}

	qualifier := func(other *types.Package) string {
		if other == nil || other.Path() == pkg.Path {
			return ""
		}
		return other.Name()
	}

	for i := 0; i < structType.NumFields(); i++ {
		f := structType.Field(i)
		tag := reflect.StructTag(structType.Tag(i))

		fi := FieldInfo{
			Name:     f.Name(),
			WireName: f.Name(),
			TypeStr:  types.TypeString(f.Type(), qualifier),
			Exported: f.Exported(),
			Embedded: f.Embedded(),
		}
		if wire, ok := tag.Lookup("prop"); ok && wire != "" {
			fi.WireName = wire
		}
		fi.Imports = typeImports(f.Type(), pkg.Path)

		if f.Embedded() && isStoreType(f.Type()) {
			s.HasStore = true
		}

		s.Fields = append(s.Fields, fi)
	}

	mset := types.NewMethodSet(types.NewPointer(named))
	for i := 0; i < mset.Len(); i++ {
		s.Methods[mset.At(i).Obj().Name()] = struct{}{}
	}

	return s
}

// typeImports walks a type expression and collects the packages its named
// types come from, skipping the declaring package.
func typeImports(t types.Type, selfPath string) []string {
	seen := make(map[string]struct{})
	collectImports(t, selfPath, seen)

	if len(seen) == 0 {
		return nil
	}
	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	return paths
}

func collectImports(t types.Type, selfPath string, seen map[string]struct{}) {
	switch tt := t.(type) {
	case *types.Named:
		if obj := tt.Obj(); obj.Pkg() != nil && obj.Pkg().Path() != selfPath {
			seen[obj.Pkg().Path()] = struct{}{}
		}
		if args := tt.TypeArgs(); args != nil {
			for i := 0; i < args.Len(); i++ {
				collectImports(args.At(i), selfPath, seen)
			}
		}
	case *types.Pointer:
		collectImports(tt.Elem(), selfPath, seen)
	case *types.Slice:
		collectImports(tt.Elem(), selfPath, seen)
	case *types.Array:
		collectImports(tt.Elem(), selfPath, seen)
	case *types.Map:
		collectImports(tt.Key(), selfPath, seen)
		collectImports(tt.Elem(), selfPath, seen)
	case *types.Chan:
		collectImports(tt.Elem(), selfPath, seen)
	}
}

func isStoreType(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == "Store" && obj.Pkg() != nil && obj.Pkg().Path() == storePath
}
