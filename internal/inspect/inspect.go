// Package inspect loads compiled Go packages and surfaces their exported
// named types so the CLI can suggest checker registrations for them.
package inspect

import (
	"fmt"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"
)

// TypeInfo describes one exported named type of an inspected package.
type TypeInfo struct {
	// Name is the type name within the package.
	Name string

	// IsInterface and IsStruct classify the underlying type.
	IsInterface bool
	IsStruct    bool

	// TypeParams lists the Go type parameter names for generic types.
	TypeParams []string

	// IsProtoMessage is true if the pointer type has a ProtoReflect method,
	// i.e. the type is a generated protobuf message.
	IsProtoMessage bool
}

// Result holds the exported types of one package.
type Result struct {
	// PkgPath is the package import path.
	PkgPath string

	// PkgName is the package name.
	PkgName string

	// Types are the exported named types, sorted by name.
	Types []TypeInfo
}

// Package loads one package by pattern and collects its exported named
// types.
func Package(pattern string) (*Result, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load package %s: %w", pattern, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %s", pattern)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("load package %s: %v", pattern, pkg.Errors[0])
	}

	res := &Result{PkgPath: pkg.PkgPath, PkgName: pkg.Name}
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() || obj.IsAlias() {
			continue
		}
		named, ok := obj.Type().(*types.Named)
		if !ok {
			continue
		}
		res.Types = append(res.Types, describeNamed(named))
	}
	sort.Slice(res.Types, func(i, j int) bool { return res.Types[i].Name < res.Types[j].Name })
	return res, nil
}

func describeNamed(named *types.Named) TypeInfo {
	info := TypeInfo{Name: named.Obj().Name()}

	switch named.Underlying().(type) {
	case *types.Interface:
		info.IsInterface = true
	case *types.Struct:
		info.IsStruct = true
	}

	if tparams := named.TypeParams(); tparams != nil {
		for i := 0; i < tparams.Len(); i++ {
			info.TypeParams = append(info.TypeParams, tparams.At(i).Obj().Name())
		}
	}

	info.IsProtoMessage = hasProtoReflect(named)
	return info
}

// hasProtoReflect reports whether *T has a ProtoReflect method, the marker
// of a generated protobuf message type.
func hasProtoReflect(named *types.Named) bool {
	ptr := types.NewPointer(named)
	ms := types.NewMethodSet(ptr)
	for i := 0; i < ms.Len(); i++ {
		if ms.At(i).Obj().Name() == "ProtoReflect" {
			return true
		}
	}
	return false
}

// Suggestions renders one registry-annotation suggestion per inspected
// type, for the CLI.
func (r *Result) Suggestions() []string {
	var out []string
	for _, ti := range r.Types {
		out = append(out, suggestionFor(r.PkgName, ti))
	}
	return out
}

func suggestionFor(pkgName string, ti TypeInfo) string {
	qualified := pkgName + "." + ti.Name

	if len(ti.TypeParams) > 0 {
		return fmt.Sprintf("%s: generic type (%d parameters); annotate an instantiation, with typeguard.NewTypeVar per parameter", qualified, len(ti.TypeParams))
	}
	if ti.IsProtoMessage {
		return fmt.Sprintf("%s: proto message; annotate with protocheck (import it) and reflect.TypeOf(&%s{})", qualified, qualified)
	}
	if ti.IsInterface {
		return fmt.Sprintf("%s: interface; annotate with reflect.TypeOf((*%s)(nil)).Elem()", qualified, qualified)
	}
	return fmt.Sprintf("%s: annotate with reflect.TypeOf(%s{}) or reflect.TypeOf(&%s{})", qualified, qualified, qualified)
}
