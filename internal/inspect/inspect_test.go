package inspect

import (
	"strings"
	"testing"
)

func TestSuggestions(t *testing.T) {
	res := &Result{
		PkgPath: "example.com/shapes",
		PkgName: "shapes",
		Types: []TypeInfo{
			{Name: "Circle", IsStruct: true},
			{Name: "Shape", IsInterface: true},
			{Name: "Box", IsStruct: true, TypeParams: []string{"T"}},
			{Name: "Event", IsStruct: true, IsProtoMessage: true},
		},
	}

	got := res.Suggestions()
	if len(got) != 4 {
		t.Fatalf("Suggestions returned %d lines, want 4", len(got))
	}

	tests := []struct {
		line string
		want string
	}{
		{got[0], "reflect.TypeOf(shapes.Circle{})"},
		{got[1], "reflect.TypeOf((*shapes.Shape)(nil)).Elem()"},
		{got[2], "generic type (1 parameters)"},
		{got[3], "protocheck"},
	}
	for _, tt := range tests {
		if !strings.Contains(tt.line, tt.want) {
			t.Errorf("suggestion %q missing %q", tt.line, tt.want)
		}
	}
}

func TestPackageLoadsStdlib(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages via the go toolchain")
	}

	res, err := Package("sort")
	if err != nil {
		t.Fatalf("Package(sort): %v", err)
	}
	found := false
	for _, ti := range res.Types {
		if ti.Name == "IntSlice" {
			found = true
			if ti.IsInterface || ti.IsStruct || len(ti.TypeParams) != 0 {
				t.Errorf("sort.IntSlice misclassified: %+v", ti)
			}
		}
	}
	if !found {
		t.Errorf("sort.IntSlice not reported among exported types")
	}
}
