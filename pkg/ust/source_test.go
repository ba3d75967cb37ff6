package ust

import (
	"errors"
	"reflect"
	"testing"
)

func TestSourceShapes(t *testing.T) {
	t.Run("one", func(t *testing.T) {
		got := One("a.txt").paths()
		if !reflect.DeepEqual(got, []string{"a.txt"}) {
			t.Errorf("One = %v", got)
		}
	})

	t.Run("list keeps order and duplicates", func(t *testing.T) {
		got := List("b", "a", "b").paths()
		if !reflect.DeepEqual(got, []string{"b", "a", "b"}) {
			t.Errorf("List = %v", got)
		}
	})

	t.Run("set dedupes and sorts", func(t *testing.T) {
		got := Set("b", "a", "b", "c").paths()
		if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
			t.Errorf("Set = %v", got)
		}
	})

	t.Run("list clones its input", func(t *testing.T) {
		in := []string{"a", "b"}
		src := List(in...)
		in[0] = "mutated"
		if got := src.paths(); got[0] != "a" {
			t.Errorf("List aliased caller slice: %v", got)
		}
	})
}

func TestSourceOf(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want []string
	}{
		{"string", "a.txt", []string{"a.txt"}},
		{"slice", []string{"x", "y"}, []string{"x", "y"}},
		{"struct set", map[string]struct{}{"b": {}, "a": {}}, []string{"a", "b"}},
		{"bool set", map[string]bool{"b": true, "a": true, "z": false}, []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src, err := SourceOf(tc.in)
			if err != nil {
				t.Fatalf("SourceOf(%v) failed: %v", tc.in, err)
			}
			if got := src.paths(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SourceOf(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}

	t.Run("source passes through", func(t *testing.T) {
		orig := List("a", "b")
		src, err := SourceOf(orig)
		if err != nil {
			t.Fatalf("SourceOf(Source) failed: %v", err)
		}
		if !reflect.DeepEqual(src, orig) {
			t.Errorf("SourceOf(Source) = %v, want %v", src, orig)
		}
	})

	t.Run("unsupported kinds are rejected", func(t *testing.T) {
		for _, in := range []any{42, []int{1}, map[int]string{1: "a"}, nil, 3.14} {
			_, err := SourceOf(in)
			if !errors.Is(err, ErrInvalidSource) {
				t.Errorf("SourceOf(%T) = %v, want ErrInvalidSource", in, err)
			}
		}
	})
}
