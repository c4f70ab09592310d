package geonode

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBroadcast(t *testing.T) {
	tests := []struct {
		name     string
		policy   BroadcastPolicy
		lens     []NamedLen
		wantRows int
		wantErr  error
	}{
		{"all scalars", BroadcastStrict, []NamedLen{{"a", 1}, {"b", 1}}, 1, nil},
		{"scalar and list", BroadcastStrict, []NamedLen{{"a", 1}, {"b", 4}}, 4, nil},
		{"equal lists", BroadcastStrict, []NamedLen{{"a", 3}, {"b", 3}}, 3, nil},
		{"strict mismatch", BroadcastStrict, []NamedLen{{"a", 2}, {"b", 3}}, 0, ErrShapeMismatch},
		{"repeat mismatch", BroadcastRepeatLast, []NamedLen{{"a", 2}, {"b", 3}}, 3, nil},
		{"empty strict", BroadcastStrict, []NamedLen{{"a", 0}, {"b", 3}}, 0, ErrEmptyInput},
		{"empty repeat", BroadcastRepeatLast, []NamedLen{{"a", 3}, {"b", 0}}, 0, ErrEmptyInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Broadcast(tt.policy, tt.lens...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Broadcast() error = %v, want %v", err, tt.wantErr)
			}
			if rows != tt.wantRows {
				t.Errorf("Broadcast() rows = %d, want %d", rows, tt.wantRows)
			}
		})
	}
}

func TestBroadcastShapeErrorNamesParameters(t *testing.T) {
	_, err := Broadcast(BroadcastStrict,
		NamedLen{"Radius1", 5}, NamedLen{"Radius2", 2}, NamedLen{"Period1", 1}, NamedLen{"Time", 3})

	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("Broadcast() error = %v, want *ShapeError", err)
	}
	want := []NamedLen{{"Radius2", 2}, {"Time", 3}}
	if diff := cmp.Diff(want, se.Mismatched); diff != "" {
		t.Errorf("Mismatched (-want +got):\n%s", diff)
	}
	if se.Rows != 5 {
		t.Errorf("Rows = %d, want 5", se.Rows)
	}
	msg := err.Error()
	for _, name := range []string{"Radius2 has 2", "Time has 3", "1 or 5"} {
		if !strings.Contains(msg, name) {
			t.Errorf("error %q does not mention %q", msg, name)
		}
	}
}

func TestPick(t *testing.T) {
	xs := []float64{1, 2, 3}
	got := []float64{Pick(xs, 0), Pick(xs, 2), Pick(xs, 7)}
	if diff := cmp.Diff([]float64{1, 3, 3}, got); diff != "" {
		t.Errorf("Pick (-want +got):\n%s", diff)
	}
	if got := Pick([]int{9}, 4); got != 9 {
		t.Errorf("Pick(scalar) = %d, want 9", got)
	}
}

func TestParseBroadcastPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    BroadcastPolicy
		wantErr bool
	}{
		{"strict", BroadcastStrict, false},
		{"Repeat", BroadcastRepeatLast, false},
		{"REPEAT-LAST", BroadcastRepeatLast, false},
		{"cycle", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBroadcastPolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBroadcastPolicy(%q) error = %v", tt.in, err)
			}
			if err != nil && !errors.Is(err, ErrUnknownEnum) {
				t.Errorf("error %v does not wrap ErrUnknownEnum", err)
			}
			if got != tt.want {
				t.Errorf("ParseBroadcastPolicy(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	if BroadcastRepeatLast.String() != "repeat" {
		t.Errorf("String() = %q", BroadcastRepeatLast.String())
	}
}
