package network

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		in      string
		want    Frequency
		wantErr bool
	}{
		{"A", 'A', false},
		{"z", 'Z', false},
		{" q ", 'Q', false},
		{"", 0, true},
		{"AB", 0, true},
		{"1", 0, true},
		{"#", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFrequency(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFrequency(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidFrequency) {
				t.Errorf("error %v should wrap ErrInvalidFrequency", err)
			}
			if got != tt.want {
				t.Errorf("ParseFrequency(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFrequencyHelpers(t *testing.T) {
	if Frequency('C').Index() != 2 {
		t.Errorf("Index('C') = %d, want 2", Frequency('C').Index())
	}
	if Frequency('C').String() != "C" {
		t.Errorf("String('C') = %q", Frequency('C').String())
	}
	if Frequency('.').Valid() {
		t.Error("'.' should not be a valid frequency")
	}
	if _, ok := FrequencyFromRune('é'); ok {
		t.Error("non-ASCII rune accepted")
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    Point
		wantErr bool
	}{
		{"2,5", Pt(2, 5), false},
		{"(19, 17)", Pt(19, 17), false},
		{" 0,0 ", Pt(0, 0), false},
		{"2;5", Point{}, true},
		{"x,1", Point{}, true},
		{"1,y", Point{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePoint(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePoint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePoint(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPointCompareAndBounds(t *testing.T) {
	if Pt(1, 9).Compare(Pt(2, 0)) >= 0 {
		t.Error("(1,9) should sort before (2,0)")
	}
	if Pt(3, 1).Compare(Pt(3, 2)) >= 0 {
		t.Error("(3,1) should sort before (3,2)")
	}
	if Pt(3, 3).Compare(Pt(3, 3)) != 0 {
		t.Error("equal points should compare 0")
	}
	if !Pt(19, 19).In(20) || Pt(20, 0).In(20) || Pt(0, -1).In(20) {
		t.Error("In() bounds wrong")
	}
}

func TestVertexEdgesNewestFirst(t *testing.T) {
	v := newVertex(NewAntenna('A', 0, 0))
	v.adjacency = []Edge{{Target: 1}, {Target: 2}, {Target: 3}}

	got := v.Edges()
	want := []Edge{{Target: 3}, {Target: 2}, {Target: 1}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Edges() = %v, want %v", got, want)
		}
	}
	if v.Degree() != 3 {
		t.Errorf("Degree() = %d, want 3", v.Degree())
	}
}

func TestTraversalNilSafe(t *testing.T) {
	var tr *Traversal
	if tr.Count() != 0 || tr.Points() != nil || tr.Contains(Pt(0, 0)) {
		t.Error("nil traversal should be empty")
	}
}

func TestFrequencyJSON(t *testing.T) {
	data, err := json.Marshal(NewAntenna('C', 1, 2))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `{"frequency":"C","x":1,"y":2}` {
		t.Errorf("Marshal = %s", data)
	}

	var a Antenna
	if err := json.Unmarshal([]byte(`{"frequency":"d","x":3,"y":4}`), &a); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if a != NewAntenna('D', 3, 4) {
		t.Errorf("Unmarshal = %+v", a)
	}

	if _, err := json.Marshal(Frequency(0)); err == nil {
		t.Error("Marshal of invalid frequency should fail")
	}
}
