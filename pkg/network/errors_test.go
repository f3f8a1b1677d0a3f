package network

import (
	"errors"
	"fmt"
	"testing"
)

func TestGraphError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "two points",
			err:  NewError("connect").Frequency('A').Between(Pt(1, 2), Pt(3, 4)).Cause(ErrSelfLoop).Err(),
			want: "connect A (1,2)-(3,4): antenna cannot connect to itself",
		},
		{
			name: "one point",
			err:  NewError("insert").Frequency('B').At(Pt(6, 3)).Cause(ErrDuplicateAntenna).Err(),
			want: "insert B (6,3): antenna already exists",
		},
		{
			name: "index",
			err:  NewError("connect").Frequency('C').Index(7).Cause(ErrIndexOutOfRange).Err(),
			want: "connect C index 7: vertex index out of range",
		},
		{
			name: "bare",
			err:  NewError("lookup").Cause(ErrInvalidFrequency).Err(),
			want: "lookup: invalid frequency",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGraphError_Chain(t *testing.T) {
	err := fmt.Errorf("loading map: %w",
		NewError("insert").Frequency('A').At(Pt(0, 0)).Cause(ErrGraphFull).Err())

	if !errors.Is(err, ErrGraphFull) {
		t.Error("errors.Is should see the cause through wrapping")
	}
	var ge *GraphError
	if !errors.As(err, &ge) {
		t.Fatal("errors.As should find the GraphError")
	}
	if ge.Op != "insert" || ge.Point == nil || *ge.Point != Pt(0, 0) {
		t.Errorf("unexpected GraphError fields: %+v", ge)
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		cause     error
		notFound  bool
		duplicate bool
		invalid   bool
		status    string
	}{
		{ErrVertexNotFound, true, false, false, "not_found"},
		{ErrGraphNotFound, true, false, false, "not_found"},
		{ErrIndexOutOfRange, true, false, false, "not_found"},
		{ErrDuplicateAntenna, false, true, false, "duplicate"},
		{ErrDuplicateEdge, false, true, false, "duplicate"},
		{ErrSelfLoop, false, false, true, "invalid"},
		{ErrInvalidCoordinate, false, false, true, "invalid"},
		{ErrFrequencyMismatch, false, false, true, "invalid"},
		{ErrGraphFull, false, false, false, "error"},
	}
	for _, tt := range tests {
		err := NewError("op").Cause(tt.cause).Err()
		if IsNotFound(err) != tt.notFound {
			t.Errorf("IsNotFound(%v) = %v", tt.cause, !tt.notFound)
		}
		if IsDuplicate(err) != tt.duplicate {
			t.Errorf("IsDuplicate(%v) = %v", tt.cause, !tt.duplicate)
		}
		if IsInvalid(err) != tt.invalid {
			t.Errorf("IsInvalid(%v) = %v", tt.cause, !tt.invalid)
		}
		if got := statusOf(err); got != tt.status {
			t.Errorf("statusOf(%v) = %q, want %q", tt.cause, got, tt.status)
		}
	}
	if statusOf(nil) != "ok" {
		t.Error(`statusOf(nil) should be "ok"`)
	}
}
