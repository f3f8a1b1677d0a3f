package network

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrInvalidFrequency  = errors.New("invalid frequency")
	ErrInvalidCoordinate = errors.New("coordinate outside grid")
	ErrDuplicateAntenna  = errors.New("antenna already exists")
	ErrDuplicateEdge     = errors.New("antennas already connected")
	ErrSelfLoop          = errors.New("antenna cannot connect to itself")
	ErrVertexNotFound    = errors.New("antenna not found")
	ErrIndexOutOfRange   = errors.New("vertex index out of range")
	ErrGraphNotFound     = errors.New("no graph for frequency")
	ErrGraphFull         = errors.New("graph capacity reached")
	ErrFrequencyMismatch = errors.New("frequency does not match graph")
	ErrStructuralInvalid = errors.New("graph failed structural validation")
	ErrAsymmetricEdge    = errors.New("edge has no mirrored half")
	ErrPathBudget        = errors.New("path count exceeded its search budget")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op        string    // Operation that failed (e.g., "insert", "connect", "bfs")
	Frequency Frequency // Frequency of the graph involved, 0 if unknown
	Point     *Point    // Coordinate involved, if any
	Other     *Point    // Second coordinate for two-ended operations
	Index     int       // Vertex index for index-addressed operations, -1 if unused
	Cause     error     // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	subject := e.Op
	if e.Frequency != 0 {
		subject = fmt.Sprintf("%s %s", subject, e.Frequency)
	}
	switch {
	case e.Point != nil && e.Other != nil:
		return fmt.Sprintf("%s %s-%s: %v", subject, *e.Point, *e.Other, e.Cause)
	case e.Point != nil:
		return fmt.Sprintf("%s %s: %v", subject, *e.Point, e.Cause)
	case e.Index >= 0:
		return fmt.Sprintf("%s index %d: %v", subject, e.Index, e.Cause)
	}
	return fmt.Sprintf("%s: %v", subject, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building GraphErrors.
type ErrorBuilder struct {
	err GraphError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: GraphError{Op: op, Index: -1}}
}

// Frequency sets the frequency of the graph involved.
func (b *ErrorBuilder) Frequency(f Frequency) *ErrorBuilder {
	b.err.Frequency = f
	return b
}

// At sets the coordinate involved.
func (b *ErrorBuilder) At(p Point) *ErrorBuilder {
	b.err.Point = &p
	return b
}

// Between sets both endpoints of a two-ended operation.
func (b *ErrorBuilder) Between(p, q Point) *ErrorBuilder {
	b.err.Point = &p
	b.err.Other = &q
	return b
}

// Index sets the vertex index for index-addressed operations.
func (b *ErrorBuilder) Index(i int) *ErrorBuilder {
	b.err.Index = i
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// IsNotFound returns true if the error reports a missing antenna or graph.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVertexNotFound) || errors.Is(err, ErrGraphNotFound) || errors.Is(err, ErrIndexOutOfRange)
}

// IsDuplicate returns true if the error reports a rejected duplicate insert or link.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateAntenna) || errors.Is(err, ErrDuplicateEdge)
}

// IsInvalid returns true if the error reports bad input rather than graph state.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidCoordinate) || errors.Is(err, ErrInvalidFrequency) ||
		errors.Is(err, ErrSelfLoop) || errors.Is(err, ErrFrequencyMismatch)
}

// statusOf maps an operation result to a metrics status label.
func statusOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsDuplicate(err):
		return "duplicate"
	case IsNotFound(err):
		return "not_found"
	case IsInvalid(err):
		return "invalid"
	default:
		return "error"
	}
}
