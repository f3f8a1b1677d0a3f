package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
)

// DefaultMaxComplexity admits a full walk of a 20x20 grid with neighbours.
const DefaultMaxComplexity = 100000

// ComplexityConfig defines configuration for query complexity analysis
type ComplexityConfig struct {
	MaxComplexity int // Maximum allowed complexity score
	ListSize      int // Assumed length of every list field (default: 20)
}

// ValidateComplexityConfig validates the complexity configuration
func ValidateComplexityConfig(config *ComplexityConfig) error {
	if config.MaxComplexity <= 0 {
		return fmt.Errorf("max complexity must be greater than 0, got %d", config.MaxComplexity)
	}
	if config.ListSize <= 0 {
		config.ListSize = 20
	}
	return nil
}

// listFields are the schema fields that resolve to lists.
var listFields = map[string]bool{
	"frequencies":  true,
	"graphs":       true,
	"antennas":     true,
	"neighbors":    true,
	"visits":       true,
	"interference": true,
}

// calculateQueryComplexity scores a document: every selected field costs the
// product of the list sizes above it.
func calculateQueryComplexity(document *ast.Document, config *ComplexityConfig) int {
	fragments := make(map[string]*ast.FragmentDefinition)
	for _, definition := range document.Definitions {
		if frag, ok := definition.(*ast.FragmentDefinition); ok {
			fragments[frag.Name.Value] = frag
		}
	}

	total := 0
	for _, definition := range document.Definitions {
		if def, ok := definition.(*ast.OperationDefinition); ok {
			total += selectionSetComplexity(def.SelectionSet, config, fragments, 1, map[string]bool{})
		}
	}
	return total
}

func selectionSetComplexity(set *ast.SelectionSet, config *ComplexityConfig, fragments map[string]*ast.FragmentDefinition, multiplier int, seen map[string]bool) int {
	if set == nil {
		return 0
	}

	complexity := 0
	for _, selection := range set.Selections {
		switch sel := selection.(type) {
		case *ast.Field:
			complexity += multiplier
			if sel.SelectionSet == nil {
				continue
			}
			nested := multiplier
			if listFields[sel.Name.Value] {
				nested *= config.ListSize
			}
			complexity += selectionSetComplexity(sel.SelectionSet, config, fragments, nested, seen)

		case *ast.InlineFragment:
			complexity += selectionSetComplexity(sel.SelectionSet, config, fragments, multiplier, seen)

		case *ast.FragmentSpread:
			name := sel.Name.Value
			frag, ok := fragments[name]
			if !ok || seen[name] {
				continue
			}
			seen[name] = true
			complexity += selectionSetComplexity(frag.SelectionSet, config, fragments, multiplier, seen)
			delete(seen, name)
		}
	}
	return complexity
}

// ValidateQueryComplexity validates a query against the complexity limit
func ValidateQueryComplexity(query string, config *ComplexityConfig) (int, error) {
	if err := ValidateComplexityConfig(config); err != nil {
		return 0, err
	}
	document, err := parser.Parse(parser.ParseParams{
		Source: query,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to parse query: %w", err)
	}

	queryComplexity := calculateQueryComplexity(document, config)
	if queryComplexity > config.MaxComplexity {
		return queryComplexity, fmt.Errorf("query complexity %d exceeds maximum allowed complexity %d", queryComplexity, config.MaxComplexity)
	}
	return queryComplexity, nil
}

// Limits bounds the queries ExecuteWithLimits accepts.
type Limits struct {
	MaxDepth      int
	MaxComplexity int
}

// DefaultLimits returns the limits used by the command-line tools.
func DefaultLimits() Limits {
	return Limits{MaxDepth: DefaultMaxDepth, MaxComplexity: DefaultMaxComplexity}
}

// ExecuteWithLimits rejects queries that are too deep or too costly before
// executing them. A zero limit disables that check.
func ExecuteWithLimits(schema graphql.Schema, query string, limits Limits, variableValues map[string]interface{}) *graphql.Result {
	if limits.MaxComplexity > 0 {
		if _, err := ValidateQueryComplexity(query, &ComplexityConfig{MaxComplexity: limits.MaxComplexity}); err != nil {
			return &graphql.Result{
				Errors: []gqlerrors.FormattedError{
					gqlerrors.FormatError(err),
				},
			}
		}
	}
	if limits.MaxDepth > 0 {
		return ExecuteWithDepthLimit(schema, query, limits.MaxDepth, variableValues)
	}
	return ExecuteQueryWithVariables(query, schema, variableValues)
}
