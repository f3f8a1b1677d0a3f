package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	gql "github.com/dd0wney/cluso-antennas/pkg/graphql"
)

func newQueryCmd(a *app) *cobra.Command {
	var (
		file      string
		mutations bool
		limits    = gql.DefaultLimits()
		vars      []string
	)
	cmd := &cobra.Command{
		Use:   "query [QUERY]",
		Short: "Run a GraphQL query against the network",
		Long: `Runs a GraphQL document in-process and prints the JSON result.

Examples:
  antennas --map city.txt query '{ graphs { frequency count links } }'
  antennas --map city.txt query --var f=A 'query($f: String!) { bfs(frequency: $f, x: 2, y: 5) { count } }'
  antennas --map city.txt query --mutations 'mutation { mesh(frequency: "A") }'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := queryText(args, file)
			if err != nil {
				return err
			}
			variables, err := parseVars(vars)
			if err != nil {
				return err
			}

			schema, err := gql.GenerateSchema(a.net)
			if mutations {
				schema, err = gql.GenerateSchemaWithMutations(a.net)
			}
			if err != nil {
				return fmt.Errorf("failed to build schema: %w", err)
			}

			res := gql.ExecuteWithLimits(schema, query, limits, variables)
			data, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			if len(res.Errors) > 0 {
				return fmt.Errorf("query failed: %s", res.Errors[0].Message)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "F", "", "read the query from a file")
	cmd.Flags().BoolVar(&mutations, "mutations", false, "enable insertAntenna, connect, mesh and removeGraph")
	cmd.Flags().IntVar(&limits.MaxDepth, "max-depth", limits.MaxDepth, "reject queries nested deeper than this (0 = no limit)")
	cmd.Flags().IntVar(&limits.MaxComplexity, "max-complexity", limits.MaxComplexity, "reject queries scoring above this (0 = no limit)")
	cmd.Flags().StringArrayVar(&vars, "var", nil, "query variable as name=value (repeatable)")
	return cmd
}

func queryText(args []string, file string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", errors.New("give a query argument or --file, not both")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read query: %w", err)
		}
		return string(data), nil
	case len(args) == 1 && strings.TrimSpace(args[0]) != "":
		return args[0], nil
	default:
		return "", errors.New("query cannot be empty")
	}
}

// parseVars converts name=value pairs, keeping integers as ints so they bind
// to Int arguments.
func parseVars(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("variable %q: expected name=value", pair)
		}
		if n, err := strconv.Atoi(value); err == nil {
			out[name] = n
			continue
		}
		out[name] = value
	}
	return out, nil
}
