package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vvakame/gqldoc/document"
	"github.com/vvakame/gqldoc/internal/execute"
	"github.com/vvakame/gqldoc/internal/log"
	"github.com/vvakame/gqldoc/values"
)

type definitionSummary struct {
	Kind          string `json:"kind" yaml:"kind"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Operation     string `json:"operation,omitempty" yaml:"operation,omitempty"`
	TypeCondition string `json:"typeCondition,omitempty" yaml:"typeCondition,omitempty"`
}

func summarize(def document.Definition) *definitionSummary {
	summary := &definitionSummary{
		Kind: def.GetKind().String(),
	}
	switch def := def.(type) {
	case *document.OperationDefinition:
		summary.Name = def.Name
		summary.Operation = string(def.Operation)
	case *document.FragmentDefinition:
		summary.Name = def.Name
		summary.TypeCondition = def.TypeCondition
	}
	return summary
}

func newMainCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "main FILE",
		Short: "Print the query operation, or the first fragment, of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			def, err := document.GetMainDefinition(doc)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), cfg, summarize(def))
		},
	}
}

func newOperationCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operation FILE",
		Short: "Print the operation of the given kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			var operation ast.Operation
			switch op := ast.Operation(cfg.OperationKind); op {
			case ast.Query, ast.Mutation, ast.Subscription:
				operation = op
			default:
				return fmt.Errorf("unknown operation kind %q", cfg.OperationKind)
			}

			opDef, err := document.GetOperationDefinition(doc, operation)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), cfg, summarize(&document.OperationDefinition{OperationDefinition: opDef}))
		},
	}
	cmd.Flags().StringVar(&cfg.OperationKind, "kind", string(ast.Query), "operation kind: query, mutation or subscription")

	return cmd
}

func newFragmentsCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fragments FILE",
		Short: "List fragment definitions in document order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			summaries := make([]*definitionSummary, 0)
			for _, fragment := range document.GetFragmentDefinitions(doc) {
				summaries = append(summaries, summarize(&document.FragmentDefinition{FragmentDefinition: fragment}))
			}

			return render(cmd.OutOrStdout(), cfg, summaries)
		},
	}
}

func newMergeCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "merge FILE FRAGMENT_FILE...",
		Short: "Append the fragments of FRAGMENT_FILEs to FILE and print the result",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.FromContext(cmd.Context())

			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			var fragments ast.FragmentDefinitionList
			for _, filePath := range args[1:] {
				fragDoc, err := loadDocument(filePath)
				if err != nil {
					return err
				}
				found := document.GetFragmentDefinitions(fragDoc)
				logger.V(1).Info("fragments loaded", "file", filePath, "count", len(found))
				fragments = append(fragments, found...)
			}

			merged, err := document.AddFragmentsToDocument(doc, fragments)
			if err != nil {
				return err
			}

			formatter.NewFormatter(cmd.OutOrStdout()).FormatQueryDocument(merged.QueryDocument())
			return nil
		},
	}
}

func newArgsCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "args FILE",
		Short: "Print the arguments of the top level fields of the main definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			variables, err := loadVariables(cfg.VariablesFile)
			if err != nil {
				return err
			}

			def, err := document.GetMainDefinition(doc)
			if err != nil {
				return err
			}
			logger.V(1).Info("main definition", "kind", def.GetKind(), "operationName", document.GetOperationName(doc))

			var selectionSet ast.SelectionSet
			switch def := def.(type) {
			case *document.OperationDefinition:
				selectionSet = def.SelectionSet
			case *document.FragmentDefinition:
				selectionSet = def.SelectionSet
			}

			fragments := document.CreateFragmentMap(document.GetFragmentDefinitions(doc)...)
			fields, err := execute.CollectFields(ctx, fragments, variables, nil, selectionSet)
			if err != nil {
				return err
			}

			result := yaml.MapSlice{}
			for _, name := range fields.Names {
				// fields merged under one key are expected to share arguments
				field := fields.Get(name)[0]
				argObj, err := values.ArgumentsObjectFromField(field, variables)
				if err != nil {
					return err
				}
				result = append(result, yaml.MapItem{Key: name, Value: argObj})
			}

			return render(cmd.OutOrStdout(), cfg, result)
		},
	}
	cmd.Flags().StringVar(&cfg.VariablesFile, "variables", "", "YAML or JSON file with variable values")

	return cmd
}
