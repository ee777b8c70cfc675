package execute

import (
	"context"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldoc/document"
	"github.com/vvakame/gqldoc/internal/log"
	"github.com/vvakame/gqldoc/values"
)

// Fields groups collected fields by result key. Go maps are unordered, so Names keeps
// the order in which keys were first seen.
type Fields struct {
	Names    []string
	FieldMap map[string][]*ast.Field
}

func (fs *Fields) Get(name string) []*ast.Field {
	if fs.FieldMap == nil {
		return nil
	}
	return fs.FieldMap[name]
}

func (fs *Fields) set(name string, fields []*ast.Field) {
	if fs.FieldMap == nil {
		fs.FieldMap = make(map[string][]*ast.Field)
	}
	_, ok := fs.FieldMap[name]
	if !ok {
		fs.Names = append(fs.Names, name)
	}
	fs.FieldMap[name] = fields
}

// FragmentMatcher decides whether a fragment with the given type condition applies.
// typeCondition is "" for inline fragments without one.
type FragmentMatcher func(typeCondition string) bool

// CollectFields flattens selectionSet into fields keyed by alias or name.
// Fragment spreads are resolved through fragments, each name at most once, and
// @skip / @include are evaluated against variables. A nil matcher accepts every
// fragment.
func CollectFields(ctx context.Context, fragments document.FragmentMap, variables map[string]interface{}, matcher FragmentMatcher, selectionSet ast.SelectionSet) (*Fields, error) {
	c := &collector{
		fragments:            fragments,
		variables:            variables,
		matcher:              matcher,
		visitedFragmentNames: make(map[string]struct{}),
	}
	ctx = log.WithName(ctx, "collectFields")

	fields := &Fields{}
	err := c.collectFields(ctx, selectionSet, fields)
	if err != nil {
		return nil, err
	}

	return fields, nil
}

type collector struct {
	fragments            document.FragmentMap
	variables            map[string]interface{}
	matcher              FragmentMatcher
	visitedFragmentNames map[string]struct{}
}

func (c *collector) collectFields(ctx context.Context, selectionSet ast.SelectionSet, fields *Fields) error {
	for _, selection := range selectionSet {
		switch selection := selection.(type) {
		case *ast.Field:
			ok, err := c.shouldIncludeNode(selection.Directives)
			if err != nil {
				return err
			} else if !ok {
				continue
			}
			name := values.ResultKeyNameFromField(selection)
			fields.set(name, append(fields.Get(name), selection))

		case *ast.InlineFragment:
			ok, err := c.shouldIncludeNode(selection.Directives)
			if err != nil {
				return err
			} else if !ok || !c.doesFragmentConditionMatch(selection.TypeCondition) {
				continue
			}
			err = c.collectFields(ctx, selection.SelectionSet, fields)
			if err != nil {
				return err
			}

		case *ast.FragmentSpread:
			fragName := selection.Name
			if _, ok := c.visitedFragmentNames[fragName]; ok {
				continue
			}
			ok, err := c.shouldIncludeNode(selection.Directives)
			if err != nil {
				return err
			} else if !ok {
				continue
			}
			c.visitedFragmentNames[fragName] = struct{}{}
			fragment := c.fragments[fragName]
			if fragment == nil {
				log.FromContext(ctx).V(1).Info("fragment is not defined, skipped", "fragment", fragName)
				continue
			}
			if !c.doesFragmentConditionMatch(fragment.TypeCondition) {
				continue
			}
			err = c.collectFields(ctx, fragment.SelectionSet, fields)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// Determines if a field should be included based on the `@include` and `@skip`
// directives, where `@skip` has higher precedence than `@include`.
func (c *collector) shouldIncludeNode(directives ast.DirectiveList) (bool, error) {
	if skip := directives.ForName("skip"); skip != nil {
		args, err := values.ArgumentsObjectFromDirective(skip, c.variables)
		if err != nil {
			return false, err
		}
		if v, ok := args["if"].(bool); ok && v {
			return false, nil
		}
	}

	if include := directives.ForName("include"); include != nil {
		args, err := values.ArgumentsObjectFromDirective(include, c.variables)
		if err != nil {
			return false, err
		}
		if v, ok := args["if"].(bool); ok && !v {
			return false, nil
		}
	}

	return true, nil
}

func (c *collector) doesFragmentConditionMatch(typeCondition string) bool {
	if typeCondition == "" || c.matcher == nil {
		return true
	}
	return c.matcher(typeCondition)
}
