// Package values converts argument value nodes into plain Go values.
//
// Numbers become float64, strings and enums string, booleans bool, objects
// map[string]interface{} and lists []interface{}. Variables are replaced by the bound
// value as is.
package values

import (
	"math"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldoc/kinds"
)

// ArgumentsObjectFromField converts the arguments of field into a map keyed by
// argument name. A field without arguments yields a nil map, which is not the same
// as a field whose only argument is an empty object.
func ArgumentsObjectFromField(field *ast.Field, variables map[string]interface{}) (map[string]interface{}, error) {
	if field == nil {
		return nil, nil
	}
	return argumentsObject(field.Arguments, variables)
}

// ArgumentsObjectFromDirective is ArgumentsObjectFromField for directive arguments.
func ArgumentsObjectFromDirective(directive *ast.Directive, variables map[string]interface{}) (map[string]interface{}, error) {
	if directive == nil {
		return nil, nil
	}
	return argumentsObject(directive.Arguments, variables)
}

func argumentsObject(args ast.ArgumentList, variables map[string]interface{}) (map[string]interface{}, error) {
	if len(args) == 0 {
		return nil, nil
	}

	argObj := make(map[string]interface{}, len(args))
	for _, arg := range args {
		v, err := valueToObjectRepresentation(arg.Name, arg.Value, variables)
		if err != nil {
			return nil, err
		}
		argObj[arg.Name] = v
	}

	return argObj, nil
}

// valueToObjectRepresentation converts value, which is stored under name.
// List elements are converted under the name of the list itself.
func valueToObjectRepresentation(name string, value *ast.Value, variables map[string]interface{}) (interface{}, error) {
	kind := kinds.OfValue(value)

	switch {
	case kinds.IsNumber(kind):
		return parseNumber(value.Raw), nil

	case kind == kinds.BooleanValue:
		return value.Raw == "true", nil

	case kinds.IsScalar(kind):
		return value.Raw, nil

	case kind == kinds.ObjectValue:
		nestedArgObj := make(map[string]interface{}, len(value.Children))
		for _, child := range value.Children {
			v, err := valueToObjectRepresentation(child.Name, child.Value, variables)
			if err != nil {
				return nil, err
			}
			nestedArgObj[child.Name] = v
		}
		return nestedArgObj, nil

	case kind == kinds.Variable:
		variableValue, ok := variables[value.Raw]
		if !ok {
			return nil, unboundVariableError(value.Position, value.Raw)
		}
		return variableValue, nil

	case kind == kinds.ListValue:
		list := make([]interface{}, 0, len(value.Children))
		for _, child := range value.Children {
			v, err := valueToObjectRepresentation(name, child.Value, variables)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil

	default:
		var pos *ast.Position
		if value != nil {
			pos = value.Position
		}
		return nil, unsupportedValueKindError(pos, name, kind)
	}
}

// parseNumber handles int and float literals alike. Text that isn't a number gives NaN.
func parseNumber(raw string) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			// ±Inf or 0, as returned
			return f
		}
		return math.NaN()
	}
	return f
}
