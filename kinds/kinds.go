// Package kinds is the closed node kind vocabulary shared with the upstream parser.
package kinds

import "github.com/vektah/gqlparser/v2/ast"

type Kind string

const (
	Document            Kind = "Document"
	OperationDefinition Kind = "OperationDefinition"
	FragmentDefinition  Kind = "FragmentDefinition"

	Field          Kind = "Field"
	InlineFragment Kind = "InlineFragment"
	FragmentSpread Kind = "FragmentSpread"

	IntValue     Kind = "IntValue"
	FloatValue   Kind = "FloatValue"
	StringValue  Kind = "StringValue"
	BooleanValue Kind = "BooleanValue"
	EnumValue    Kind = "EnumValue"
	ObjectValue  Kind = "ObjectValue"
	ListValue    Kind = "ListValue"
	Variable     Kind = "Variable"

	// gqlparser has its own kind for block strings.
	BlockStringValue Kind = "BlockStringValue"
	NullValue        Kind = "NullValue"

	Unknown Kind = "Unknown"
)

func (k Kind) String() string {
	return string(k)
}

// OfValue classifies a gqlparser value node. nil yields Unknown.
func OfValue(value *ast.Value) Kind {
	if value == nil {
		return Unknown
	}

	switch value.Kind {
	case ast.Variable:
		return Variable
	case ast.IntValue:
		return IntValue
	case ast.FloatValue:
		return FloatValue
	case ast.StringValue:
		return StringValue
	case ast.BlockValue:
		return BlockStringValue
	case ast.BooleanValue:
		return BooleanValue
	case ast.NullValue:
		return NullValue
	case ast.EnumValue:
		return EnumValue
	case ast.ListValue:
		return ListValue
	case ast.ObjectValue:
		return ObjectValue
	default:
		return Unknown
	}
}

// OfSelection classifies a selection set element.
func OfSelection(selection ast.Selection) Kind {
	switch selection.(type) {
	case *ast.Field:
		return Field
	case *ast.InlineFragment:
		return InlineFragment
	case *ast.FragmentSpread:
		return FragmentSpread
	default:
		return Unknown
	}
}

func IsNumber(k Kind) bool {
	switch k {
	case IntValue, FloatValue:
		return true
	default:
		return false
	}
}

func IsScalar(k Kind) bool {
	switch k {
	case StringValue, BlockStringValue, BooleanValue, EnumValue:
		return true
	default:
		return false
	}
}
