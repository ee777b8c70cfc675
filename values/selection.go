package values

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldoc/kinds"
)

// ResultKeyNameFromField returns the key a field's value is stored under in a result.
func ResultKeyNameFromField(field *ast.Field) string {
	if field.Alias != "" {
		return field.Alias
	}
	return field.Name
}

func IsField(selection ast.Selection) bool {
	return kinds.OfSelection(selection) == kinds.Field
}

func IsInlineFragment(selection ast.Selection) bool {
	return kinds.OfSelection(selection) == kinds.InlineFragment
}
