package values

import (
	"errors"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vvakame/gqldoc/internal/gqlerr"
	"github.com/vvakame/gqldoc/kinds"
)

var (
	ErrUnboundVariable      = errors.New("unbound variable")
	ErrUnsupportedValueKind = errors.New("unsupported value kind")
)

func unboundVariableError(pos *ast.Position, variableName string) *gqlerror.Error {
	return gqlerr.New(
		ErrUnboundVariable,
		"UNBOUND_VARIABLE",
		pos,
		`the inline argument "%s" is expected as a variable but was not provided`,
		variableName,
	)
}

func unsupportedValueKindError(pos *ast.Position, name string, kind kinds.Kind) *gqlerror.Error {
	return gqlerr.New(
		ErrUnsupportedValueKind,
		"UNSUPPORTED_VALUE_KIND",
		pos,
		`the inline argument "%s" of kind "%s" is not supported. Use variables instead of inline arguments to overcome this limitation`,
		name,
		kind,
	)
}
