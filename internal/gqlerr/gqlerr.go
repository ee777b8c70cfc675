package gqlerr

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

const CodeKey = "code"

// New builds a *gqlerror.Error that wraps sentinel and carries code in its extensions.
// pos is used for the location when it points into a parsed source.
func New(sentinel error, code string, pos *ast.Position, message string, args ...interface{}) *gqlerror.Error {
	var gErr *gqlerror.Error
	if pos != nil && pos.Src != nil {
		gErr = gqlerror.ErrorPosf(pos, message, args...)
	} else {
		gErr = gqlerror.Errorf(message, args...)
	}
	gErr.Err = sentinel
	if gErr.Extensions == nil {
		gErr.Extensions = make(map[string]interface{})
	}
	gErr.Extensions[CodeKey] = code

	return gErr
}

// Code returns the code stored by New, or "" for foreign errors.
func Code(err error) string {
	gErr, ok := err.(*gqlerror.Error)
	if !ok || gErr == nil {
		return ""
	}
	code, _ := gErr.Extensions[CodeKey].(string)
	return code
}
