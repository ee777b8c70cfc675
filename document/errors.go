package document

import (
	"errors"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vvakame/gqldoc/internal/gqlerr"
)

var (
	ErrMalformedDocument   = errors.New("malformed document")
	ErrMultipleOperations  = errors.New("multiple operations")
	ErrMissingDefinition   = errors.New("missing definition")
	ErrNotSingleDefinition = errors.New("not a single definition")
	ErrNotAFragment        = errors.New("not a fragment")
	ErrNoQueryOrFragment   = errors.New("no query or fragment")
)

func malformedDocumentError() *gqlerror.Error {
	return gqlerr.New(
		ErrMalformedDocument,
		"MALFORMED_DOCUMENT",
		nil,
		`expecting a parsed GraphQL document. Perhaps you need to parse the query string with gqlparser (parser.ParseQuery or document.Parse) first?`,
	)
}

func multipleOperationsError(pos *ast.Position) *gqlerror.Error {
	return gqlerr.New(
		ErrMultipleOperations,
		"MULTIPLE_OPERATIONS",
		pos,
		"queries must have exactly one operation definition",
	)
}

func missingDefinitionError(operation ast.Operation) *gqlerror.Error {
	return gqlerr.New(
		ErrMissingDefinition,
		"MISSING_DEFINITION",
		nil,
		"must contain a %s definition",
		operation,
	)
}

func notSingleDefinitionError() *gqlerror.Error {
	return gqlerr.New(
		ErrNotSingleDefinition,
		"NOT_SINGLE_DEFINITION",
		nil,
		"fragment must have exactly one definition",
	)
}

func notAFragmentError(pos *ast.Position) *gqlerror.Error {
	return gqlerr.New(
		ErrNotAFragment,
		"NOT_A_FRAGMENT",
		pos,
		"must be a fragment definition",
	)
}

func noQueryOrFragmentError() *gqlerror.Error {
	return gqlerr.New(
		ErrNoQueryOrFragment,
		"NO_QUERY_OR_FRAGMENT",
		nil,
		"expected a parsed GraphQL query with a query or a fragment",
	)
}
