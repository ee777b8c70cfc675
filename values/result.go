package values

import "github.com/99designs/gqlgen/graphql"

// GraphQLResultHasError reports whether result carries at least one error.
func GraphQLResultHasError(result *graphql.Response) bool {
	return result != nil && len(result.Errors) != 0
}
