package values

import (
	"errors"
	"math"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vvakame/gqldoc/internal/gqlerr"
)

// firstField returns the first top level field of the only operation in input.
func firstField(t *testing.T, input string) *ast.Field {
	t.Helper()

	queryDoc, err := parser.ParseQuery(&ast.Source{
		Name:  "query.graphql",
		Input: input,
	})
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, queryDoc.Operations, 1)

	field, ok := queryDoc.Operations[0].SelectionSet[0].(*ast.Field)
	require.True(t, ok)
	return field
}

func TestArgumentsObjectFromField(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		variables map[string]interface{}
		want      map[string]interface{}
	}{
		{
			name:  "nested object",
			query: `{ users(filter: {name: "x", limit: 5}) { id } }`,
			want: map[string]interface{}{
				"filter": map[string]interface{}{
					"name":  "x",
					"limit": float64(5),
				},
			},
		},
		{
			name:  "list",
			query: `{ posts(tags: [1, 2, 3]) { id } }`,
			want: map[string]interface{}{
				"tags": []interface{}{float64(1), float64(2), float64(3)},
			},
		},
		{
			name:      "variable",
			query:     `query ($userId: ID!) { user(id: $userId) { id } }`,
			variables: map[string]interface{}{"userId": 42},
			want: map[string]interface{}{
				"id": 42,
			},
		},
		{
			name:      "variable is not converted",
			query:     `query ($where: Where) { users(where: $where) { id } }`,
			variables: map[string]interface{}{"where": map[string]interface{}{"age": "10"}},
			want: map[string]interface{}{
				"where": map[string]interface{}{"age": "10"},
			},
		},
		{
			name:  "scalars",
			query: `{ search(text: "hello", exact: true, fuzzy: false, order: DESC, ratio: 0.5, offset: -3) }`,
			want: map[string]interface{}{
				"text":   "hello",
				"exact":  true,
				"fuzzy":  false,
				"order":  "DESC",
				"ratio":  0.5,
				"offset": float64(-3),
			},
		},
		{
			name: "block string",
			query: heredoc.Doc(`
				{ comment(body: """
				  multi
				  line
				""") }
			`),
			want: map[string]interface{}{
				"body": "multi\nline",
			},
		},
		{
			name:  "list of objects",
			query: `{ sort(by: [{field: "name", desc: true}, {field: "age"}]) }`,
			want: map[string]interface{}{
				"by": []interface{}{
					map[string]interface{}{"field": "name", "desc": true},
					map[string]interface{}{"field": "age"},
				},
			},
		},
		{
			name:      "nested lists and variables",
			query:     `query ($a: Int, $b: Int) { matrix(rows: [[1, $a], [$b]]) }`,
			variables: map[string]interface{}{"a": "A", "b": nil},
			want: map[string]interface{}{
				"rows": []interface{}{
					[]interface{}{float64(1), "A"},
					[]interface{}{nil},
				},
			},
		},
		{
			name:  "empty object",
			query: `{ users(filter: {}) { id } }`,
			want: map[string]interface{}{
				"filter": map[string]interface{}{},
			},
		},
		{
			name:  "empty list",
			query: `{ users(ids: []) { id } }`,
			want: map[string]interface{}{
				"ids": []interface{}{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := firstField(t, tt.query)

			got, err := ArgumentsObjectFromField(field, tt.variables)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArgumentsObjectFromField_NoArguments(t *testing.T) {
	got, err := ArgumentsObjectFromField(firstField(t, `{ me { id } }`), nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	withEmptyObject, err := ArgumentsObjectFromField(firstField(t, `{ me(filter: {}) { id } }`), nil)
	require.NoError(t, err)
	assert.NotNil(t, withEmptyObject)
	assert.Equal(t, map[string]interface{}{"filter": map[string]interface{}{}}, withEmptyObject)

	got, err = ArgumentsObjectFromField(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestArgumentsObjectFromField_Errors(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		variables map[string]interface{}
		isErr     error
		code      string
	}{
		{
			name:      "unbound variable",
			query:     `query ($userId: ID!) { user(id: $userId) { id } }`,
			variables: map[string]interface{}{},
			isErr:     ErrUnboundVariable,
			code:      "UNBOUND_VARIABLE",
		},
		{
			name:  "nil variables",
			query: `query ($userId: ID!) { user(id: $userId) { id } }`,
			isErr: ErrUnboundVariable,
			code:  "UNBOUND_VARIABLE",
		},
		{
			name:      "unbound variable inside object inside list",
			query:     `query ($v: String) { users(where: [{name: $v}]) { id } }`,
			variables: map[string]interface{}{"w": "x"},
			isErr:     ErrUnboundVariable,
			code:      "UNBOUND_VARIABLE",
		},
		{
			name:  "null",
			query: `{ users(filter: null) { id } }`,
			isErr: ErrUnsupportedValueKind,
			code:  "UNSUPPORTED_VALUE_KIND",
		},
		{
			name:  "null inside object",
			query: `{ users(filter: {name: null}) { id } }`,
			isErr: ErrUnsupportedValueKind,
			code:  "UNSUPPORTED_VALUE_KIND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := firstField(t, tt.query)

			got, err := ArgumentsObjectFromField(field, tt.variables)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tt.isErr), "unexpected error: %v", err)
			assert.Equal(t, tt.code, gqlerr.Code(err))
		})
	}
}

func TestArgumentsObjectFromField_UnsupportedMessage(t *testing.T) {
	_, err := ArgumentsObjectFromField(firstField(t, `{ users(ids: [1, null]) { id } }`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `the inline argument "ids" of kind "NullValue" is not supported`)
	assert.Contains(t, err.Error(), "Use variables instead")
}

func TestArgumentsObjectFromField_UnboundMessage(t *testing.T) {
	_, err := ArgumentsObjectFromField(firstField(t, `query ($userId: ID) { user(id: $userId) { id } }`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `the inline argument "userId" is expected as a variable but was not provided`)
}

func TestArgumentsObjectFromDirective(t *testing.T) {
	field := firstField(t, `query ($skip: Boolean!) { me @skip(if: $skip) @deprecated { id } }`)

	args, err := ArgumentsObjectFromDirective(field.Directives.ForName("skip"), map[string]interface{}{"skip": true})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"if": true}, args)

	args, err = ArgumentsObjectFromDirective(field.Directives.ForName("deprecated"), nil)
	require.NoError(t, err)
	assert.Nil(t, args)

	args, err = ArgumentsObjectFromDirective(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, args)
}

func TestValueToObjectRepresentation_UnknownKinds(t *testing.T) {
	_, err := valueToObjectRepresentation("arg", nil, nil)
	assert.True(t, errors.Is(err, ErrUnsupportedValueKind))

	_, err = valueToObjectRepresentation("arg", &ast.Value{Kind: ast.ValueKind(255)}, nil)
	assert.True(t, errors.Is(err, ErrUnsupportedValueKind))
	assert.Contains(t, err.Error(), `of kind "Unknown"`)
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, float64(10), parseNumber("10"))
	assert.Equal(t, -1.25, parseNumber("-1.25"))
	assert.Equal(t, 1e3, parseNumber("1e3"))
	assert.True(t, math.IsInf(parseNumber("1e400"), 1))
	assert.True(t, math.IsNaN(parseNumber("abc")))
}
