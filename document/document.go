// Package document inspects the shape of parsed GraphQL documents.
//
// gqlparser keeps operations and fragments in separate lists. Document keeps them in a
// single ordered list of kind tagged definitions, so "last definition wins" style
// lookups follow the order the definitions had in the source.
package document

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vvakame/gqldoc/kinds"
)

var _ Definition = (*OperationDefinition)(nil)
var _ Definition = (*FragmentDefinition)(nil)

type Document struct {
	Kind        kinds.Kind
	Definitions []Definition
	Position    *ast.Position
}

// Definition is either *OperationDefinition or *FragmentDefinition.
type Definition interface {
	GetKind() kinds.Kind
	GetPosition() *ast.Position
	isDefinition()
}

type OperationDefinition struct {
	*ast.OperationDefinition
}

func (def *OperationDefinition) GetKind() kinds.Kind {
	return kinds.OperationDefinition
}

func (def *OperationDefinition) GetPosition() *ast.Position {
	if def.OperationDefinition == nil {
		return nil
	}
	return def.Position
}

func (def *OperationDefinition) isDefinition() {}

type FragmentDefinition struct {
	*ast.FragmentDefinition
}

func (def *FragmentDefinition) GetKind() kinds.Kind {
	return kinds.FragmentDefinition
}

func (def *FragmentDefinition) GetPosition() *ast.Position {
	if def.FragmentDefinition == nil {
		return nil
	}
	return def.Position
}

func (def *FragmentDefinition) isDefinition() {}

func NewDocument(definitions ...Definition) *Document {
	return &Document{
		Kind:        kinds.Document,
		Definitions: definitions,
	}
}

// Parse parses a GraphQL query document and wraps it with FromQueryDocument.
func Parse(source *ast.Source) (*Document, error) {
	queryDoc, err := parser.ParseQuery(source)
	if err != nil {
		return nil, err
	}

	return FromQueryDocument(queryDoc), nil
}

// FromQueryDocument merges operations and fragments back into source order.
// Definitions without a position keep the operations-then-fragments order.
func FromQueryDocument(queryDoc *ast.QueryDocument) *Document {
	if queryDoc == nil {
		return nil
	}

	definitions := make([]Definition, 0, len(queryDoc.Operations)+len(queryDoc.Fragments))
	for _, op := range queryDoc.Operations {
		definitions = append(definitions, &OperationDefinition{op})
	}
	for _, fragment := range queryDoc.Fragments {
		definitions = append(definitions, &FragmentDefinition{fragment})
	}

	sort.SliceStable(definitions, func(i, j int) bool {
		a, b := definitions[i].GetPosition(), definitions[j].GetPosition()
		if a == nil || b == nil {
			return false
		}
		return a.Start < b.Start
	})

	return &Document{
		Kind:        kinds.Document,
		Definitions: definitions,
		Position:    queryDoc.Position,
	}
}

// QueryDocument rebuilds the gqlparser document, e.g. for formatter or an executor.
func (doc *Document) QueryDocument() *ast.QueryDocument {
	if doc == nil {
		return nil
	}

	queryDoc := &ast.QueryDocument{
		Position: doc.Position,
	}
	for _, def := range doc.Definitions {
		switch def := def.(type) {
		case *OperationDefinition:
			queryDoc.Operations = append(queryDoc.Operations, def.OperationDefinition)
		case *FragmentDefinition:
			queryDoc.Fragments = append(queryDoc.Fragments, def.FragmentDefinition)
		}
	}

	return queryDoc
}
