package document

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldoc/kinds"
)

// FragmentMap maps fragment names to their definitions.
type FragmentMap map[string]*ast.FragmentDefinition

// Names returns the fragment names in lexical order.
func (m FragmentMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckDocument reports an error if doc is not a document, or if it contains more
// than one operation definition. Fragments are not counted.
func CheckDocument(doc *Document) error {
	if doc == nil || doc.Kind != kinds.Document {
		return malformedDocumentError()
	}

	var count int
	for _, def := range doc.Definitions {
		if def == nil || def.GetKind() != kinds.OperationDefinition {
			continue
		}
		count++
		if count > 1 {
			return multipleOperationsError(def.GetPosition())
		}
	}

	return nil
}

// GetOperationDefinition returns the last operation definition of the given kind.
func GetOperationDefinition(doc *Document, operation ast.Operation) (*ast.OperationDefinition, error) {
	if err := CheckDocument(doc); err != nil {
		return nil, err
	}

	var found *ast.OperationDefinition
	for _, def := range doc.Definitions {
		opDef, ok := def.(*OperationDefinition)
		if !ok || opDef.OperationDefinition == nil {
			continue
		}
		if opDef.Operation == operation {
			found = opDef.OperationDefinition
		}
	}

	if found == nil {
		return nil, missingDefinitionError(operation)
	}

	return found, nil
}

func GetQueryDefinition(doc *Document) (*ast.OperationDefinition, error) {
	return GetOperationDefinition(doc, ast.Query)
}

func GetMutationDefinition(doc *Document) (*ast.OperationDefinition, error) {
	return GetOperationDefinition(doc, ast.Mutation)
}

// GetOperationName returns the name of the last named operation, or "".
// Unlike the other lookups it doesn't check the document first.
func GetOperationName(doc *Document) string {
	if doc == nil {
		return ""
	}

	var name string
	for _, def := range doc.Definitions {
		opDef, ok := def.(*OperationDefinition)
		if !ok || opDef.OperationDefinition == nil {
			continue
		}
		if opDef.Name != "" {
			name = opDef.Name
		}
	}

	return name
}

// GetFragmentDefinitions returns every fragment definition in document order.
func GetFragmentDefinitions(doc *Document) ast.FragmentDefinitionList {
	fragments := ast.FragmentDefinitionList{}
	if doc == nil {
		return fragments
	}

	for _, def := range doc.Definitions {
		fragDef, ok := def.(*FragmentDefinition)
		if !ok || fragDef.FragmentDefinition == nil {
			continue
		}
		fragments = append(fragments, fragDef.FragmentDefinition)
	}

	return fragments
}

// GetFragmentDefinition returns the fragment of a document that carries exactly one
// fragment definition and nothing else.
func GetFragmentDefinition(doc *Document) (*ast.FragmentDefinition, error) {
	if doc == nil || doc.Kind != kinds.Document {
		return nil, malformedDocumentError()
	}

	if len(doc.Definitions) != 1 {
		return nil, notSingleDefinitionError()
	}

	def := doc.Definitions[0]
	fragDef, ok := def.(*FragmentDefinition)
	if !ok || fragDef.FragmentDefinition == nil {
		var pos *ast.Position
		if def != nil {
			pos = def.GetPosition()
		}
		return nil, notAFragmentError(pos)
	}

	return fragDef.FragmentDefinition, nil
}

// CreateFragmentMap indexes fragments by name. Later duplicates overwrite earlier ones.
func CreateFragmentMap(fragments ...*ast.FragmentDefinition) FragmentMap {
	m := make(FragmentMap, len(fragments))
	for _, fragment := range fragments {
		if fragment == nil {
			continue
		}
		m[fragment.Name] = fragment
	}

	return m
}

// AddFragmentsToDocument returns a new document with fragments appended to the
// definitions of doc. doc itself is left untouched and nothing is deduplicated.
func AddFragmentsToDocument(doc *Document, fragments ast.FragmentDefinitionList) (*Document, error) {
	if err := CheckDocument(doc); err != nil {
		return nil, err
	}

	definitions := make([]Definition, 0, len(doc.Definitions)+len(fragments))
	definitions = append(definitions, doc.Definitions...)
	for _, fragment := range fragments {
		definitions = append(definitions, &FragmentDefinition{fragment})
	}

	newDoc := *doc
	newDoc.Definitions = definitions

	return &newDoc, nil
}

// GetMainDefinition returns the query operation of doc, or its first fragment if
// there is no query. Mutations and subscriptions are never returned.
func GetMainDefinition(doc *Document) (Definition, error) {
	if err := CheckDocument(doc); err != nil {
		return nil, err
	}

	if queryDef, err := GetQueryDefinition(doc); err == nil {
		return &OperationDefinition{queryDef}, nil
	}

	fragments := GetFragmentDefinitions(doc)
	if len(fragments) == 0 {
		return nil, noQueryOrFragmentError()
	}

	return &FragmentDefinition{fragments[0]}, nil
}
