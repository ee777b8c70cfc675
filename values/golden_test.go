package values

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vvakame/gqldoc/internal/testutils"
)

func TestArgumentsObjectFromField_Golden(t *testing.T) {
	const testFileDir = "./testdata/assets"
	const expectFileDir = "./testdata/expected"

	files, err := os.ReadDir(testFileDir)
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if !strings.HasSuffix(file.Name(), ".graphql") {
			continue
		}

		t.Run(file.Name(), func(t *testing.T) {
			b, err := os.ReadFile(path.Join(testFileDir, file.Name()))
			if err != nil {
				t.Fatal(err)
			}

			if testutils.FindOptionBool(t, "skip", string(b)) {
				t.SkipNow()
			}

			queryDoc, err := parser.ParseQuery(&ast.Source{
				Name:  file.Name(),
				Input: string(b),
			})
			if err != nil {
				t.Fatal(err)
			}
			if len(queryDoc.Operations) != 1 {
				t.Fatalf("%s must have exactly one operation", file.Name())
			}

			variables := testutils.LoadVariables(t, testFileDir, string(b))

			result := make(map[string]interface{})
			for _, selection := range queryDoc.Operations[0].SelectionSet {
				if !IsField(selection) {
					continue
				}
				field := selection.(*ast.Field)
				args, err := ArgumentsObjectFromField(field, variables)
				if err != nil {
					t.Fatal(err)
				}
				result[ResultKeyNameFromField(field)] = args
			}

			fileName := file.Name()[:len(file.Name())-len(".graphql")]
			testutils.CheckGoldenJSON(t, result, path.Join(expectFileDir, fileName+".json"))
		})
	}
}
