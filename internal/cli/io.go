package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldoc/document"
)

func loadDocument(filePath string) (*document.Document, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return document.Parse(&ast.Source{
		Name:  filePath,
		Input: string(b),
	})
}

// loadVariables reads a YAML or JSON object. An empty path yields nil variables.
func loadVariables(filePath string) (map[string]interface{}, error) {
	if filePath == "" {
		return nil, nil
	}

	b, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	variables := make(map[string]interface{})
	err = yaml.Unmarshal(b, &variables)
	if err != nil {
		return nil, err
	}

	return variables, nil
}

// render writes v as YAML, or as indented JSON when cfg.JSON is set.
// yaml.MapSlice values are turned into plain maps for JSON.
func render(w io.Writer, cfg *Config, v interface{}) error {
	var b []byte
	var err error
	if cfg.JSON {
		b, err = json.MarshalIndent(toJSONValue(v), "", "  ")
		b = append(b, '\n')
	} else {
		b, err = yaml.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}

func toJSONValue(v interface{}) interface{} {
	ms, ok := v.(yaml.MapSlice)
	if !ok {
		return v
	}

	m := make(map[string]interface{}, len(ms))
	for _, item := range ms {
		key, _ := item.Key.(string)
		m[key] = toJSONValue(item.Value)
	}
	return m
}
