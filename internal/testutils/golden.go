package testutils

import (
	"encoding/json"
	"os"
	"path"

	"github.com/pmezard/go-difflib/difflib"
)

// CheckGoldenFile compares actual with the file at expectFilePath.
// The file is written when it does not exist yet.
func CheckGoldenFile(t TestingT, actual []byte, expectFilePath string) {
	t.Helper()

	expect, err := os.ReadFile(expectFilePath)
	if os.IsNotExist(err) {
		err = os.MkdirAll(path.Dir(expectFilePath), 0755)
		if err != nil {
			t.Fatal(err)
		}
		err = os.WriteFile(expectFilePath, actual, 0444)
		if err != nil {
			t.Fatal(err)
		}
		t.Logf("golden file %s is created", expectFilePath)
		return
	} else if err != nil {
		t.Error(err)
		return
	}

	if string(expect) != string(actual) {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(expect)),
			B:        difflib.SplitLines(string(actual)),
			FromFile: expectFilePath,
			ToFile:   "actual",
			Context:  5,
		}
		d, err := difflib.GetUnifiedDiffString(diff)
		if err != nil {
			t.Fatal(err)
		}
		t.Error(d)
	}
}

// CheckGoldenJSON marshals v as indented JSON with a trailing newline and compares it
// with CheckGoldenFile.
func CheckGoldenJSON(t TestingT, v interface{}, expectFilePath string) {
	t.Helper()

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	b = append(b, '\n')

	CheckGoldenFile(t, b, expectFilePath)
}
