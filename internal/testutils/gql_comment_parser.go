package testutils

import (
	"fmt"
	"os"
	"path"
	"regexp"

	"github.com/goccy/go-yaml"
)

func findOption(t TestingT, optionName, source string) (string, bool) {
	t.Helper()

	pattern := fmt.Sprintf("(?m)^# option:%s:\\s*([^\\s]+)$", regexp.QuoteMeta(optionName))
	re, err := regexp.Compile(pattern)
	if err != nil {
		t.Fatal(err)
	}

	ss := re.FindStringSubmatch(source)
	if len(ss) != 2 {
		t.Logf("option %s value is not found", optionName)
		return "", false
	}

	return ss[1], true
}

// FindOptionString returns the value of a "# option:name: value" line in source.
func FindOptionString(t TestingT, optionName, source string) string {
	t.Helper()

	v, _ := findOption(t, optionName, source)
	return v
}

func FindOptionBool(t TestingT, optionName, source string) bool {
	t.Helper()

	v, _ := findOption(t, optionName, source)
	return v == "true"
}

// LoadVariables reads the YAML or JSON file named by the "variables" option, relative
// to dir. It returns nil when the option is absent.
func LoadVariables(t TestingT, dir, source string) map[string]interface{} {
	t.Helper()

	fileName, ok := findOption(t, "variables", source)
	if !ok {
		return nil
	}

	b, err := os.ReadFile(path.Join(dir, fileName))
	if err != nil {
		t.Fatal(err)
	}

	variables := make(map[string]interface{})
	err = yaml.Unmarshal(b, &variables)
	if err != nil {
		t.Fatal(err)
	}

	return variables
}
