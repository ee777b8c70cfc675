package values

import "github.com/mitchellh/mapstructure"

// DecodeArguments copies an argument object produced by ArgumentsObjectFromField into
// out, which must be a pointer. Struct fields are matched by their json tag.
func DecodeArguments(args map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(args)
}
