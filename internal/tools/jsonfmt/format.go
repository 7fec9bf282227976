package jsonfmt

import (
	"bytes"
	"encoding/json"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/jsonc"
)

var strict = jsoniter.ConfigCompatibleWithStandardLibrary

// beautify reformats input with indent spaces per level, or compacts it
// when indent is 0. Comments and trailing commas are accepted. Key order is
// preserved. Blank input formats to nothing.
func beautify(input string, indent int) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}

	data := jsonc.ToJSON([]byte(input))

	var v any
	if err := strict.Unmarshal(data, &v); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if indent <= 0 {
		if err := json.Compact(&buf, data); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	if err := json.Indent(&buf, bytes.TrimSpace(data), "", strings.Repeat(" ", indent)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
