package entities

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// decodeHCL parses an HCL manifest. Expressions may read the process
// environment through the "env" object, e.g. main_dir = env.WORKSPACE_DIR.
func decodeHCL(data []byte, filename string) (*Settings, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var settings Settings
	if decodeDiags := gohcl.DecodeBody(file.Body, hclEvalContext(), &settings); decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %s", decodeDiags.Error())
	}
	return &settings, nil
}

func hclEvalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, pair := range os.Environ() {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" || !utf8.ValidString(value) {
			continue
		}
		env[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
