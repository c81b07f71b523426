// Command enumforge applies the library's schema transforms to JSON or
// YAML schema documents from the command line: widening against sample
// data, separating and reintegrating the flexibility layer, and producing
// strict closed-enum variants.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	forge "github.com/reoring/enumforge"
	js "github.com/reoring/enumforge/jsonschema"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:           "enumforge",
		Short:         "Grow and reshape flexible enum schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(extendCmd(), separateCmd(), integrateCmd(), strictCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "enumforge:", err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	lg, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return lg
}

// ---- document IO ----

func loadSchema(path string) (*forge.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc js.Schema
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else {
		if err := gojson.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	node, err := js.Import(&doc)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	obj, ok := node.(*forge.Object)
	if !ok {
		return nil, fmt.Errorf("%s: root schema must be an object", path)
	}
	return obj, nil
}

func writeSchema(path string, schema *forge.Object) error {
	doc, err := js.Export(schema)
	if err != nil {
		return err
	}
	var data []byte
	if isYAML(path) {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = js.Marshal(doc)
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	return writeOut(path, data)
}

func loadData(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if isYAML(path) {
		err = yaml.Unmarshal(data, &m)
	} else {
		err = gojson.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

func loadLayer(path string) (forge.Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var layer forge.Layer
	if isYAML(path) {
		err = yaml.Unmarshal(data, &layer)
	} else {
		err = gojson.Unmarshal(data, &layer)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return layer, nil
}

func writeLayer(path string, layer forge.Layer) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(layer)
	} else {
		data, err = gojson.MarshalIndent(layer, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	return writeOut(path, data)
}

func writeOut(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
