package workspace

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/workspace.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// getSchema compiles the embedded listing-record schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("workspace.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("workspace.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateRecord checks one listing line against the record schema.
// Any validation failure is fatal for the whole run.
func validateRecord(line []byte) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(line))
	if err != nil {
		return fmt.Errorf("parsing workspace record %q: %w", line, err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validating workspace record: %w", err)
	}
	return fmt.Errorf("invalid workspace record %q: %s", line, strings.Join(collectIssues(validationErr), "; "))
}

// collectIssues walks the error tree and renders leaf errors with their
// instance location.
func collectIssues(ve *jsonschema.ValidationError) []string {
	var issues []string
	var walk func(*jsonschema.ValidationError)
	walk = func(ve *jsonschema.ValidationError) {
		if len(ve.Causes) == 0 {
			msg := ""
			if ve.ErrorKind != nil {
				msg = ve.ErrorKind.LocalizedString(printer)
			}
			if msg == "" {
				return
			}
			if len(ve.InstanceLocation) > 0 {
				msg = "/" + strings.Join(ve.InstanceLocation, "/") + ": " + msg
			}
			issues = append(issues, msg)
			return
		}
		for _, cause := range ve.Causes {
			walk(cause)
		}
	}
	walk(ve)

	if len(issues) == 0 {
		return []string{ve.Error()}
	}
	return issues
}
