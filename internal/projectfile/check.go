package projectfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/alexanderramin/sdlc/internal/domain"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "projectfile.schema.json"

//go:embed schema.json
var schemaJSON []byte

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// CheckError is one problem found by Check, located by a dotted field path.
type CheckError struct {
	Path string
	Err  error
}

func (e *CheckError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *CheckError) Unwrap() error { return e.Err }

// Check strictly validates a project document. Load accepts far more than
// Check does; Check is meant for linting files before they are shared.
func Check(data []byte) []error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return []error{&CheckError{Err: fmt.Errorf("parsing JSON: %v: %w", err, domain.ErrMalformedInput)}}
	}

	schema, err := loadSchema()
	if err != nil {
		return []error{err}
	}

	var errs []error
	if err := schema.Validate(doc); err != nil {
		errs = appendSchemaErrors(errs, err)
	}
	if obj, ok := doc.(map[string]any); ok {
		errs = append(errs, checkSemantics(obj)...)
	}
	return errs
}

func loadSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			compileErr = fmt.Errorf("loading project schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// checkSemantics covers rules JSON Schema cannot express.
func checkSemantics(obj map[string]any) []error {
	var errs []error

	if reqs, ok := obj["requerimientos"].([]any); ok {
		seen := make(map[string]int)
		for i, r := range reqs {
			s, ok := r.(string)
			if !ok {
				continue
			}
			key := strings.ToLower(strings.TrimSpace(s))
			if first, dup := seen[key]; dup {
				errs = append(errs, &CheckError{
					Path: fmt.Sprintf("requerimientos[%d]", i),
					Err:  fmt.Errorf("duplicates requerimientos[%d] %q", first, s),
				})
				continue
			}
			seen[key] = i
		}
	}

	phase, _ := obj["fase_actual"].(string)
	if p, ok := domain.ParsePhase(phase); ok {
		if progress, ok := obj["progreso_aproximado"].(float64); ok {
			want := domain.NewProject("", "", domain.WithPhase(string(p))).ProgressPercentage()
			if int(progress) != want {
				errs = append(errs, &CheckError{
					Path: "progreso_aproximado",
					Err:  fmt.Errorf("is %d but phase %q implies %d", int(progress), p, want),
				})
			}
		}
	}

	start, _ := obj["fecha_inicio"].(string)
	end, _ := obj["fecha_fin_estimada"].(string)
	if s, e := ParseDate(start), ParseDate(end); s != nil && e != nil && e.Before(*s) {
		errs = append(errs, &CheckError{
			Path: "fecha_fin_estimada",
			Err:  fmt.Errorf("%s is before fecha_inicio %s", end, start),
		})
	}

	return errs
}

func appendSchemaErrors(errs []error, err error) []error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return append(errs, err)
	}
	return collectSchemaErrors(errs, ve)
}

func collectSchemaErrors(errs []error, ve *jsonschema.ValidationError) []error {
	if len(ve.Causes) == 0 {
		return append(errs, &CheckError{
			Path: jsonPointerToPath(ve.InstanceLocation),
			Err:  fmt.Errorf("%s", ve.Message),
		})
	}
	for _, cause := range ve.Causes {
		errs = collectSchemaErrors(errs, cause)
	}
	return errs
}

func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
