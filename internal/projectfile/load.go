package projectfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/sdlc/internal/domain"
)

// DefaultName is used when a file carries no project name.
const DefaultName = "Proyecto sin nombre"

// dateTimeLayouts are tried, in order, when a date field is not a plain
// YYYY-MM-DD value. Only the date portion of a match is kept.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15",
}

// Load reads the project stored at path. A missing file yields
// domain.ErrNotFound and content that is not a JSON object yields
// domain.ErrMalformedInput. Missing or wrongly typed fields take defaults and
// unparseable dates are dropped.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("project file %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading project file %s: %w", path, err)
	}
	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("project file %s: %w", path, err)
	}
	return p, nil
}

// Decode builds a project from JSON document bytes, going through the same
// normalization as domain.NewProject.
func Decode(data []byte) (*domain.Project, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing JSON: %v: %w", err, domain.ErrMalformedInput)
	}
	if raw == nil {
		return nil, fmt.Errorf("document is null: %w", domain.ErrMalformedInput)
	}

	name := domain.StrFromPtrWithDefault(DefaultName, stringField(raw, "nombre"))
	description := domain.StrFromPtrWithDefault("", stringField(raw, "descripcion"))

	opts := []domain.Option{
		domain.WithRequirements(stringsField(raw, "requerimientos")...),
		domain.WithTeam(stringsField(raw, "equipo")...),
		domain.WithEstimatedEndDate(dateField(raw, "fecha_fin_estimada")),
	}
	if phase := stringField(raw, "fase_actual"); phase != nil {
		opts = append(opts, domain.WithPhase(*phase))
	}
	if start := dateField(raw, "fecha_inicio"); start != nil {
		opts = append(opts, domain.WithStartDate(*start))
	}

	return domain.NewProject(name, description, opts...), nil
}

// stringField returns the string stored under key, or nil when the key is
// absent, null or not a string.
func stringField(raw map[string]json.RawMessage, key string) *string {
	msg, ok := raw[key]
	if !ok {
		return nil
	}
	var s *string
	if err := json.Unmarshal(msg, &s); err != nil {
		return nil
	}
	return s
}

// stringsField returns the string elements of the array under key. Non-string
// elements are skipped; anything other than an array yields an empty list.
func stringsField(raw map[string]json.RawMessage, key string) []string {
	msg, ok := raw[key]
	if !ok {
		return []string{}
	}
	var items []any
	if err := json.Unmarshal(msg, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func dateField(raw map[string]json.RawMessage, key string) *time.Time {
	s := stringField(raw, key)
	if s == nil {
		return nil
	}
	return ParseDate(*s)
}

// ParseDate accepts YYYY-MM-DD or an ISO 8601 date-time and returns the
// calendar date. It returns nil for anything else, including blank input.
func ParseDate(s string) *time.Time {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return &t
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := domain.DateOf(t)
			return &d
		}
	}
	return nil
}
