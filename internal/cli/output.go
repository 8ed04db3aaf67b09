package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/zoobzio/mockingbird"
	"github.com/zoobzio/mockingbird/querydef"
	"sigs.k8s.io/yaml"
)

// Compiled is the printable form of one compiled query. Named selects
// whether bindings print as parameters or as values.
type Compiled struct {
	SQL        string
	Values     []any
	Parameters map[string]any
	Named      bool
}

// MarshalJSON emits sql plus the binding key for the placeholder style. The
// key is present even when nothing was bound.
func (c Compiled) MarshalJSON() ([]byte, error) {
	if c.Named {
		params := c.Parameters
		if params == nil {
			params = map[string]any{}
		}
		return json.Marshal(struct {
			SQL        string         `json:"sql"`
			Parameters map[string]any `json:"parameters"`
		}{c.SQL, params})
	}
	values := c.Values
	if values == nil {
		values = []any{}
	}
	return json.Marshal(struct {
		SQL    string `json:"sql"`
		Values []any  `json:"values"`
	}{c.SQL, values})
}

// CompileDefinitions builds and compiles every definition for d. Each
// definition gets its own parameter context.
func CompileDefinitions(defs []*querydef.Definition, d mockingbird.Dialect, logger *slog.Logger) ([]Compiled, error) {
	out := make([]Compiled, 0, len(defs))
	for i, def := range defs {
		stmt, err := querydef.BuildFromSchema(def)
		if err != nil {
			return nil, DefinitionError(fmt.Sprintf("definition %d", i+1), err)
		}
		result, err := mockingbird.Compile(stmt, d)
		if err != nil {
			return nil, CompileError(fmt.Sprintf("definition %d", i+1), err)
		}
		logger.Debug("compiled definition",
			"index", i+1,
			"dialect", d.Name(),
			"values", len(result.Values),
			"parameters", len(result.Parameters),
		)
		c := Compiled{SQL: result.SQL}
		if d.Capabilities().Placeholders == mockingbird.PlaceholderNamed {
			c.Named = true
			c.Parameters = result.Parameters
		} else {
			c.Values = result.Values
		}
		out = append(out, c)
	}
	return out, nil
}

// WriteCompiled prints compiled queries. YAML output separates queries with
// document markers; JSON output is a single array.
func WriteCompiled(w io.Writer, format string, compiled []Compiled) error {
	switch format {
	case OutputJSON:
		data, err := json.MarshalIndent(compiled, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case OutputYAML:
		for i, c := range compiled {
			data, err := yaml.Marshal(c)
			if err != nil {
				return fmt.Errorf("marshaling yaml: %w", err)
			}
			if i > 0 {
				if _, err := fmt.Fprintln(w, "---"); err != nil {
					return err
				}
			}
			if _, err := w.Write(data); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
