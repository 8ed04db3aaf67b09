package types

// Result contains the rendered SQL and its bound values.
// Positional dialects fill Values; named dialects fill Parameters.
type Result struct {
	Parameters map[string]any
	SQL        string
	Values     []any
}
