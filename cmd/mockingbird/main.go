// Package main provides a CLI that compiles declarative query definitions to
// dialect SQL.
//
// The CLI supports:
//   - compile: Compile YAML or JSON definitions for a dialect
//   - dialects: List the available dialects
//   - config show: Print the effective configuration
package main

func main() {
	Execute()
}
