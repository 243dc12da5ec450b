// Package main provides the entry point for the statement-analyzer CLI.
package main

import (
	"fjacquet/statement-analyzer/cmd/root"
)

func main() {
	root.Execute()
}
