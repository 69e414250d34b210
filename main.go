// Package main is the entry point for the boxoffice CLI application.
// It manages the local session for the movie ticket booking service.
package main

import (
	"boxoffice/cli/cmd"
)

// main is the entry point for the boxoffice CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
