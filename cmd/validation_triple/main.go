// Package main provides the validation_triple CLI application.
// It plots how well substructure matches cover true atom counts.
package main

import "github.com/aprl-ssp/ctypes/cmd"

func main() {
	cmd.ExecuteValidation()
}
