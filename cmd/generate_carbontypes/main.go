// Package main provides the generate_carbontypes CLI application.
// It builds carbon-type matrices from substructure matches.
package main

import "github.com/aprl-ssp/ctypes/cmd"

func main() {
	cmd.ExecuteCarbonTypes()
}
