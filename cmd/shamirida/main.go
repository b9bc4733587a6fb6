// shamirida splits a file into n shares such that any k reconstruct it,
// or joins k such shares back into the original file.
package main

import "github.com/lcrostarosa/shamirida/internal/cli"

const version = "0.1.0"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
