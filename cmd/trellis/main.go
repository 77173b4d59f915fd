// Command trellis inspects, renders and runs widget trees described by
// theme files.
package main

import (
	"log"
	"os"

	"github.com/go-drift/trellis/cmd/trellis/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("trellis: ")
	if err := cmd.Execute(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
