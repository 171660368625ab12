package main

import (
	"log"
	"os"
)

// log.Fatal and os.Exit are allowed in main.main only.
func main() {
	if len(os.Args) > 2 {
		log.Fatalf("too many args: %d", len(os.Args))
	}
	log.Fatal("fatal in main")
	os.Exit(1)
}

func run() error {
	return nil
}
