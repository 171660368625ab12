package panicusage

import (
	"log"
	"os"
)

func fatalOutsideMain() {
	log.Fatal("fatal")        // want "log.Fatal should not be called outside main.main"
	log.Fatalf("fatal %d", 1) // want "log.Fatalf should not be called outside main.main"
	os.Exit(1)                // want "os.Exit should not be called outside main.main"
}

func panicEverywhere() {
	panic("boom") // want "use of builtin panic is forbidden"
}

func printIsFine() {
	log.Println("ok")
}
