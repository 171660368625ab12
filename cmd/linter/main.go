// Command linter runs projectlinter over the given packages:
//
//	go run ./cmd/linter ./...
package main

import "golang.org/x/tools/go/analysis/singlechecker"

func main() {
	singlechecker.Main(analyzer)
}
