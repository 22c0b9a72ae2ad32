// Command validate-data loads the bundled dataset and checks record
// counts, known lookups and hierarchy consistency.
//
// Usage:
//
//	go run ./cmd/validate-data [data-dir]
//
// With no argument the embedded tables are validated. Passing a
// directory validates freshly edited JSON tables before they are
// committed into bdgeo-data/.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/zyxasaduzzaman/bdgeo"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	opts := []bdgeo.Option{bdgeo.WithLogger(logger)}
	if len(os.Args) > 1 {
		opts = append(opts, bdgeo.WithDataDir(os.Args[1]))
		fmt.Printf("Validating dataset in %s...\n", os.Args[1])
	} else {
		fmt.Println("Validating embedded dataset...")
	}

	if err := bdgeo.ValidateData(opts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Dataset is consistent.")
}
