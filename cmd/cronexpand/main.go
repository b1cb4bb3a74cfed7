// Command cronexpand expands a five-field schedule expression and prints
// each field's concrete values as an aligned table.
package main

import (
	"fmt"
	"os"

	"github.com/t77yq/cronexpand/internal/cron"
	"github.com/t77yq/cronexpand/internal/table"
)

const usage = `Usage: cronexpand "<schedule-expression>"`

func main() {
	// Exactly one argument: the full expression as a single string.
	if len(os.Args) != 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	out, err := expand(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(out)
}

func expand(expr string) (string, error) {
	sched, err := cron.Parse(expr)
	if err != nil {
		return "", err
	}

	expanded, err := sched.Expand()
	if err != nil {
		return "", err
	}

	return table.Render(expanded.Rows()), nil
}
