// Command polyrec reconstructs the shared secret from one or more JSON
// share documents and prints it, one line per file.
//
// Usage:
//
//	polyrec FILE...
//
// For each document the constant term of the interpolated polynomial is
// printed as "secret(FILE) = VALUE". A non-integer constant term is
// reported on stderr with its exact p/q form and turns the exit code
// non-zero; it is never rounded.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/polyrec/reconstruct"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: polyrec FILE...")
		os.Exit(2)
	}

	code := 0
	for _, path := range os.Args[1:] {
		if err := run(path); err != nil {
			fmt.Fprintf(os.Stderr, "polyrec: %s: %v\n", path, err)
			code = 1
		}
	}
	os.Exit(code)
}

// run processes a single share document end to end: read, parse, decode
// the first k shares, reconstruct, report.
func run(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	doc, err := reconstruct.ParseDocument(data)
	if err != nil {
		return err
	}
	points, err := doc.Points()
	if err != nil {
		return err
	}
	res, err := reconstruct.Reconstruct(points)
	if err != nil {
		return err
	}

	secret, ok := res.Secret()
	if !ok {
		return fmt.Errorf("constant term %s is not an integer", res.Constant())
	}
	fmt.Printf("secret(%s) = %s\n", path, secret)

	return nil
}
