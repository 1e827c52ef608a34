package main

import (
	"fmt"
	"io"
	"log/slog"

	"graybook/internal/graybook"
)

// runListDepartments parses the report and prints its department listing,
// one heading per line in document order.
func runListDepartments(w io.Writer, path string, logger *slog.Logger) error {
	doc, err := graybook.NewParser(logger).ParseFile(path)
	if err != nil {
		return err
	}
	printDepartments(w, doc)
	return nil
}

func printDepartments(w io.Writer, doc *graybook.Document) {
	fmt.Fprintf(w, "%d departments:\n", len(doc.DeptIDs))
	for _, id := range doc.DeptIDs {
		fmt.Fprintf(w, "  %s\n", doc.Names[id])
	}
}
