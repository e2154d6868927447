package tui

import (
	"fmt"
	"io"

	"github.com/muurk/findar/internal/content"
)

// WritePlain prints the catalog as a numbered listing with the feature at
// active marked, for output that is not a terminal.
func WritePlain(w io.Writer, doc *content.Content, active int) error {
	if _, err := fmt.Fprintf(w, "%s - %s\n\n", doc.Brand, doc.Features.Heading); err != nil {
		return err
	}
	for i, f := range doc.Features.Items {
		marker := " "
		if i == active {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %d. %s [%s]\n     %s\n", marker, i+1, f.Title, f.Theme, f.Description); err != nil {
			return err
		}
	}
	return nil
}
