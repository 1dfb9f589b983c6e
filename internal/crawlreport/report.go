// Package crawlreport renders the per-task stdout block all three
// coordinator variants write identically, per the §6 output contract.
package crawlreport

import (
	"fmt"
	"io"
)

// Task is the subset of a fetch task's fields needed for the stdout block.
type Task struct {
	URL         string
	Depth       uint16
	Links       int
	Status      int
	ContentType string
}

// WriteBlock writes one advisory stdout block, blank-line separated:
//
//	URL: <url>
//	Depth:<d>, Links:<n>, Status:<code>, Content type: <ct>
//
// followed by a blank line. Downstream consumers must not depend on the
// exact formatting.
func WriteBlock(w io.Writer, t Task) {
	fmt.Fprintf(w, "URL: %s\n", t.URL)
	fmt.Fprintf(w, "Depth:%d, Links:%d, Status:%d, Content type: %s\n\n",
		t.Depth, t.Links, t.Status, t.ContentType)
}
