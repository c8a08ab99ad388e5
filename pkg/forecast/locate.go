package forecast

import (
	"fmt"
)

// FindSummary finds the paragraph holding the sunrise and sunset sentence.
func FindSummary(doc Document) (Node, error) {
	return findOne(doc, SummaryMarker)
}

// FindToday finds the card holding today's heading and tide table.
func FindToday(doc Document) (Node, error) {
	return findOne(doc, TodayMarker)
}

// findOne insists on exactly one match; it does not guess between several.
func findOne(doc Document, marker string) (Node, error) {
	nodes := doc.FindAll(marker)
	if len(nodes) != 1 {
		return nil, &StructureError{
			What: fmt.Sprintf("want one %q region, found %d", marker, len(nodes)),
		}
	}
	return nodes[0], nil
}
