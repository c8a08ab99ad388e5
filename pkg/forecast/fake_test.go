package forecast

// fakeNode and fakeDoc stand in for a parsed page.
type fakeNode struct {
	text    string
	heading *string
	rows    [][]string
	noTable bool
}

func (n *fakeNode) Text() string {
	return n.text
}

func (n *fakeNode) Heading() (string, bool) {
	if n.heading == nil {
		return "", false
	}
	return *n.heading, true
}

func (n *fakeNode) Rows() ([][]string, bool) {
	return n.rows, !n.noTable
}

type fakeDoc map[string][]Node

func (d fakeDoc) FindAll(marker string) []Node {
	return d[marker]
}

func page(summary, heading string, rows ...[]string) fakeDoc {
	return fakeDoc{
		SummaryMarker: {&fakeNode{text: summary}},
		TodayMarker: {&fakeNode{
			heading: &heading,
			rows:    append([][]string{{}}, rows...),
		}},
	}
}
