package forecast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const heightUnit = "ft"

// Row is the raw text of one tide table row.
type Row struct {
	// Kind is e.g. "Low Tide" or "High Tide".
	Kind string
	// Time may carry a parenthetical note, e.g. "3:48 AM (-0.2ft)".
	Time string
	// Height carries its unit, e.g. "1.3 ft".
	Height string
}

// ParseRows reads the rows of the table in node, skipping the header row.
func ParseRows(node Node) ([]Row, error) {
	cells, ok := node.Rows()
	if !ok {
		return nil, &StructureError{What: "no tide table"}
	}
	if len(cells) == 0 {
		return nil, nil
	}

	rows := make([]Row, 0, len(cells)-1)
	for i, c := range cells[1:] {
		if len(c) < 3 {
			return nil, &StructureError{
				What: fmt.Sprintf("tide row %d has %d cells, want 3", i+1, len(c)),
			}
		}
		rows = append(rows, Row{Kind: c[0], Time: c[1], Height: c[2]})
	}
	return rows, nil
}

// Low reports whether the row is a low tide. Anything else, including rows
// with an unrecognized kind, is not.
func (r Row) Low() bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(r.Kind)), "low")
}

// Record converts the row into a TideRecord. Parenthetical notes after the
// time and the unit after the height are dropped.
func (r Row) Record() (TideRecord, error) {
	timeText, _, _ := strings.Cut(r.Time, "(")
	timeText = strings.TrimSpace(timeText)

	heightText, _, _ := strings.Cut(r.Height, heightUnit)
	heightText = strings.TrimSpace(heightText)
	height, err := strconv.ParseFloat(heightText, 64)
	if err != nil {
		// FormatError already names the text; keep only the cause.
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return TideRecord{}, &FormatError{Text: r.Height, Err: err}
	}

	c, err := clockOf(timeText)
	if err != nil {
		return TideRecord{}, err
	}

	return TideRecord{
		HeightFeet: height,
		Time:       timeText,
		Clock:      c,
	}, nil
}
