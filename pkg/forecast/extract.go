package forecast

import (
	"strings"
)

const dateSeparator = ": "

// Extract reads today's date and daylight low tides from doc. Any stage
// failing fails the whole extraction; there is no partial Result.
func Extract(doc Document) (*Result, error) {
	summary, err := FindSummary(doc)
	if err != nil {
		return nil, err
	}
	today, err := FindToday(doc)
	if err != nil {
		return nil, err
	}

	window, err := ExtractWindow(summary.Text())
	if err != nil {
		return nil, err
	}

	date, err := dateOf(today)
	if err != nil {
		return nil, err
	}

	rows, err := ParseRows(today)
	if err != nil {
		return nil, err
	}

	var lows []TideRecord
	for _, row := range rows {
		// High tide is not interesting
		if !row.Low() {
			continue
		}
		rec, err := row.Record()
		if err != nil {
			return nil, err
		}
		lows = append(lows, rec)
	}

	return &Result{
		Date:     date,
		LowTides: FilterDaylight(lows, window),
		Window:   window,
	}, nil
}

// dateOf takes the date from a heading like "Tide Times for: Thursday 28 April
// 2022". Without the separator the whole heading is the date.
func dateOf(today Node) (string, error) {
	heading, ok := today.Heading()
	if !ok {
		return "", &StructureError{What: "no heading in today's card"}
	}
	if i := strings.LastIndex(heading, dateSeparator); i >= 0 {
		heading = heading[i+len(dateSeparator):]
	}
	return strings.TrimSpace(heading), nil
}
