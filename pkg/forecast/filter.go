package forecast

// FilterDaylight keeps the records that fall within w, in their original
// order.
func FilterDaylight(records []TideRecord, w DaylightWindow) []TideRecord {
	result := make([]TideRecord, 0, len(records))
	for _, r := range records {
		if w.Contains(r.Clock) {
			result = append(result, r)
		}
	}
	return result
}
