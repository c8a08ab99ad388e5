// Package forecast reads today's daylight low tides out of a tide forecast
// page. The page is handed over already parsed (see Document); Extract finds
// the sunrise/sunset sentence and today's tide table, keeps the low tides and
// drops any that fall outside the daylight window. All times are local to the
// page and carry no date.
package forecast
