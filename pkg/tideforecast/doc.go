// Package tideforecast retrieves tide pages from tide-forecast.com and reads
// today's daylight low tides out of them. Pages are requested per location
// (see Location); parsing is left to the forecast package. All times are
// local to the location.
package tideforecast
