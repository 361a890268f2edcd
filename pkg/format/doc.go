// Package format renders dates, names, e-mail addresses and numbers for
// display. All functions are pure and never fail: unusable input degrades to
// a fixed placeholder ("Invalid date", "Unknown User", "?").
package format
