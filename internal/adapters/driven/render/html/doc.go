// Package html renders imposed booklet pages as standalone HTML documents.
//
// Each ImposedPage becomes one document. Week pages show the month label,
// the year and one row per day with the day number and both weekday names.
// Blank pages become an empty placeholder sheet side so that print order
// is preserved when the files are fed to a PDF converter.
package html
