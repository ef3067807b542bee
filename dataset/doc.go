// Package dataset parses the whitespace-separated point-set text format
// used throughout moocore: one point per line, columns separated by runs
// of whitespace, consecutive point sets separated by one or more blank
// lines, and '#'-prefixed comment lines ignored.
//
// Files whose name ends in ".xz" are transparently LZMA/xz-decompressed
// before parsing (github.com/ulikunitz/xz).
//
// Errors: every failure is a *ParseError whose Code names the kind.
//
//	CodeFileEmpty       - the input contained no data rows (ErrFileEmpty).
//	CodeWrongInitialDim - the caller's expected column count does not match
//	                      the column count of the first data row.
//	CodeFileOpen        - the named file could not be opened.
//	CodeConversion      - a token could not be parsed as a float64.
//	CodeColumns         - a later row's column count disagrees with the first.
package dataset
