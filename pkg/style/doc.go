// Package style holds the terminal colours and lipgloss styles used by the
// goconemu command line. Colours adapt to light and dark backgrounds.
package style
