package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like paths
)

// Command Specific Colors
var (
	CommandNameColor = color.New(color.FgYellow).SprintFunc()
	PolicyColor      = color.New(color.FgBlue, color.Bold).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// SetColor turns colored output on or off for every color above.
// fatih/color already disables colors for NO_COLOR and non-terminal output.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}
