// Package output renders scenario listings and results for the terminal.
//
// Two formats exist. "table" draws one pterm table per scenario under a
// lipgloss-styled heading; "plain" prints one line per step and is meant for
// pipes and logs. Color is decided once per Renderer: "always" and "never"
// force it, "auto" enables it only when the writer is a terminal and NO_COLOR
// is unset.
package output
