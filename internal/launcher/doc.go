// Package launcher opens entries and terminals in external applications.
//
// Command construction is selected at build time:
//   - darwin: open / open -a iTerm|Terminal
//   - windows: cmd /C start
//   - linux and BSDs: xdg-open, then the configured terminal candidates in order
//   - anything else: UnsupportedPlatform
//
// Launching only waits for the process to spawn. Children are reaped in the
// background and their exit status is ignored.
package launcher
