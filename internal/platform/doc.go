// Package platform picks the host command that opens a file or folder with
// its default application: powershell's start on Windows, open on macOS and
// xdg-open on other Unix systems. A user-configured opener replaces the
// built-in choice.
package platform
