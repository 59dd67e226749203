// Package launcher defines the Launcher interface for opening a path with the
// host's default application. Shell starts the platform opener as a detached
// child process; Recorder is an in-memory double for tests.
package launcher
