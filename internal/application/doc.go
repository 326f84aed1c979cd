// Package application wires the content reader and search engine together
// and runs one search, writing matching lines to an output stream. It keeps
// the main package focused on argument parsing and exit codes.
package application
