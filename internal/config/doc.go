// Package config defines the process-wide mode flags shared by the
// evaluation engine and the command-line front ends. Packages read them
// through an explicit *Flags value rather than a global so that
// concurrent build drivers can run with different modes.
package config
