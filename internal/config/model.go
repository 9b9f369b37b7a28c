package config

// Flags holds the global modes that alter command evaluation.
type Flags struct {
	// IsSilentMode suppresses command echoing by default, as if every
	// recipe line carried a leading '@'.
	IsSilentMode bool

	// GenerateNinja marks the restricted generation mode: commands are
	// being translated ahead of time, so `$?` cannot consult file
	// timestamps and degrades to the unimplemented placeholder.
	GenerateNinja bool
}
