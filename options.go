package tagex

import "github.com/tsawler/tagex/text"

// engineOptions holds configuration for an Engine.
type engineOptions struct {
	scannedThreshold int
	keepElements     bool
	reconstruct      text.ReconstructConfig
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		scannedThreshold: text.DefaultScannedThreshold,
		keepElements:     true,
		reconstruct:      text.DefaultReconstructConfig(),
	}
}
