package text

// DefaultScannedThreshold is the fragment count below which a page is
// classified as image-only. A real text layer produces far more
// fragments than this even for sparse pages; scanned pages typically
// produce none.
const DefaultScannedThreshold = 5

// LikelyScanned reports whether a page yielding fragmentCount text
// fragments is probably a scanned, image-only page.
func LikelyScanned(fragmentCount int) bool {
	return LikelyScannedWithThreshold(fragmentCount, DefaultScannedThreshold)
}

// LikelyScannedWithThreshold is LikelyScanned with a caller-chosen
// cutoff. Counts below threshold classify as scanned.
func LikelyScannedWithThreshold(fragmentCount, threshold int) bool {
	return fragmentCount < threshold
}
