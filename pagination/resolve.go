package pagination

// NeedsRTLAdaptation reports whether a horizontal row must be flipped by hand
// Vertical flows and self-mirroring platforms never flip
func NeedsRTLAdaptation(vertical, rtl, mirrorsByPlatform bool) bool {
	return rtl && !mirrorsByPlatform && !vertical
}

// Resolve maps a raw active index to the slot that is drawn active
func Resolve(activeIndex, count int, vertical, rtl, mirrorsByPlatform bool) int {
	if NeedsRTLAdaptation(vertical, rtl, mirrorsByPlatform) {
		return count - activeIndex - 1
	}
	return activeIndex
}
