//go:build !fmidebug

package reporter

// debugEnabled reports whether the binary was built with debug features.
const debugEnabled = false
