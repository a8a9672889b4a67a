//go:build !linux

package reporter

const platformLinux = false
