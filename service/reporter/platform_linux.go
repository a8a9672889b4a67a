//go:build linux

package reporter

const platformLinux = true
