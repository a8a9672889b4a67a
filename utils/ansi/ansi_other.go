//go:build !windows

package ansi

// EnableANSI is a no-op outside Windows; ANSI escape sequences work by default.
func EnableANSI() {
}
