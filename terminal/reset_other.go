//go:build !linux

package terminal

// resetTerminalMode has no portable termios path off Linux; the escape
// sequences in EmergencyReset are the best available recovery
func resetTerminalMode() {}
