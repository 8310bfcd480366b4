package util

import (
	"os"
	"syscall"
)

// Colorizer manages colored CLI output.
type Colorizer struct {
	Enabled bool
}

// NewColorizer creates a new Colorizer, auto-detecting a TTY when not
// forced on.
func NewColorizer(forceEnabled bool) *Colorizer {
	enabled := forceEnabled
	if !enabled {
		fd := os.Stdout.Fd()
		_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(syscall.TIOCGWINSZ), 0)
		enabled = errno == 0
	}
	return &Colorizer{Enabled: enabled}
}

func (c *Colorizer) apply(code, text string) string {
	if !c.Enabled {
		return text
	}
	return code + text + "\033[0m"
}

// Cyan colors the text cyan.
func (c *Colorizer) Cyan(text string) string { return c.apply("\033[36m", text) }

// Green colors the text green.
func (c *Colorizer) Green(text string) string { return c.apply("\033[32m", text) }

// Blue colors the text blue.
func (c *Colorizer) Blue(text string) string { return c.apply("\033[34m", text) }

// Yellow colors the text yellow.
func (c *Colorizer) Yellow(text string) string { return c.apply("\033[33m", text) }

// Red colors the text red.
func (c *Colorizer) Red(text string) string { return c.apply("\033[31m", text) }

// Dim dims the text.
func (c *Colorizer) Dim(text string) string { return c.apply("\033[2m", text) }

// Risk colors a risk tier or level label by severity.
func (c *Colorizer) Risk(tier string) string {
	switch tier {
	case "Critical":
		return c.Red(tier)
	case "High":
		return c.Red(tier)
	case "Medium":
		return c.Yellow(tier)
	case "Low":
		return c.Green(tier)
	default:
		return tier
	}
}
