package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "" // check
	IconX        = "" // x
	IconWarning  = "" // warning
	IconInfo     = "" // info
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconCursor   = "" // chevron-right
	IconPalette  = "" // paint brush
	IconSun      = "" // sun
	IconMoon     = "" // moon
	IconDesktop  = "" // desktop
)

// ModeIcon returns the icon for a light/dark mode.
func ModeIcon(dark bool) string {
	if dark {
		return IconMoon
	}
	return IconSun
}
