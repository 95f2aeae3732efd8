package ui

// Color accessors read the active theme under the theme lock so that
// callers never cache a stale escape code across a theme switch.

// ColorPrimary returns the primary accent escape code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorCyan returns the informational accent escape code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorGreen returns the success escape code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning escape code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error escape code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorMagenta returns the secondary accent escape code.
func ColorMagenta() string { return GetCurrentTheme().Primary }

// ColorGrey returns the secondary escape code.
func ColorGrey() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the formatting reset code.
func ColorReset() string { return GetCurrentTheme().Reset }
