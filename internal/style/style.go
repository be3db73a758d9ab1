package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// General UI
	LevelTitle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	LevelItem         = lipgloss.NewStyle()
	LevelItemSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true) // Pinkish-reddish purple
	PlayHeader        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))  // Green

	HighScore = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // Bright red
	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Maze
	Wall     = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))  // Slate blue
	Dot      = lipgloss.NewStyle().Foreground(lipgloss.Color("255")) // Bright white
	Tissue   = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))  // Aqua
	Allergen = lipgloss.NewStyle().Foreground(lipgloss.Color("178")) // Pollen yellow
	Player   = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	Sneezing = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Blink(true)

	// Time warning flash
	HurryOn  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color(Hex("red")))
	HurryOff = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color(Hex("navy")))
)

type RGB struct {
	R int
	G int
	B int
}

var RGBColor = map[string]RGB{
	"black":   {0, 0, 0},
	"red":     {255, 0, 0},
	"green":   {0, 255, 0},
	"blue":    {0, 0, 255},
	"navy":    {0, 0, 128},
	"yellow":  {255, 255, 0},
	"magenta": {255, 0, 255},
	"cyan":    {0, 255, 255},
	"white":   {255, 255, 255},
	"grey":    {128, 128, 128},
	"pink":    {255, 105, 180},
}

// GenerateHexColor generates hexadcimal string for a given RGB values. r, g, b sould be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// Hex returns the #RRGGBB form of a named color, black if the name is unknown.
func Hex(name string) string {
	c := RGBColor[name]
	return GenerateHexColor(c.R, c.G, c.B)
}
