package embeddata

import "embed"

//go:embed instructions.md tips.json
var embeddedFS embed.FS

// ReadInstructionsMD returns the contents of instructions.md.
func ReadInstructionsMD() ([]byte, error) {
	return embeddedFS.ReadFile("instructions.md")
}

// ReadTips returns the contents of tips.json.
func ReadTips() ([]byte, error) {
	return embeddedFS.ReadFile("tips.json")
}
