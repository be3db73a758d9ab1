package play

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/sneeze/internal/config"
	"github.com/vinser/sneeze/internal/style"
)

type tile int

const (
	tileEmpty tile = iota
	tileWall
	tileDot
	tileTissue
	tileAllergen
	tilePlayer
	tileSneeze
	numTiles
)

// sprites holds the rendered rows of every tile for one sprite size.
type sprites struct {
	width, rows int
	tiles       [numTiles][]string
}

var spriteArt = map[string][numTiles][]string{
	config.SpriteSmall: {
		tileEmpty:    {" "},
		tileWall:     {"█"},
		tileDot:      {"·"},
		tileTissue:   {"+"},
		tileAllergen: {"*"},
		tilePlayer:   {"@"},
		tileSneeze:   {"!"},
	},
	config.SpriteMedium: {
		tileEmpty:    {"  "},
		tileWall:     {"██"},
		tileDot:      {" ·"},
		tileTissue:   {"[]"},
		tileAllergen: {"**"},
		tilePlayer:   {"()"},
		tileSneeze:   {"><"},
	},
	config.SpriteLarge: {
		tileEmpty:    {"    ", "    "},
		tileWall:     {"████", "████"},
		tileDot:      {"    ", " ·  "},
		tileTissue:   {"┌──┐", "└──┘"},
		tileAllergen: {"*.*.", ".*.*"},
		tilePlayer:   {"(oo)", " \\/ "},
		tileSneeze:   {"(><)", "ACHO"},
	},
}

var tileStyle = [numTiles]lipgloss.Style{
	tileEmpty:    lipgloss.NewStyle(),
	tileWall:     style.Wall,
	tileDot:      style.Dot,
	tileTissue:   style.Tissue,
	tileAllergen: style.Allergen,
	tilePlayer:   style.Player,
	tileSneeze:   style.Sneezing,
}

// newSprites styles the art of the given size, medium if the size is unknown.
func newSprites(size string) sprites {
	art, ok := spriteArt[size]
	if !ok {
		art = spriteArt[config.SpriteDefault]
	}
	s := sprites{
		width: lipgloss.Width(art[tileWall][0]),
		rows:  len(art[tileWall]),
	}
	for t, rows := range art {
		s.tiles[t] = make([]string, len(rows))
		for i, row := range rows {
			s.tiles[t][i] = tileStyle[t].Render(row)
		}
	}
	return s
}
