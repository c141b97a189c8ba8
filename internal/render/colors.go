package render

import "github.com/gdamore/tcell/v2"

// FloorTiles is the ground drawn under one level's entities. Emoji keep
// their own colors, so each theme picks a different glyph rather than
// tinting one.
type FloorTiles struct {
	Floor string
	Color tcell.Color
}

// TileThemes cycles with the level number: streets, garage, hospital, subway.
var TileThemes = []FloorTiles{
	{Floor: "⬛", Color: tcell.ColorDarkGray},
	{Floor: "🟫", Color: tcell.ColorSaddleBrown},
	{Floor: "⬜", Color: tcell.ColorSilver},
	{Floor: "🟦", Color: tcell.ColorNavy},
}

// ThemeFor returns the floor theme for the 1-indexed level.
func ThemeFor(level int) FloorTiles {
	if level < 1 {
		level = 1
	}
	return TileThemes[(level-1)%len(TileThemes)]
}
