package assets

// LevelLore holds atmospheric snippets shown on level entry. One is picked at
// random; levels past the end of the list reuse it cyclically.
var LevelLore = [][]string{
	{
		"The sirens stopped an hour ago. That was not a good sign.",
		"Somebody painted 'EXIT ->' on the wall. The arrow points at another wall.",
		"The citizens are still counting on you. Most of them.",
	},
	{
		"The parking garage smells of gasoline and regret.",
		"A pamphlet on the floor reads: 'Vaccinate early, vaccinate often.'",
		"Something shuffles behind the pillars. It is in no hurry.",
	},
	{
		"The hospital corridors are quiet. The patients are not.",
		"A cart of vaccines lies overturned. Most of the vials are empty.",
		"The landmines were a municipal decision. Nobody remembers voting for them.",
	},
	{
		"The subway tunnels loop back on themselves. So do the zombies.",
		"A flickering sign promises an evacuation point two stops away.",
		"You hear a citizen calling for help. You hear something answer first.",
	},
}

// Lore returns the lore lines for the given 1-indexed level.
func Lore(level int) []string {
	if level < 1 || len(LevelLore) == 0 {
		return nil
	}
	return LevelLore[(level-1)%len(LevelLore)]
}
