package cluster

// Palette is the fixed pastel color sequence assigned to clusters by id,
// `Palette[id % len(Palette)]`. This is the only palette the original
// engine ever reads at render time; a second, unused 8-color variant in
// the original state module is dead code and has no equivalent here.
var Palette = []string{
	"#FFB3BA", "#FFDFBA", "#FFFFBA", "#BAFFC9", "#BAE1FF",
	"#D4BAFF", "#FFBAF3", "#FFCCCB", "#B5EAD7", "#C7CEEA",
	"#FFDAC1", "#E2F0CB", "#F4ACB7", "#9DD9D2", "#FFF8DC",
}

// ColorForID returns the palette entry for a dense cluster id.
func ColorForID(id int) string {
	return Palette[id%len(Palette)]
}
