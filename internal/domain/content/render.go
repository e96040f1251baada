package content

// GroupCarousel is the kind assigned to every run of consecutive hero
// blocks. Non-adjacent heroes become separate single-item carousels. For
// any other known type the group kind is the block type itself.
const GroupCarousel = "carousel"

type RenderGroup struct {
	Kind   string  `json:"kind"`
	Blocks []Block `json:"blocks"`
}

// GroupBlocks derives the render-time grouping from a layout: consecutive
// hero blocks collapse into one carousel group, every other known block
// renders alone, and unknown types are skipped so future block kinds
// degrade gracefully.
func GroupBlocks(layout []Block) []RenderGroup {
	groups := make([]RenderGroup, 0, len(layout))
	for i := 0; i < len(layout); {
		b := layout[i]
		if b.Type == BlockHero {
			run := []Block{b}
			for i++; i < len(layout) && layout[i].Type == BlockHero; i++ {
				run = append(run, layout[i])
			}
			groups = append(groups, RenderGroup{Kind: GroupCarousel, Blocks: run})
			continue
		}
		if IsKnownBlockType(b.Type) {
			groups = append(groups, RenderGroup{Kind: string(b.Type), Blocks: []Block{b}})
		}
		i++
	}
	return groups
}
