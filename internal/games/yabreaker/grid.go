package yabreaker

import "github.com/vovakirdan/ya-breaker/internal/config"

// NewBlockGrid lays out a fresh rows×cols grid with every block visible.
// Each call returns a new slice; callers replace the old grid wholesale.
func NewBlockGrid(cfg config.BlocksConfig) []Block {
	blocks := make([]Block, 0, cfg.Rows*cfg.Cols)
	for r := range cfg.Rows {
		for c := range cfg.Cols {
			blocks = append(blocks, Block{
				X:       cfg.OriginX + float64(c)*(cfg.Width+cfg.Gap),
				Y:       cfg.OriginY + float64(r)*(cfg.Height+cfg.Gap),
				W:       cfg.Width,
				H:       cfg.Height,
				Visible: true,
			})
		}
	}
	return blocks
}

// CountVisible returns the number of unbroken blocks.
func CountVisible(blocks []Block) int {
	count := 0
	for i := range blocks {
		if blocks[i].Visible {
			count++
		}
	}
	return count
}
