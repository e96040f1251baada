package content

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"soapworks/internal/domain/catalog"
	"soapworks/internal/domain/content"
)

// HomeBlock is one renderable block with its payload fully resolved:
// defaults applied, and product-grid blocks hydrated with live products.
type HomeBlock struct {
	ID       string            `json:"id"`
	Type     content.BlockType `json:"type"`
	Content  json.RawMessage   `json:"content"`
	Products []catalog.Product `json:"products,omitempty"`
}

type HomeGroup struct {
	Kind   string      `json:"kind"`
	Blocks []HomeBlock `json:"blocks"`
}

type HomeResponse struct {
	Groups []HomeGroup `json:"groups"`
}

// GET /home — the rendering contract. A missing or unparseable layout
// degrades to zero groups; the page itself always renders.
func (h *Handler) Home(c *gin.Context) {
	var entry content.ContentEntry
	var layout []content.Block

	err := h.DB.Where("key = ?", content.LayoutKey).First(&entry).Error
	switch {
	case err == nil:
		layout = content.ParseLayout([]byte(entry.Value))
		if len(layout) == 0 && entry.Value != "" && entry.Value != "[]" {
			log.Printf("content: stored home layout is unparseable, rendering empty")
		}
	case err == gorm.ErrRecordNotFound:
		layout = []content.Block{}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load layout"})
		return
	}

	groups := content.GroupBlocks(layout)
	resp := HomeResponse{Groups: make([]HomeGroup, 0, len(groups))}

	for _, g := range groups {
		out := HomeGroup{Kind: g.Kind, Blocks: make([]HomeBlock, 0, len(g.Blocks))}
		for _, b := range g.Blocks {
			hb, ok := h.resolveBlock(b)
			if !ok {
				continue
			}
			out.Blocks = append(out.Blocks, hb)
		}
		if len(out.Blocks) > 0 {
			resp.Groups = append(resp.Groups, out)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// resolveBlock applies per-type defaults and performs the product-grid
// live query. A failed product fetch drops the block silently rather than
// failing the page.
func (h *Handler) resolveBlock(b content.Block) (HomeBlock, bool) {
	hb := HomeBlock{ID: b.ID, Type: b.Type}

	switch b.Type {
	case content.BlockHero:
		hb.Content = mustJSON(b.Hero())
	case content.BlockText:
		hb.Content = mustJSON(b.Text())
	case content.BlockImage:
		hb.Content = mustJSON(b.Image())
	case content.BlockFeaturePanel:
		hb.Content = mustJSON(b.FeaturePanel())
	case content.BlockTestimonials:
		hb.Content = mustJSON(b.Testimonials())
	case content.BlockProductGrid:
		grid := b.ProductGrid()
		hb.Content = mustJSON(grid)
		products := make([]catalog.Product, 0, grid.Limit)
		if err := h.DB.Order("featured DESC, created_at DESC").
			Limit(grid.Limit).
			Find(&products).Error; err != nil {
			log.Printf("content: product grid fetch failed: %v", err)
			return HomeBlock{}, false
		}
		hb.Products = products
	default:
		return HomeBlock{}, false
	}

	return hb, true
}

func mustJSON(v any) json.RawMessage {
	raw, _ := json.Marshal(v)
	return raw
}
