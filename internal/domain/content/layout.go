package content

import (
	"encoding/json"

	"github.com/google/uuid"
)

type BlockType string

const (
	BlockHero         BlockType = "hero"
	BlockText         BlockType = "text"
	BlockImage        BlockType = "image"
	BlockProductGrid  BlockType = "product-grid"
	BlockFeaturePanel BlockType = "feature-panel"
	BlockTestimonials BlockType = "testimonials"
)

// KnownBlockTypes lists every type the renderer understands. Blocks of any
// other type are carried through storage untouched and skipped at render
// time.
var KnownBlockTypes = []BlockType{
	BlockHero,
	BlockText,
	BlockImage,
	BlockProductGrid,
	BlockFeaturePanel,
	BlockTestimonials,
}

func IsKnownBlockType(t BlockType) bool {
	for _, k := range KnownBlockTypes {
		if k == t {
			return true
		}
	}
	return false
}

// Block is one typed unit of a layout. Content is decoded per Type; the
// field names (id, type, content) are the persisted wire format and must
// stay stable.
type Block struct {
	ID      string          `json:"id"`
	Type    BlockType       `json:"type"`
	Content json.RawMessage `json:"content"`
}

// ParseLayout decodes a stored layout value. Anything that does not parse
// as a JSON array of blocks degrades to an empty layout; a broken value
// must never take the page down.
func ParseLayout(raw []byte) []Block {
	if len(raw) == 0 {
		return []Block{}
	}
	var blocks []Block
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return []Block{}
	}
	if blocks == nil {
		return []Block{}
	}
	return blocks
}

func MarshalLayout(blocks []Block) ([]byte, error) {
	if blocks == nil {
		blocks = []Block{}
	}
	return json.Marshal(blocks)
}

type HeroContent struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText"`
	Link       string `json:"link,omitempty"`
	VideoURL   string `json:"videoUrl,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

type TextContent struct {
	Text    string `json:"text"`
	Align   string `json:"align,omitempty"`
	Variant string `json:"variant,omitempty"`
}

type ImageContent struct {
	ImageURL string `json:"imageUrl"`
}

type ProductGridContent struct {
	Title string `json:"title,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

type FeaturePanelContent struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"imageUrl"`
	Link       string `json:"link,omitempty"`
	ButtonText string `json:"buttonText,omitempty"`
}

type Review struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Image  string `json:"image,omitempty"`
}

type TestimonialsContent struct {
	Title   string   `json:"title,omitempty"`
	Reviews []Review `json:"reviews,omitempty"`
}

// DefaultReviews backs a testimonials block that carries no reviews of its
// own.
var DefaultReviews = []Review{
	{Text: "The lavender bar turned my evening shower into a ritual. Nothing else comes close.", Author: "Priya S."},
	{Text: "Finally a soap that doesn't dry out my hands. I've reordered three times.", Author: "Daniel K."},
	{Text: "Bought a custom batch for wedding favors and the guests still talk about them.", Author: "Meera R."},
}

const DefaultGridLimit = 4

// Hero decodes a hero payload, filling the default button link.
func (b Block) Hero() HeroContent {
	var c HeroContent
	_ = json.Unmarshal(b.Content, &c)
	if c.Link == "" {
		c.Link = "/products"
	}
	return c
}

// Text decodes a text payload with its typographic defaults.
func (b Block) Text() TextContent {
	var c TextContent
	_ = json.Unmarshal(b.Content, &c)
	if c.Align == "" {
		c.Align = "left"
	}
	if c.Variant == "" {
		c.Variant = "body1"
	}
	return c
}

func (b Block) Image() ImageContent {
	var c ImageContent
	_ = json.Unmarshal(b.Content, &c)
	return c
}

// ProductGrid decodes a product-grid payload; a missing or non-positive
// limit falls back to DefaultGridLimit.
func (b Block) ProductGrid() ProductGridContent {
	var c ProductGridContent
	_ = json.Unmarshal(b.Content, &c)
	if c.Limit <= 0 {
		c.Limit = DefaultGridLimit
	}
	return c
}

func (b Block) FeaturePanel() FeaturePanelContent {
	var c FeaturePanelContent
	_ = json.Unmarshal(b.Content, &c)
	return c
}

// Testimonials decodes a testimonials payload, substituting the built-in
// review set when none are stored.
func (b Block) Testimonials() TestimonialsContent {
	var c TestimonialsContent
	_ = json.Unmarshal(b.Content, &c)
	if len(c.Reviews) == 0 {
		c.Reviews = DefaultReviews
	}
	return c
}

// DefaultContent returns the starting payload the editor gives a freshly
// added block of the given type.
func DefaultContent(t BlockType) json.RawMessage {
	var v any
	switch t {
	case BlockHero:
		v = HeroContent{Title: "Handmade Herbal Soap", Subtitle: "Small batches, honest ingredients", ButtonText: "Shop Now", Link: "/products"}
	case BlockText:
		v = TextContent{Text: "Your text here", Align: "left", Variant: "body1"}
	case BlockImage:
		v = ImageContent{}
	case BlockProductGrid:
		v = ProductGridContent{Title: "Our Soaps", Limit: DefaultGridLimit}
	case BlockFeaturePanel:
		v = FeaturePanelContent{Title: "Why Herbal?", Subtitle: "Cold-pressed oils and garden botanicals"}
	case BlockTestimonials:
		v = TestimonialsContent{Title: "What customers say"}
	default:
		v = map[string]any{}
	}
	raw, _ := json.Marshal(v)
	return raw
}

// NewBlock builds a block of the given type with a fresh id and the type's
// default content.
func NewBlock(t BlockType) Block {
	return Block{
		ID:      uuid.NewString(),
		Type:    t,
		Content: DefaultContent(t),
	}
}
