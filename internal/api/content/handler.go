package content

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"soapworks/internal/domain/adminlog"
	"soapworks/internal/domain/content"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// GET /admin/content — every entry flattened into one object. Callers that
// want the layout parse result["home_layout"] themselves.
func (h *Handler) GetContent(c *gin.Context) {
	var entries []content.ContentEntry
	if err := h.DB.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	c.JSON(http.StatusOK, out)
}

// upsertEntry creates or overwrites a single key.
func (h *Handler) upsertEntry(key, value, entryType string) error {
	var e content.ContentEntry
	err := h.DB.Where("key = ?", key).First(&e).Error
	if err == gorm.ErrRecordNotFound {
		return h.DB.Create(&content.ContentEntry{Key: key, Value: value, Type: entryType}).Error
	}
	if err != nil {
		return err
	}
	e.Value = value
	if entryType != "" {
		e.Type = entryType
	}
	return h.DB.Save(&e).Error
}

// POST /admin/content (admin) — per-key upsert loop. Deliberately not
// atomic across keys: a failure mid-loop leaves the keys already written
// in place, matching last-write-wins-per-key semantics.
func (h *Handler) SetContent(c *gin.Context) {
	var updates map[string]string
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No content keys provided"})
		return
	}

	for key, value := range updates {
		if err := h.upsertEntry(key, value, ""); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save content"})
			return
		}
	}

	adminlog.Record(h.DB, c.GetString("email"), "update", "content", 0, "content keys updated")

	c.JSON(http.StatusOK, gin.H{"message": "Content saved"})
}

// PUT /admin/content/layout (admin) — saveLayout convenience: accepts the
// full block array, fills any missing ids, and stores it wholesale under
// the home_layout key.
func (h *Handler) SaveLayout(c *gin.Context) {
	var blocks []content.Block
	if err := c.ShouldBindJSON(&blocks); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Layout must be a JSON array of blocks"})
		return
	}

	blocks = content.EnsureIDs(blocks)

	raw, err := content.MarshalLayout(blocks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode layout"})
		return
	}

	if err := h.upsertEntry(content.LayoutKey, string(raw), content.TypeJSON); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save layout"})
		return
	}

	adminlog.Record(h.DB, c.GetString("email"), "update", "layout", 0, "home layout saved")

	c.JSON(http.StatusOK, gin.H{"message": "Layout saved", "blocks": blocks})
}
