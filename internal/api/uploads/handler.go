package uploads

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"soapworks/config"
	"soapworks/internal/domain/adminlog"
	"soapworks/internal/domain/media"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// POST /admin/upload (admin) — stores the file under the upload directory
// with a timestamp-prefixed name. The prefix keeps names unique enough
// that no locking is needed.
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	if err := os.MkdirAll(config.UPLOAD_DIR, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	dest := filepath.Join(config.UPLOAD_DIR, filename)

	if err := c.SaveUploadedFile(file, dest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	url := "/uploads/" + filename

	record := media.File{
		Filename: filename,
		Path:     dest,
		URL:      url,
		Size:     file.Size,
		MimeType: file.Header.Get("Content-Type"),
	}
	if err := h.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record upload"})
		return
	}

	adminlog.Record(h.DB, c.GetString("email"), "upload", "media", 0, filename)

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GET /admin/media (admin)
func (h *Handler) List(c *gin.Context) {
	files := make([]media.File, 0)
	if err := h.DB.Order("created_at DESC").Find(&files).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load media"})
		return
	}
	c.JSON(http.StatusOK, files)
}
