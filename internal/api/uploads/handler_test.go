package uploads_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"soapworks/config"
	"soapworks/internal/domain/media"
	"soapworks/internal/domain/users"
	"soapworks/internal/testutil"
)

func TestUploadStoresFileAndRecord(t *testing.T) {
	r, db := testutil.Router(t)
	admin := testutil.SeedUser(t, db, "admin@example.com", "password1", users.RoleAdmin)
	config.UPLOAD_DIR = t.TempDir()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "soap.jpg")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("fake image bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+testutil.Token(t, admin))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	testutil.Decode(t, w, &resp)
	if !strings.HasPrefix(resp["url"], "/uploads/") || !strings.HasSuffix(resp["url"], "_soap.jpg") {
		t.Fatalf("url = %q", resp["url"])
	}

	// the file landed on disk under its timestamped name
	name := strings.TrimPrefix(resp["url"], "/uploads/")
	if _, err := os.Stat(filepath.Join(config.UPLOAD_DIR, name)); err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}

	var record media.File
	if err := db.First(&record).Error; err != nil {
		t.Fatal(err)
	}
	if record.ID == "" || record.Filename != name {
		t.Fatalf("media record = %+v", record)
	}
}

func TestUploadRequiresAdmin(t *testing.T) {
	r, _ := testutil.Router(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
