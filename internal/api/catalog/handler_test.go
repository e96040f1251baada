package catalog_test

import (
	"net/http"
	"testing"

	catalogapi "soapworks/internal/api/catalog"
	"soapworks/internal/domain/adminlog"
	"soapworks/internal/domain/catalog"
	"soapworks/internal/domain/users"
	"soapworks/internal/testutil"
)

func TestListPriceRangeInclusiveFilter(t *testing.T) {
	r, db := testutil.Router(t)
	for _, p := range []catalog.Product{
		{Name: "Rose Petal", Price: 50},
		{Name: "Neem Bar", Price: 80},
		{Name: "Gift Hamper", Price: 280},
	} {
		if err := db.Create(&p).Error; err != nil {
			t.Fatal(err)
		}
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/products?minPrice=60&maxPrice=100", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp catalogapi.ListResponse
	testutil.Decode(t, w, &resp)
	if resp.Total != 1 || len(resp.Products) != 1 {
		t.Fatalf("want exactly 1 product, got total=%d len=%d", resp.Total, len(resp.Products))
	}
	if resp.Products[0].Price != 80 {
		t.Fatalf("price = %v, want 80", resp.Products[0].Price)
	}
}

func TestListSearchCaseInsensitive(t *testing.T) {
	r, db := testutil.Router(t)
	for _, p := range []catalog.Product{
		{Name: "Lavender Dream", Description: "calming floral bar", Price: 120},
		{Name: "Charcoal Detox", Description: "deep cleanse", Price: 140},
	} {
		if err := db.Create(&p).Error; err != nil {
			t.Fatal(err)
		}
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/products?search=LAVENDER", "", nil)
	var resp catalogapi.ListResponse
	testutil.Decode(t, w, &resp)
	if resp.Total != 1 || resp.Products[0].Name != "Lavender Dream" {
		t.Fatalf("search miss: %+v", resp)
	}

	// substring on description too
	w = testutil.DoJSON(t, r, http.MethodGet, "/products?search=cleanse", "", nil)
	testutil.Decode(t, w, &resp)
	if resp.Total != 1 || resp.Products[0].Name != "Charcoal Detox" {
		t.Fatalf("description search miss: %+v", resp)
	}
}

func TestListPagination(t *testing.T) {
	r, db := testutil.Router(t)
	for i := 0; i < 5; i++ {
		p := catalog.Product{Name: "Bar", Price: float64(10 + i)}
		if err := db.Create(&p).Error; err != nil {
			t.Fatal(err)
		}
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/products?page=2&limit=2", "", nil)
	var resp catalogapi.ListResponse
	testutil.Decode(t, w, &resp)
	if resp.Total != 5 || len(resp.Products) != 2 || resp.Page != 2 || resp.Limit != 2 {
		t.Fatalf("pagination: %+v", resp)
	}
}

func TestGetNotFound(t *testing.T) {
	r, _ := testutil.Router(t)
	w := testutil.DoJSON(t, r, http.MethodGet, "/products/999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCreateRequiresAdmin(t *testing.T) {
	r, db := testutil.Router(t)
	user := testutil.SeedUser(t, db, "shopper@example.com", "password1", users.RoleUser)

	body := map[string]any{"name": "New Bar", "price": 99.0}

	w := testutil.DoJSON(t, r, http.MethodPost, "/products", "", body)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous create: status = %d, want 401", w.Code)
	}

	w = testutil.DoJSON(t, r, http.MethodPost, "/products", testutil.Token(t, user), body)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-admin create: status = %d, want 403", w.Code)
	}
}

func TestAdminCRUDWritesAuditLog(t *testing.T) {
	r, db := testutil.Router(t)
	admin := testutil.SeedUser(t, db, "admin@example.com", "password1", users.RoleAdmin)
	token := testutil.Token(t, admin)

	w := testutil.DoJSON(t, r, http.MethodPost, "/products", token,
		map[string]any{"name": "Mint Fresh", "price": 95.0, "stock": 10})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}
	var created catalog.Product
	testutil.Decode(t, w, &created)

	w = testutil.DoJSON(t, r, http.MethodDelete, "/products/1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}

	var logs []adminlog.Entry
	if err := db.Order("id ASC").Find(&logs).Error; err != nil {
		t.Fatal(err)
	}
	if len(logs) != 2 {
		t.Fatalf("audit entries = %d, want 2", len(logs))
	}
	if logs[0].Action != "create" || logs[0].Entity != "product" || logs[0].AdminEmail != admin.Email {
		t.Fatalf("unexpected audit entry: %+v", logs[0])
	}
	if logs[1].Action != "delete" {
		t.Fatalf("unexpected audit entry: %+v", logs[1])
	}
}
