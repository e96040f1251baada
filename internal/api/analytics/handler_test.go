package analytics_test

import (
	"net/http"
	"testing"

	"soapworks/internal/domain/analytics"
	"soapworks/internal/domain/orders"
	"soapworks/internal/domain/users"
	"soapworks/internal/testutil"
)

func TestCreateEvent(t *testing.T) {
	r, db := testutil.Router(t)

	w := testutil.DoJSON(t, r, http.MethodPost, "/events", "", map[string]any{
		"type":      "view",
		"productId": 3,
		"metadata":  map[string]any{"referrer": "instagram"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp map[string]bool
	testutil.Decode(t, w, &resp)
	if !resp["ok"] {
		t.Fatalf("response = %v, want ok:true", resp)
	}

	var stored analytics.Event
	if err := db.First(&stored).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Type != "view" || stored.ProductID == nil || *stored.ProductID != 3 {
		t.Fatalf("stored event = %+v", stored)
	}
}

func TestCreateEventMissingType(t *testing.T) {
	r, _ := testutil.Router(t)
	w := testutil.DoJSON(t, r, http.MethodPost, "/events", "", map[string]any{"productId": 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSubscribeIsIdempotent(t *testing.T) {
	r, db := testutil.Router(t)

	for i := 0; i < 2; i++ {
		w := testutil.DoJSON(t, r, http.MethodPost, "/subscribe", "", map[string]string{"email": "fan@example.com"})
		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d", i, w.Code)
		}
	}

	var count int64
	if err := db.Model(&analytics.Subscriber{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("subscribers = %d, want 1", count)
	}
}

func TestOverviewAggregates(t *testing.T) {
	r, db := testutil.Router(t)
	admin := testutil.SeedUser(t, db, "admin@example.com", "password1", users.RoleAdmin)

	seed := []orders.Order{
		{Items: []byte(`[{}]`), Total: 100, Location: "Pune"},
		{Items: []byte(`[{}]`), Total: 250, Location: "Mumbai"},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range []analytics.Event{{Type: "view"}, {Type: "view"}, {Type: "click"}} {
		ev := e
		if err := db.Create(&ev).Error; err != nil {
			t.Fatal(err)
		}
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/admin/analytics/overview", testutil.Token(t, admin), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		TotalOrders  int64   `json:"total_orders"`
		TotalRevenue float64 `json:"total_revenue"`
		EventsByType []struct {
			Type  string `json:"type"`
			Count int64  `json:"count"`
		} `json:"events_by_type"`
	}
	testutil.Decode(t, w, &resp)

	if resp.TotalOrders != 2 || resp.TotalRevenue != 350 {
		t.Fatalf("totals = %+v", resp)
	}
	counts := map[string]int64{}
	for _, row := range resp.EventsByType {
		counts[row.Type] = row.Count
	}
	if counts["view"] != 2 || counts["click"] != 1 {
		t.Fatalf("events by type = %v", counts)
	}
}

func TestRevenueByLocation(t *testing.T) {
	r, db := testutil.Router(t)
	admin := testutil.SeedUser(t, db, "admin@example.com", "password1", users.RoleAdmin)

	for _, o := range []orders.Order{
		{Items: []byte(`[{}]`), Total: 100, Location: "Pune"},
		{Items: []byte(`[{}]`), Total: 200, Location: "Pune"},
		{Items: []byte(`[{}]`), Total: 50, Location: "Delhi"},
	} {
		ord := o
		if err := db.Create(&ord).Error; err != nil {
			t.Fatal(err)
		}
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/admin/analytics/revenue-by-location", testutil.Token(t, admin), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var rows []struct {
		Location string  `json:"location"`
		Revenue  float64 `json:"revenue"`
		Orders   int64   `json:"orders"`
	}
	testutil.Decode(t, w, &rows)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Location != "Pune" || rows[0].Revenue != 300 || rows[0].Orders != 2 {
		t.Fatalf("top row = %+v", rows[0])
	}
}

func TestAnalyticsReadsRequireAdmin(t *testing.T) {
	r, _ := testutil.Router(t)
	w := testutil.DoJSON(t, r, http.MethodGet, "/admin/analytics/overview", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
