package payments_test

import (
	"fmt"
	"net/http"
	"testing"

	"soapworks/internal/domain/orders"
	"soapworks/internal/domain/users"
	"soapworks/internal/testutil"
)

func TestPaymentDefaultsToPending(t *testing.T) {
	r, db := testutil.Router(t)

	order := orders.Order{Items: []byte(`[{"productId":1,"quantity":1}]`), Total: 120, CustomerEmail: "b@example.com"}
	if err := db.Create(&order).Error; err != nil {
		t.Fatal(err)
	}

	w := testutil.DoJSON(t, r, http.MethodPost, "/payments", "", map[string]any{
		"orderId":   order.ID,
		"method":    orders.MethodUPI,
		"reference": "UPI-12345",
		"amount":    120.0,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var payment orders.Payment
	testutil.Decode(t, w, &payment)
	if payment.Status != orders.PaymentPending {
		t.Fatalf("status = %q, want Pending", payment.Status)
	}
}

func TestPaymentForMissingOrder(t *testing.T) {
	r, _ := testutil.Router(t)

	w := testutil.DoJSON(t, r, http.MethodPost, "/payments", "", map[string]any{
		"orderId": 42, "method": orders.MethodBank, "amount": 50.0,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestPaymentUnknownMethod(t *testing.T) {
	r, db := testutil.Router(t)
	order := orders.Order{Items: []byte(`[{}]`), Total: 10}
	if err := db.Create(&order).Error; err != nil {
		t.Fatal(err)
	}

	w := testutil.DoJSON(t, r, http.MethodPost, "/payments", "", map[string]any{
		"orderId": order.ID, "method": "card", "amount": 10.0,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestStatusUpdateIsIdempotent(t *testing.T) {
	r, db := testutil.Router(t)
	admin := testutil.SeedUser(t, db, "admin@example.com", "password1", users.RoleAdmin)
	token := testutil.Token(t, admin)

	order := orders.Order{Items: []byte(`[{}]`), Total: 90}
	if err := db.Create(&order).Error; err != nil {
		t.Fatal(err)
	}
	payment := orders.Payment{OrderID: order.ID, Method: orders.MethodBank, Amount: 90, Status: orders.PaymentPending}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatal(err)
	}

	path := fmt.Sprintf("/payments/%d/status", payment.ID)
	for i := 0; i < 2; i++ {
		w := testutil.DoJSON(t, r, http.MethodPut, path, token, map[string]any{"status": orders.PaymentCompleted})
		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d, body %s", i, w.Code, w.Body.String())
		}
		var updated orders.Payment
		testutil.Decode(t, w, &updated)
		if updated.Status != orders.PaymentCompleted {
			t.Fatalf("attempt %d: status = %q, want Completed", i, updated.Status)
		}
	}

	var stored orders.Payment
	if err := db.First(&stored, payment.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Status != orders.PaymentCompleted {
		t.Fatalf("stored status = %q, want Completed", stored.Status)
	}
}

func TestStatusUpdateRequiresAdmin(t *testing.T) {
	r, db := testutil.Router(t)
	user := testutil.SeedUser(t, db, "shopper@example.com", "password1", users.RoleUser)

	w := testutil.DoJSON(t, r, http.MethodPut, "/payments/1/status", testutil.Token(t, user),
		map[string]any{"status": orders.PaymentCompleted})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}
