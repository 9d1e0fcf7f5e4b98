package bookings

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func TestForceInitialStatusOverridesClientValue(t *testing.T) {
	booking := bson.M{
		"userEmail": "a@x.com",
		"status":    "Done",
		"serviceId": "abc123",
	}

	got := forceInitialStatus(booking)

	if got["status"] != "Assigned" {
		t.Fatalf("status = %v, want Assigned", got["status"])
	}
	if got["userEmail"] != "a@x.com" || got["serviceId"] != "abc123" {
		t.Fatal("other fields must pass through untouched")
	}
}

func TestForceInitialStatusStripsID(t *testing.T) {
	booking := bson.M{"_id": "client-chosen", "userEmail": "a@x.com"}

	got := forceInitialStatus(booking)

	if _, ok := got["_id"]; ok {
		t.Fatal("client-supplied _id must not survive")
	}
	if got["status"] != "Assigned" {
		t.Fatalf("status = %v, want Assigned", got["status"])
	}
}

func TestCreateBookingRejectsBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	CreateBooking(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateStatusRejectsMalformedID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/decorator/status/nothex", strings.NewReader(`{"status":"Done"}`))
	rec := httptest.NewRecorder()
	ps := httprouter.Params{{Key: "id", Value: "nothex"}}

	UpdateStatus(rec, req, ps)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
