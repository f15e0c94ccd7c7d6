package api

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestRecordLifecycle(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	created := createTestRecord(t, app, "alice", map[string]any{
		"start_date": "2024-01-01",
		"end_date":   "2024-01-05",
		"flow":       "Heavy",
		"color":      "dark_red",
		"symptoms":   []string{"fatigue", "cramps"},
		"note":       " first ",
	})
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Fatalf("expected store-assigned uuid, got %q", created.ID)
	}
	if created.StartDate != "2024-01-01" || created.EndDate != "2024-01-05" || created.Flow != "heavy" {
		t.Fatalf("unexpected created record %+v", created)
	}
	if !reflect.DeepEqual(created.Symptoms, []string{"cramps", "fatigue"}) || created.Note != "first" {
		t.Fatalf("unexpected normalized details %+v", created)
	}

	update := doJSON(t, app, http.MethodPut, "/api/owners/alice/records/"+created.ID, map[string]any{
		"start_date": "2024-01-02",
		"duration":   4,
		"flow":       "light",
	})
	assertStatus(t, update, http.StatusOK)
	updated := recordResponse{}
	decodeJSON(t, update, &updated)
	if updated.ID != created.ID || updated.EndDate != "" || updated.Duration != 4 || updated.Flow != "light" {
		t.Fatalf("unexpected updated record %+v", updated)
	}

	list := doJSON(t, app, http.MethodGet, "/api/owners/alice/records", nil)
	assertStatus(t, list, http.StatusOK)
	records := []recordResponse{}
	decodeJSON(t, list, &records)
	if len(records) != 1 || records[0].StartDate != "2024-01-02" {
		t.Fatalf("unexpected records %+v", records)
	}

	assertStatus(t, doJSON(t, app, http.MethodDelete, "/api/owners/alice/records/"+created.ID, nil), http.StatusNoContent)

	missing := doJSON(t, app, http.MethodDelete, "/api/owners/alice/records/"+created.ID, nil)
	assertStatus(t, missing, http.StatusNotFound)
	if message := readAPIError(t, missing.Body); message != "record not found" {
		t.Fatalf("expected record not found, got %q", message)
	}
}

func TestRecordsAreScopedByOwner(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	created := createTestRecord(t, app, "alice", map[string]any{"start_date": "2024-01-01"})

	list := doJSON(t, app, http.MethodGet, "/api/owners/bob/records", nil)
	assertStatus(t, list, http.StatusOK)
	records := []recordResponse{}
	decodeJSON(t, list, &records)
	if len(records) != 0 {
		t.Fatalf("expected bob to see no records, got %d", len(records))
	}

	update := doJSON(t, app, http.MethodPut, "/api/owners/bob/records/"+created.ID, map[string]any{"start_date": "2024-01-03"})
	assertStatus(t, update, http.StatusNotFound)
}

func TestCreateRecordValidation(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	cases := []struct {
		name    string
		payload map[string]any
		message string
	}{
		{name: "missing start", payload: map[string]any{"flow": "light"}, message: "start date is required"},
		{name: "malformed start", payload: map[string]any{"start_date": "2024-13-01"}, message: "invalid start date"},
		{name: "malformed end", payload: map[string]any{"start_date": "2024-01-01", "end_date": "01/05/2024"}, message: "invalid end date"},
		{name: "end before start", payload: map[string]any{"start_date": "2024-01-05", "end_date": "2024-01-01"}, message: "end date is before start date"},
		{name: "unknown flow", payload: map[string]any{"start_date": "2024-01-05", "flow": "torrential"}, message: "invalid flow value"},
		{name: "unknown color", payload: map[string]any{"start_date": "2024-01-05", "color": "teal"}, message: "invalid color value"},
		{name: "unknown symptom", payload: map[string]any{"start_date": "2024-01-05", "symptoms": []string{"hiccups"}}, message: "invalid symptom"},
		{name: "duration too long", payload: map[string]any{"start_date": "2024-01-05", "duration": 40}, message: "invalid duration"},
	}

	for _, tc := range cases {
		response := doJSON(t, app, http.MethodPost, "/api/owners/alice/records", tc.payload)
		assertStatus(t, response, http.StatusBadRequest)
		if message := readAPIError(t, response.Body); message != tc.message {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.message, message)
		}
	}
}

func TestOwnerPathIsValidated(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/owners/al%20ice/records", nil)
	assertStatus(t, response, http.StatusBadRequest)
	if message := readAPIError(t, response.Body); message != "invalid owner" {
		t.Fatalf("expected invalid owner, got %q", message)
	}
}

func TestClearRecordsRemovesOnlyOwnerRecords(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	createTestRecord(t, app, "alice", map[string]any{"start_date": "2024-01-01"})
	createTestRecord(t, app, "alice", map[string]any{"start_date": "2024-01-29"})
	createTestRecord(t, app, "bob", map[string]any{"start_date": "2024-01-10"})

	response := doJSON(t, app, http.MethodDelete, "/api/owners/alice/records", nil)
	assertStatus(t, response, http.StatusOK)
	payload := map[string]int64{}
	decodeJSON(t, response, &payload)
	if payload["removed"] != 2 {
		t.Fatalf("expected 2 removed records, got %+v", payload)
	}

	list := doJSON(t, app, http.MethodGet, "/api/owners/bob/records", nil)
	records := []recordResponse{}
	decodeJSON(t, list, &records)
	if len(records) != 1 {
		t.Fatalf("expected bob's record to survive, got %d", len(records))
	}
}
