package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a minimal server speaking the envelope contract.
func fakeAPI(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func TestList_UnwrapsEnvelope(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/farmers", r.URL.Path)

		data, _ := json.Marshal([]Record{
			{"id": "FARM0001", "name": "Ramesh Patel"},
			{"id": "FARM0002", "name": "Suresh Kumar"},
		})
		writeEnvelope(w, http.StatusOK, Envelope{Success: true, Data: data})
	})

	records, err := api.List(context.Background(), "farmers")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "FARM0001", records[0]["id"])
}

func TestCreate_SendsBodyAndReturnsEcho(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/farmers", r.URL.Path)

		var body Record
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "FARM0001", body["id"])

		data, _ := json.Marshal(body)
		writeEnvelope(w, http.StatusCreated, Envelope{Success: true, Data: data, Message: "farmer created"})
	})

	record, err := api.Create(context.Background(), "farmers", Record{"id": "FARM0001", "name": "Ramesh Patel"})

	require.NoError(t, err)
	assert.Equal(t, "Ramesh Patel", record["name"])
}

func TestGet_NotFound(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, Envelope{Success: false, Message: "farmer FARM9999: record not found"})
	})

	record, err := api.Get(context.Background(), "farmers", "FARM9999")

	assert.Nil(t, record)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))

	apiErr := err.(*APIError)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "FARM9999")
}

func TestCreate_ValidationErrors(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, Envelope{
			Success: false,
			Message: "validation failed",
			Errors: []FieldError{
				{Field: "id", Message: "id must match FARM followed by 4 digits"},
			},
		})
	})

	_, err := api.Create(context.Background(), "farmers", Record{"id": "nope"})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))

	apiErr := err.(*APIError)
	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "id", apiErr.Errors[0].Field)
}

func TestDelete_Success(t *testing.T) {
	var gotPath string
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		writeEnvelope(w, http.StatusOK, Envelope{Success: true, Message: "farmer deleted"})
	})

	require.NoError(t, api.Delete(context.Background(), "farmers", "FARM0001"))
	assert.Equal(t, "DELETE /api/farmers/FARM0001", gotPath)
}

func TestPaymentStats(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/stats", r.URL.Path)

		data, _ := json.Marshal(PaymentStats{Total: 12, Pending: 3, Paid: 8, Failed: 1, TotalAmount: 54000, PaidAmount: 40000})
		writeEnvelope(w, http.StatusOK, Envelope{Success: true, Data: data})
	})

	stats, err := api.PaymentStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, stats.Total)
	assert.Equal(t, 40000.0, stats.PaidAmount)
}

func TestExpiringCertifications_PathEncodesDays(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/certifications/expiring/30", r.URL.Path)

		data, _ := json.Marshal([]Record{{"id": "CERT0001"}})
		writeEnvelope(w, http.StatusOK, Envelope{Success: true, Data: data})
	})

	certs, err := api.ExpiringCertifications(context.Background(), 30)

	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, "CERT0001", certs[0]["id"])
}

func TestUpdateMessageStatus_Patch(t *testing.T) {
	api := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PATCH", r.Method)
		assert.Equal(t, "/api/messages/MSG001/status", r.URL.Path)

		var body Record
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Read", body["status"])

		writeEnvelope(w, http.StatusOK, Envelope{Success: true, Message: "status updated"})
	})

	require.NoError(t, api.UpdateMessageStatus(context.Background(), "MSG001", "Read"))
}
