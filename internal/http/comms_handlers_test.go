package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dairycoop-data/internal/domain"
	"dairycoop-data/internal/repository"
)

// fakeMessagesRepo keeps messages in memory and enforces the farmer FK
// against a fixed id set, the way the database would.
type fakeMessagesRepo struct {
	knownFarmers map[string]bool
	messages     map[string]*domain.Message
}

func newFakeMessagesRepo(farmerIDs ...string) *fakeMessagesRepo {
	known := make(map[string]bool, len(farmerIDs))
	for _, id := range farmerIDs {
		known[id] = true
	}
	return &fakeMessagesRepo{knownFarmers: known, messages: map[string]*domain.Message{}}
}

func (r *fakeMessagesRepo) ListMessages(ctx context.Context) ([]*domain.Message, error) {
	out := []*domain.Message{}
	for _, m := range r.messages {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMessagesRepo) GetMessage(ctx context.Context, id string) (*domain.Message, error) {
	m, ok := r.messages[id]
	if !ok {
		return nil, notFoundErr("message", id)
	}
	return m, nil
}

func (r *fakeMessagesRepo) CreateMessage(ctx context.Context, m *domain.Message) error {
	if !r.knownFarmers[m.FarmerID] {
		return &repository.ConstraintError{Message: "message references a missing record (foreign key messages_farmer_id_fkey)"}
	}
	r.messages[m.ID] = m
	return nil
}

func (r *fakeMessagesRepo) UpdateMessage(ctx context.Context, m *domain.Message) error {
	if _, ok := r.messages[m.ID]; !ok {
		return notFoundErr("message", m.ID)
	}
	r.messages[m.ID] = m
	return nil
}

func (r *fakeMessagesRepo) UpdateMessageStatus(ctx context.Context, id, status string) error {
	m, ok := r.messages[id]
	if !ok {
		return notFoundErr("message", id)
	}
	m.Status = status
	return nil
}

func (r *fakeMessagesRepo) DeleteMessage(ctx context.Context, id string) error {
	if _, ok := r.messages[id]; !ok {
		return notFoundErr("message", id)
	}
	delete(r.messages, id)
	return nil
}

func notFoundErr(resource, id string) error {
	return fmt.Errorf("%s %s: %w", resource, id, repository.ErrNotFound)
}

type stubGroupMessagesRepo struct{}

func (stubGroupMessagesRepo) ListGroupMessages(ctx context.Context) ([]*domain.GroupMessage, error) {
	return []*domain.GroupMessage{}, nil
}
func (stubGroupMessagesRepo) GetGroupMessage(ctx context.Context, id string) (*domain.GroupMessage, error) {
	return nil, notFoundErr("group message", id)
}
func (stubGroupMessagesRepo) CreateGroupMessage(ctx context.Context, m *domain.GroupMessage) error {
	return nil
}
func (stubGroupMessagesRepo) UpdateGroupMessage(ctx context.Context, m *domain.GroupMessage) error {
	return nil
}
func (stubGroupMessagesRepo) DeleteGroupMessage(ctx context.Context, id string) error { return nil }

type stubAnnouncementsRepo struct{}

func (stubAnnouncementsRepo) ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error) {
	return []*domain.Announcement{}, nil
}
func (stubAnnouncementsRepo) GetAnnouncement(ctx context.Context, id int64) (*domain.Announcement, error) {
	return nil, notFoundErr("announcement", fmt.Sprint(id))
}
func (stubAnnouncementsRepo) CreateAnnouncement(ctx context.Context, a *domain.Announcement) error {
	return nil
}
func (stubAnnouncementsRepo) UpdateAnnouncement(ctx context.Context, a *domain.Announcement) error {
	return nil
}
func (stubAnnouncementsRepo) DeleteAnnouncement(ctx context.Context, id int64) error { return nil }

func newCommsTestServer(messages repository.MessagesRepository) *httptest.Server {
	h := NewCommsHandler(messages, stubGroupMessagesRepo{}, stubAnnouncementsRepo{}, zap.NewNop())
	mux := http.NewServeMux()
	mux.Handle("/api/messages", h)
	mux.Handle("/api/messages/", h)
	return httptest.NewServer(mux)
}

func postJSON(t *testing.T, url string, body map[string]any) (*http.Response, Envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestCreateMessage_KnownFarmer(t *testing.T) {
	srv := newCommsTestServer(newFakeMessagesRepo("FARM0001"))
	defer srv.Close()

	resp, env := postJSON(t, srv.URL+"/api/messages", map[string]any{
		"id":        "MSG001",
		"farmer_id": "FARM0001",
		"subject":   "Test",
		"message":   "Hello",
		"timestamp": "2025-06-09 14:30:00",
		"status":    "Sent",
		"priority":  "Medium",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "MSG001", data["id"])
	assert.Equal(t, "FARM0001", data["farmer_id"])
}

func TestCreateMessage_UnknownFarmer(t *testing.T) {
	srv := newCommsTestServer(newFakeMessagesRepo("FARM0001"))
	defer srv.Close()

	resp, env := postJSON(t, srv.URL+"/api/messages", map[string]any{
		"id":        "MSG001",
		"farmer_id": "FARM0002",
		"subject":   "Test",
		"message":   "Hello",
		"timestamp": "2025-06-09 14:30:00",
		"status":    "Sent",
		"priority":  "Medium",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "foreign key")
}

func TestCreateMessage_BadFarmerIDFormat(t *testing.T) {
	repo := newFakeMessagesRepo("FARM0001")
	srv := newCommsTestServer(repo)
	defer srv.Close()

	resp, env := postJSON(t, srv.URL+"/api/messages", map[string]any{
		"id":        "MSG001",
		"farmer_id": "not-a-farmer",
		"subject":   "Test",
		"message":   "Hello",
		"timestamp": "2025-06-09 14:30:00",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)

	var found bool
	for _, fe := range env.Errors {
		if fe.Field == "farmer_id" {
			found = true
		}
	}
	assert.True(t, found, "expected a validation error referencing farmer_id")
	assert.Empty(t, repo.messages, "no message should be stored on validation failure")
}

func TestUpdateMessageStatus_Patch(t *testing.T) {
	repo := newFakeMessagesRepo("FARM0001")
	repo.messages["MSG001"] = &domain.Message{ID: "MSG001", FarmerID: "FARM0001", Status: "Sent"}
	srv := newCommsTestServer(repo)
	defer srv.Close()

	body := bytes.NewReader([]byte(`{"status":"Read"}`))
	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/api/messages/MSG001/status", body)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Read", repo.messages["MSG001"].Status)
}

func TestGetMessage_NotFound(t *testing.T) {
	srv := newCommsTestServer(newFakeMessagesRepo("FARM0001"))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/messages/MSG404")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
