package httpapi

import (
	"net/http"
	"time"

	"dairycoop-data/internal/domain"
	"dairycoop-data/internal/repository"
	"dairycoop-data/internal/validation"

	"go.uber.org/zap"
)

// CommsHandler serves member communications: direct messages, group
// broadcasts and portal announcements.
type CommsHandler struct {
	messages      repository.MessagesRepository
	groupMessages repository.GroupMessagesRepository
	announcements repository.AnnouncementsRepository
	logger        *zap.Logger
}

func NewCommsHandler(
	messages repository.MessagesRepository,
	groupMessages repository.GroupMessagesRepository,
	announcements repository.AnnouncementsRepository,
	logger *zap.Logger,
) *CommsHandler {
	return &CommsHandler{
		messages:      messages,
		groupMessages: groupMessages,
		announcements: announcements,
		logger:        logger,
	}
}

func (h *CommsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/messages" && r.Method == http.MethodGet:
		h.ListMessages(w, r)
	case r.URL.Path == "/api/messages" && r.Method == http.MethodPost:
		h.CreateMessage(w, r)
	case hasIDActionPath(r.URL.Path, "/api/messages/", "/status") && r.Method == http.MethodPatch:
		h.UpdateMessageStatus(w, r)
	case hasIDPath(r.URL.Path, "/api/messages/") && r.Method == http.MethodGet:
		h.GetMessage(w, r)
	case hasIDPath(r.URL.Path, "/api/messages/") && r.Method == http.MethodPut:
		h.UpdateMessage(w, r)
	case hasIDPath(r.URL.Path, "/api/messages/") && r.Method == http.MethodDelete:
		h.DeleteMessage(w, r)

	case r.URL.Path == "/api/group-messages" && r.Method == http.MethodGet:
		h.ListGroupMessages(w, r)
	case r.URL.Path == "/api/group-messages" && r.Method == http.MethodPost:
		h.CreateGroupMessage(w, r)
	case hasIDPath(r.URL.Path, "/api/group-messages/") && r.Method == http.MethodGet:
		h.GetGroupMessage(w, r)
	case hasIDPath(r.URL.Path, "/api/group-messages/") && r.Method == http.MethodPut:
		h.UpdateGroupMessage(w, r)
	case hasIDPath(r.URL.Path, "/api/group-messages/") && r.Method == http.MethodDelete:
		h.DeleteGroupMessage(w, r)

	case r.URL.Path == "/api/announcements" && r.Method == http.MethodGet:
		h.ListAnnouncements(w, r)
	case r.URL.Path == "/api/announcements" && r.Method == http.MethodPost:
		h.CreateAnnouncement(w, r)
	case hasIDPath(r.URL.Path, "/api/announcements/") && r.Method == http.MethodGet:
		h.GetAnnouncement(w, r)
	case hasIDPath(r.URL.Path, "/api/announcements/") && r.Method == http.MethodPut:
		h.UpdateAnnouncement(w, r)
	case hasIDPath(r.URL.Path, "/api/announcements/") && r.Method == http.MethodDelete:
		h.DeleteAnnouncement(w, r)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// ============================================
// Messages
// ============================================

func (h *CommsHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messages.ListMessages(r.Context())
	if err != nil {
		h.logger.Error("ListMessages failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(messages))
	for _, m := range messages {
		out = append(out, messageToJSON(m))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *CommsHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/messages/", "")

	m, err := h.messages.GetMessage(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(messageToJSON(m)))
}

func (h *CommsHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Messages.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	m := messageFromPayload(strField(payload, "id"), payload)
	if err := h.messages.CreateMessage(r.Context(), m); err != nil {
		h.logger.Error("CreateMessage failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(messageToJSON(m), "message created"))
}

func (h *CommsHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/messages/", "")

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	payload["id"] = id
	if errs := validation.Messages.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	m := messageFromPayload(id, payload)
	if err := h.messages.UpdateMessage(r.Context(), m); err != nil {
		h.logger.Error("UpdateMessage failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(messageToJSON(m), "message updated"))
}

// UpdateMessageStatus moves a message along Sent -> Delivered -> Read. The
// repository only touches the status column.
func (h *CommsHandler) UpdateMessageStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/messages/", "/status")

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	status := strField(payload, "status")
	switch status {
	case "Sent", "Delivered", "Read":
	default:
		writeJSON(w, http.StatusBadRequest, FailValidation([]validation.FieldError{
			{Field: "status", Message: "status must be one of [Sent Delivered Read]"},
		}))
		return
	}

	if err := h.messages.UpdateMessageStatus(r.Context(), id, status); err != nil {
		h.logger.Error("UpdateMessageStatus failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "message status updated"})
}

func (h *CommsHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/messages/", "")

	if err := h.messages.DeleteMessage(r.Context(), id); err != nil {
		h.logger.Error("DeleteMessage failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "message deleted"})
}

func messageToJSON(m *domain.Message) map[string]any {
	return map[string]any{
		"id":        m.ID,
		"farmer_id": m.FarmerID,
		"subject":   m.Subject,
		"message":   m.Message,
		"timestamp": fmtDateTime(m.Timestamp),
		"status":    m.Status,
		"priority":  m.Priority,
	}
}

func messageFromPayload(id string, p map[string]any) *domain.Message {
	m := &domain.Message{
		ID:        id,
		FarmerID:  strField(p, "farmer_id"),
		Subject:   strField(p, "subject"),
		Message:   strField(p, "message"),
		Timestamp: dateTimeField(p, "timestamp"),
		Status:    strFieldDefault(p, "status", "Sent"),
		Priority:  strFieldDefault(p, "priority", "Medium"),
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	return m
}

// ============================================
// Group messages
// ============================================

func (h *CommsHandler) ListGroupMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.groupMessages.ListGroupMessages(r.Context())
	if err != nil {
		h.logger.Error("ListGroupMessages failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(messages))
	for _, m := range messages {
		out = append(out, groupMessageToJSON(m))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *CommsHandler) GetGroupMessage(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/group-messages/", "")

	m, err := h.groupMessages.GetGroupMessage(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(groupMessageToJSON(m)))
}

func (h *CommsHandler) CreateGroupMessage(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.GroupMessages.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	m := groupMessageFromPayload(strField(payload, "id"), payload)
	if err := h.groupMessages.CreateGroupMessage(r.Context(), m); err != nil {
		h.logger.Error("CreateGroupMessage failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(groupMessageToJSON(m), "group message created"))
}

func (h *CommsHandler) UpdateGroupMessage(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/group-messages/", "")

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	payload["id"] = id
	if errs := validation.GroupMessages.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	m := groupMessageFromPayload(id, payload)
	if err := h.groupMessages.UpdateGroupMessage(r.Context(), m); err != nil {
		h.logger.Error("UpdateGroupMessage failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(groupMessageToJSON(m), "group message updated"))
}

func (h *CommsHandler) DeleteGroupMessage(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/group-messages/", "")

	if err := h.groupMessages.DeleteGroupMessage(r.Context(), id); err != nil {
		h.logger.Error("DeleteGroupMessage failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "group message deleted"})
}

func groupMessageToJSON(m *domain.GroupMessage) map[string]any {
	return map[string]any{
		"id":               m.ID,
		"group_name":       m.GroupName,
		"subject":          m.Subject,
		"message":          m.Message,
		"timestamp":        fmtDateTime(m.Timestamp),
		"recipients_count": m.RecipientsCount,
		"status":           m.Status,
		"priority":         m.Priority,
	}
}

func groupMessageFromPayload(id string, p map[string]any) *domain.GroupMessage {
	m := &domain.GroupMessage{
		ID:              id,
		GroupName:       strField(p, "group_name"),
		Subject:         strField(p, "subject"),
		Message:         strField(p, "message"),
		Timestamp:       dateTimeField(p, "timestamp"),
		RecipientsCount: intField(p, "recipients_count"),
		Status:          strFieldDefault(p, "status", "Sent"),
		Priority:        strFieldDefault(p, "priority", "Medium"),
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	return m
}

// ============================================
// Announcements
// ============================================

func (h *CommsHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcements.ListAnnouncements(r.Context())
	if err != nil {
		h.logger.Error("ListAnnouncements failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(announcements))
	for _, a := range announcements {
		out = append(out, announcementToJSON(a))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *CommsHandler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/announcements/")
	if !ok {
		return
	}

	a, err := h.announcements.GetAnnouncement(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(announcementToJSON(a)))
}

func (h *CommsHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Announcements.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	a := announcementFromPayload(0, payload)
	if err := h.announcements.CreateAnnouncement(r.Context(), a); err != nil {
		h.logger.Error("CreateAnnouncement failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(announcementToJSON(a), "announcement created"))
}

func (h *CommsHandler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/announcements/")
	if !ok {
		return
	}

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Announcements.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	a := announcementFromPayload(id, payload)
	if err := h.announcements.UpdateAnnouncement(r.Context(), a); err != nil {
		h.logger.Error("UpdateAnnouncement failed", zap.Error(err), zap.Int64("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(announcementToJSON(a), "announcement updated"))
}

func (h *CommsHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/announcements/")
	if !ok {
		return
	}

	if err := h.announcements.DeleteAnnouncement(r.Context(), id); err != nil {
		h.logger.Error("DeleteAnnouncement failed", zap.Error(err), zap.Int64("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "announcement deleted"})
}

func announcementToJSON(a *domain.Announcement) map[string]any {
	return map[string]any{
		"id":           a.ID,
		"title":        a.Title,
		"content":      a.Content,
		"category":     a.Category,
		"publish_date": fmtDate(a.PublishDate),
		"expiry_date":  nullDate(a.ExpiryDate, validation.DateOnly),
		"priority":     a.Priority,
		"status":       a.Status,
	}
}

func announcementFromPayload(id int64, p map[string]any) *domain.Announcement {
	return &domain.Announcement{
		ID:          id,
		Title:       strField(p, "title"),
		Content:     strField(p, "content"),
		Category:    strFieldDefault(p, "category", "General"),
		PublishDate: dateField(p, "publish_date"),
		ExpiryDate:  nullDateField(p, "expiry_date", validation.DateOnly),
		Priority:    strFieldDefault(p, "priority", "Medium"),
		Status:      strFieldDefault(p, "status", "Published"),
	}
}
