package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/recordsync/internal/models"
	"github.com/iudanet/recordsync/internal/server/storage"
	"github.com/iudanet/recordsync/internal/validation"
)

// MaxBodySize ограничение тела create/update
const MaxBodySize = 1 << 20

// RecordHandler обслуживает REST API записей /api/rest/v1/{identifier}
type RecordHandler struct {
	responder
	records storage.RecordStorage
	now     func() time.Time
	newKey  func() string
}

// NewRecordHandler создает новый handler записей
func NewRecordHandler(logger *slog.Logger, records storage.RecordStorage) *RecordHandler {
	return &RecordHandler{
		responder: responder{logger: logger},
		records:   records,
		now:       time.Now,
		newKey:    func() string { return uuid.New().String() },
	}
}

// List обрабатывает GET /api/rest/v1/{identifier}
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identifier, fields, ok := h.target(w, r)
	if !ok {
		return
	}

	records, err := h.records.ListRecords(ctx, identifier)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list records", slog.String("identifier", identifier), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]map[string]any, len(records))
	for i, rec := range records {
		out[i] = renderRecord(rec, fields)
	}
	h.sendJSON(w, out, http.StatusOK)
}

// Get обрабатывает GET /api/rest/v1/{identifier}/{key}
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identifier, fields, ok := h.target(w, r)
	if !ok {
		return
	}

	rec, err := h.records.GetRecord(ctx, identifier, chi.URLParam(r, "key"))
	if err != nil {
		h.storageError(w, r, err)
		return
	}
	h.sendJSON(w, renderRecord(rec, fields), http.StatusOK)
}

// Create обрабатывает POST /api/rest/v1/{identifier}/new.
// Ключ (uuid) и номер назначает сервер.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identifier, fields, ok := h.target(w, r)
	if !ok {
		return
	}
	payload, ok := h.payload(w, r, identifier)
	if !ok {
		return
	}

	now := h.now()
	rec := &models.StoredRecord{
		Identifier: identifier,
		Key:        h.newKey(),
		Fields:     mergeFields(nil, payload),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := h.records.CreateRecord(ctx, rec); err != nil {
		h.storageError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "record created",
		slog.String("identifier", identifier),
		slog.String("key", rec.Key),
		slog.Int64("number", rec.Number))

	h.sendJSON(w, renderRecord(rec, fields), http.StatusOK)
}

// Update обрабатывает PUT /api/rest/v1/{identifier}/{key}.
// Поля тела сливаются с текущими, null удаляет поле.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identifier, fields, ok := h.target(w, r)
	if !ok {
		return
	}
	payload, ok := h.payload(w, r, identifier)
	if !ok {
		return
	}

	rec, err := h.records.GetRecord(ctx, identifier, chi.URLParam(r, "key"))
	if err != nil {
		h.storageError(w, r, err)
		return
	}

	rec.Fields = mergeFields(rec.Fields, payload)
	rec.UpdatedAt = h.now()
	if err := h.records.UpdateRecord(ctx, rec); err != nil {
		h.storageError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "record updated",
		slog.String("identifier", identifier),
		slog.String("key", rec.Key))

	h.sendJSON(w, renderRecord(rec, fields), http.StatusOK)
}

// Delete обрабатывает DELETE /api/rest/v1/{identifier}/{key}
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identifier, _, ok := h.target(w, r)
	if !ok {
		return
	}

	key := chi.URLParam(r, "key")
	if err := h.records.DeleteRecord(ctx, identifier, key); err != nil {
		h.storageError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "record deleted",
		slog.String("identifier", identifier),
		slog.String("key", key))

	w.WriteHeader(http.StatusNoContent)
}

// target проверяет идентификатор объекта и параметр fields
func (h *RecordHandler) target(w http.ResponseWriter, r *http.Request) (string, []string, bool) {
	identifier := chi.URLParam(r, "identifier")
	if err := validation.ValidateIdentifier(identifier); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return "", nil, false
	}

	fields, err := parseFields(r.URL.Query().Get("fields"))
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return "", nil, false
	}
	return identifier, fields, true
}

func (h *RecordHandler) payload(w http.ResponseWriter, r *http.Request, identifier string) (map[string]any, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		h.sendError(w, "request body too large", http.StatusRequestEntityTooLarge)
		return nil, false
	}

	payload, err := decodePayload(data, identifier)
	if err != nil {
		h.logger.WarnContext(r.Context(), "invalid record payload", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return payload, true
}

func (h *RecordHandler) storageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrRecordNotFound) {
		h.sendError(w, "record not found", http.StatusNotFound)
		return
	}
	h.logger.ErrorContext(r.Context(), "record storage failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
	h.sendError(w, "internal server error", http.StatusInternalServerError)
}
