package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"dictionary-backend/internal/domains/geolocation"
	"dictionary-backend/internal/domains/importer"
	"dictionary-backend/internal/domains/name"
	"dictionary-backend/internal/domains/name/model"
	"dictionary-backend/internal/shared/response"
)

// NameHandler maps HTTP requests onto the name service. It owns request
// validation and error formatting; the only business logic here is name
// normalization before handoff and filtering of already-fetched results.
type NameHandler struct {
	service   name.Service
	geoRepo   geolocation.Repository
	importer  importer.Importer
	maxUpload int64
}

func NewNameHandler(svc name.Service, geoRepo geolocation.Repository, imp importer.Importer, maxUpload int64) *NameHandler {
	return &NameHandler{
		service:   svc,
		geoRepo:   geoRepo,
		importer:  imp,
		maxUpload: maxUpload,
	}
}

func (h *NameHandler) respondError(c *gin.Context, err error) {
	response.Error(c, name.ToHTTPStatus(err), err.Error())
}

// checkGeoLocation validates a payload's place reference against the
// geolocation registry before the entry is bound.
func (h *NameHandler) checkGeoLocation(c *gin.Context, geo *model.GeoLocation) error {
	if geo == nil || geo.Place == "" {
		return nil
	}
	exists, err := h.geoRepo.Exists(c.Request.Context(), geo.Place)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %q", name.ErrUnknownGeoLocation, geo.Place)
	}
	return nil
}

// AddName handles POST /v1/names.
func (h *NameHandler) AddName(c *gin.Context) {
	var req model.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, model.FormatFieldErrors(err, ""))
		return
	}

	if err := h.checkGeoLocation(c, req.GeoLocation); err != nil {
		h.respondError(c, err)
		return
	}

	if _, err := h.service.CreateOrDuplicate(c.Request.Context(), req.ToEntry()); err != nil {
		h.respondError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "Name successfully added")
}

// GetAllNames handles GET /v1/names?page&count&submittedBy&indexed.
//
// The submittedBy and indexed filters are applied in memory after the page
// has been fetched, so a filtered response may hold fewer than count items
// even when more matches exist on later pages. Long-standing behavior that
// clients page around; changing it would change observable page sizes.
func (h *NameHandler) GetAllNames(c *gin.Context) {
	opts := model.ListOptions{Page: model.DefaultPage, Count: model.DefaultCount}
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			opts.Page = p
		}
	}
	if v := c.Query("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Count = n
		}
	}

	entries, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var indexedFilter *bool
	if v := c.Query("indexed"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			indexedFilter = &b
		}
	}
	submittedBy := strings.TrimSpace(c.Query("submittedBy"))

	dtos := make([]*model.NameDto, 0, len(entries))
	for i := range entries {
		dto := entries[i].ToDto()
		if indexedFilter != nil && dto.Indexed != *indexedFilter {
			continue
		}
		if submittedBy != "" && !strings.EqualFold(strings.TrimSpace(dto.SubmittedBy), submittedBy) {
			continue
		}
		dtos = append(dtos, dto)
	}

	response.JSON(c, http.StatusOK, dtos)
}

// GetName handles GET /v1/names/:name?duplicates=true.
func (h *NameHandler) GetName(c *gin.Context) {
	nm := c.Param("name")

	entry, err := h.service.Get(c.Request.Context(), nm)
	if err != nil {
		if name.ToHTTPStatus(err) == http.StatusNotFound {
			response.Error(c, http.StatusNotFound, fmt.Sprintf("%s not found in the database", nm))
			return
		}
		h.respondError(c, err)
		return
	}

	withDuplicates, _ := strconv.ParseBool(c.Query("duplicates"))
	if !withDuplicates {
		response.JSON(c, http.StatusOK, entry.ToDto())
		return
	}

	dups, err := h.service.Duplicates(c.Request.Context(), nm)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if dups == nil {
		dups = []model.DuplicateNameEntry{}
	}

	response.JSON(c, http.StatusOK, model.EntryWithDuplicates{
		MainEntry:  entry.ToDto(),
		Duplicates: dups,
	})
}

// UpdateName handles PUT /v1/names/:name. The path name and payload name
// must identify the same entry; a mismatch is reported, never corrected.
func (h *NameHandler) UpdateName(c *gin.Context) {
	nm := c.Param("name")

	var req model.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, model.FormatFieldErrors(err, ""))
		return
	}

	if model.NormalizeName(req.Name) != model.NormalizeName(nm) {
		h.respondError(c, name.ErrNameMismatch)
		return
	}

	if err := h.checkGeoLocation(c, req.GeoLocation); err != nil {
		h.respondError(c, err)
		return
	}

	if _, err := h.service.Get(c.Request.Context(), nm); err != nil {
		if name.ToHTTPStatus(err) == http.StatusNotFound {
			response.Error(c, http.StatusNotFound, fmt.Sprintf("%s not in the database", nm))
			return
		}
		h.respondError(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), req.ToEntry()); err != nil {
		h.respondError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "Name successfully updated")
}

// AddBatch handles POST /v1/names/batch: a JSON array of entries, each one
// run through the same duplicate policy as a single insert. Elements are
// processed independently, so a mid-batch store failure leaves earlier
// elements persisted.
func (h *NameHandler) AddBatch(c *gin.Context) {
	var reqs []model.NameRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}

	if len(reqs) == 0 {
		h.respondError(c, name.ErrEmptyBatch)
		return
	}

	var fieldErrors []string
	for i, req := range reqs {
		if err := req.Validate(); err != nil {
			fieldErrors = append(fieldErrors, model.FormatFieldErrors(err, fmt.Sprintf("entries[%d]", i)))
		}
	}
	if len(fieldErrors) > 0 {
		response.Error(c, http.StatusBadRequest, strings.Join(fieldErrors, " "))
		return
	}

	for i := range reqs {
		if _, err := h.service.CreateOrDuplicate(c.Request.Context(), reqs[i].ToEntry()); err != nil {
			log.Warn().
				Err(err).
				Str("name", reqs[i].Name).
				Int("element", i).
				Msg("Batch element failed")
		}
	}

	response.Message(c, http.StatusCreated, "Names successfully imported")
}

// Upload handles POST /v1/names/upload: a multipart spreadsheet in the
// nameFiles field. The upload is written to a temporary file which is
// removed on every exit path, including import failure.
func (h *NameHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("nameFiles")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "nameFiles file is required (multipart/form-data)")
		return
	}

	if fileHeader.Size == 0 {
		h.respondError(c, name.ErrEmptyFile)
		return
	}
	if h.maxUpload > 0 && fileHeader.Size > h.maxUpload {
		response.Error(c, http.StatusBadRequest, fmt.Sprintf("file exceeds the %d byte limit", h.maxUpload))
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+".tmp")
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to store uploaded file")
		return
	}
	defer func() {
		// Best effort; a leftover temp file is logged, not surfaced.
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", tmpPath).Msg("Failed to remove temporary upload file")
		}
	}()

	status := h.importer.DoImport(c.Request.Context(), tmpPath)
	if status.HasErrors() {
		response.Error(c, name.ToHTTPStatus(name.ErrImportFailed), status.AggregatedErrors())
		return
	}

	response.Message(c, http.StatusCreated, "File successfully imported")
}

// DeleteName handles DELETE /v1/names/:name. Deleting an absent name is not
// distinguished from deleting an existing one.
func (h *NameHandler) DeleteName(c *gin.Context) {
	nm := c.Param("name")

	if err := h.service.DeleteWithDuplicates(c.Request.Context(), nm); err != nil {
		h.respondError(c, err)
		return
	}

	response.Message(c, http.StatusOK, nm+" deleted")
}

// DeleteAllNames handles DELETE /v1/names.
func (h *NameHandler) DeleteAllNames(c *gin.Context) {
	if err := h.service.DeleteAll(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Names deleted")
}
