package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-adp-dashboard/internal/entity"
	"github.com/noah-isme/sma-adp-dashboard/internal/models"
	"github.com/noah-isme/sma-adp-dashboard/internal/service"
	appErrors "github.com/noah-isme/sma-adp-dashboard/pkg/errors"
	"github.com/noah-isme/sma-adp-dashboard/pkg/export"
	"github.com/noah-isme/sma-adp-dashboard/pkg/response"
)

type entityController[T any] interface {
	Schema() entity.Schema[T]
	List(search string) []T
	Get(id string) (T, error)
	Session() entity.SessionSnapshot
	OpenCreate() entity.SessionSnapshot
	OpenEdit(id string) (entity.SessionSnapshot, error)
	UpdateFields(changes map[string]string) (entity.SessionSnapshot, error)
	Cancel() entity.SessionSnapshot
	Submit() (entity.Result[T], error)
	Delete(id string) (entity.Result[T], error)
}

type exportRenderer interface {
	Render(entityName, format string, data export.Dataset) (*service.ExportFile, error)
}

// UpdateDraftRequest changes one draft field, or several at once through Fields.
type UpdateDraftRequest struct {
	Field  string            `json:"field"`
	Value  *string           `json:"value"`
	Fields map[string]string `json:"fields"`
}

// EntityHandler serves the list, detail and editor views of one entity type.
type EntityHandler[T any] struct {
	entities entityController[T]
	exports  exportRenderer
	title    string
}

// NewEntityHandler constructs an EntityHandler. A nil exporter disables exports.
func NewEntityHandler[T any](entities entityController[T], exports exportRenderer, title string) *EntityHandler[T] {
	return &EntityHandler[T]{entities: entities, exports: exports, title: title}
}

// Register mounts the entity routes on group.
func (h *EntityHandler[T]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.GET("/export", h.Export)
	group.GET("/editor", h.Editor)
	group.POST("/editor", h.OpenCreate)
	group.PATCH("/editor", h.UpdateDraft)
	group.DELETE("/editor", h.Cancel)
	group.POST("/editor/submit", h.Submit)
	group.GET("/:id", h.Get)
	group.DELETE("/:id", h.Delete)
	group.POST("/:id/editor", h.OpenEdit)
}

// List godoc
// @Summary List records matching a search term
// @Tags Entities
// @Produce json
// @Param search query string false "Case-insensitive substring"
// @Success 200 {object} response.Envelope
// @Router /{entity} [get]
func (h *EntityHandler[T]) List(c *gin.Context) {
	search := c.Query("search")
	records := h.entities.List(search)
	response.JSON(c, http.StatusOK, records, map[string]interface{}{
		"search": search,
		"count":  len(records),
	})
}

// Get godoc
// @Summary Get one record
// @Tags Entities
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /{entity}/{id} [get]
func (h *EntityHandler[T]) Get(c *gin.Context) {
	record, err := h.entities.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// Delete godoc
// @Summary Delete a record
// @Tags Entities
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /{entity}/{id} [delete]
func (h *EntityHandler[T]) Delete(c *gin.Context) {
	result, err := h.entities.Delete(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Notify(c, http.StatusOK, result.Record, result.Notification)
}

// Export godoc
// @Summary Export the list view
// @Tags Entities
// @Produce text/csv,application/pdf
// @Param search query string false "Case-insensitive substring"
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Router /{entity}/export [get]
func (h *EntityHandler[T]) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrFeatureDisabled, "exports are disabled"))
		return
	}
	schema := h.entities.Schema()
	data := service.BuildDataset(h.title, schema.Columns, h.entities.List(c.Query("search")))
	file, err := h.exports.Render(schema.Plural, c.DefaultQuery("format", service.ExportFormatCSV), data)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Body)
}

// Editor godoc
// @Summary Current edit session
// @Tags Editor
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /{entity}/editor [get]
func (h *EntityHandler[T]) Editor(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.entities.Session())
}

// OpenCreate godoc
// @Summary Start a create session with a blank draft
// @Tags Editor
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /{entity}/editor [post]
func (h *EntityHandler[T]) OpenCreate(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.entities.OpenCreate())
}

// OpenEdit godoc
// @Summary Start an edit session for a record
// @Tags Editor
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /{entity}/{id}/editor [post]
func (h *EntityHandler[T]) OpenEdit(c *gin.Context) {
	snapshot, err := h.entities.OpenEdit(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, snapshot)
}

// UpdateDraft godoc
// @Summary Change draft fields
// @Tags Editor
// @Accept json
// @Produce json
// @Param payload body UpdateDraftRequest true "Field changes"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /{entity}/editor [patch]
func (h *EntityHandler[T]) UpdateDraft(c *gin.Context) {
	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid draft payload"))
		return
	}

	changes := req.Fields
	if changes == nil {
		changes = make(map[string]string)
	}
	if field := strings.TrimSpace(req.Field); field != "" {
		if req.Value == nil {
			response.Error(c, appErrors.Validation("invalid draft payload", map[string]string{"value": "value is required"}))
			return
		}
		changes[field] = *req.Value
	}
	if len(changes) == 0 {
		response.Error(c, appErrors.Validation("invalid draft payload", map[string]string{"field": "field is required"}))
		return
	}

	snapshot, err := h.entities.UpdateFields(changes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, snapshot)
}

// Cancel godoc
// @Summary Close the edit session without saving
// @Tags Editor
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /{entity}/editor [delete]
func (h *EntityHandler[T]) Cancel(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.entities.Cancel())
}

// Submit godoc
// @Summary Validate and apply the draft
// @Tags Editor
// @Produce json
// @Success 200 {object} response.Envelope
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /{entity}/editor/submit [post]
func (h *EntityHandler[T]) Submit(c *gin.Context) {
	result, err := h.entities.Submit()
	if err != nil {
		if result.Notification.Title == "" {
			h.fail(c, err)
			return
		}
		response.Failure(c, err, result.Notification)
		return
	}
	if result.Command == entity.CommandCreate {
		response.Created(c, result.Record, result.Notification)
		return
	}
	response.Notify(c, http.StatusOK, result.Record, result.Notification)
}

// fail answers a rejected command. Missing records also get a destructive notification.
func (h *EntityHandler[T]) fail(c *gin.Context, err error) {
	if errors.Is(err, appErrors.ErrNotFound) {
		singular := strings.ToLower(h.entities.Schema().Singular)
		response.Failure(c, err, models.Destructive("Error", fmt.Sprintf("This %s no longer exists.", singular)))
		return
	}
	response.Error(c, err)
}
