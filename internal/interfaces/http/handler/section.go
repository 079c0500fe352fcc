package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/truaxis/storefront/internal/application/catalog"
)

// SectionHandler serves storefront sections.
type SectionHandler struct {
	BaseHandler
	sectionService *appcatalog.SectionService
}

// NewSectionHandler creates a section handler
func NewSectionHandler(sectionService *appcatalog.SectionService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

// List handles GET /api/v1/sections
func (h *SectionHandler) List(c *gin.Context) {
	sections, err := h.sectionService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sections)
}

// GetBySlug handles GET /api/v1/sections/:slug
func (h *SectionHandler) GetBySlug(c *gin.Context) {
	section, err := h.sectionService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, section)
}

// AdminList handles GET /api/v1/admin/sections, including inactive sections
func (h *SectionHandler) AdminList(c *gin.Context) {
	sections, err := h.sectionService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sections)
}

// Create handles POST /api/v1/admin/sections
func (h *SectionHandler) Create(c *gin.Context) {
	var req appcatalog.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	section, err := h.sectionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, section)
}

// Update handles PUT /api/v1/admin/sections/:id
func (h *SectionHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid section ID")
		return
	}

	var req appcatalog.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	section, err := h.sectionService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, section)
}

// ToggleActive handles POST /api/v1/admin/sections/:id/toggle
func (h *SectionHandler) ToggleActive(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid section ID")
		return
	}

	section, err := h.sectionService.ToggleActive(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, section)
}

// Delete handles DELETE /api/v1/admin/sections/:id. With ?force=true a
// non-empty section is removed and its products move to the fallback
// section.
func (h *SectionHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid section ID")
		return
	}
	force := c.Query("force") == "true"

	if err := h.sectionService.Delete(c.Request.Context(), id, force); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
