package handler

import (
	"net/http"

	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/delivery/http/response"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the section table for the signed-in profile.
type DashboardHandler struct {
	sections []entity.Section
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(sections []entity.Section) *DashboardHandler {
	return &DashboardHandler{sections: sections}
}

// SectionView is one dashboard section as seen by the current profile.
type SectionView struct {
	Section entity.Section  `json:"section"`
	Profile *entity.Profile `json:"profile"`
}

// Sections handles GET /dashboard/sections.
func (h *DashboardHandler) Sections(c echo.Context) error {
	state, ok := deliverycontext.GetAuthState(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNotSignedIn)
	}

	return response.Success(c, http.StatusOK, entity.AccessibleSections(h.sections, state.Profile))
}

// Section handles GET /dashboard/:section. Access is decided by the route guard.
func (h *DashboardHandler) Section(c echo.Context) error {
	state, ok := deliverycontext.GetAuthState(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNotSignedIn)
	}

	section, found := entity.FindSection(h.sections, c.Param("section"))
	if !found {
		return response.HandleAppError(c, domainerrors.ErrNotFound)
	}

	return response.Success(c, http.StatusOK, SectionView{Section: section, Profile: state.Profile})
}
