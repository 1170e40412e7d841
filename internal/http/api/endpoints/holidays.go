package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gisqo-media/tracker/internal/http/api"
	"github.com/gisqo-media/tracker/internal/http/api/packets"
	"github.com/gisqo-media/tracker/internal/model"
	"github.com/gisqo-media/tracker/internal/store"
)

type HolidayController struct {
	repo *store.Repository
}

// HolidayReadModule lists holidays for every signed-in user.
func HolidayReadModule(repo *store.Repository) api.Module {
	ctl := &HolidayController{repo: repo}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/holidays", ctl.listHolidays)
	})
}

// HolidayAdminModule mounts holiday management for admins.
func HolidayAdminModule(repo *store.Repository) api.Module {
	ctl := &HolidayController{repo: repo}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/holidays", ctl.createHoliday)
		c.PUT("/holidays/:id", ctl.updateHoliday)
		c.DELETE("/holidays/:id", ctl.deleteHoliday)
	})
}

// GET /api/holidays
func (h *HolidayController) listHolidays(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	holidays, err := h.repo.Holidays(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load holidays"}
	}
	return holidays, nil
}

// POST /api/admin/holidays
func (h *HolidayController) createHoliday(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	request, apiErr := bindHoliday(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	holiday := model.Holiday{ID: store.NewID(), Name: request.Name, Date: request.Date}
	if err := h.repo.PutHoliday(ctx.Request.Context(), holiday); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save holiday"}
	}
	return holiday, nil
}

// PUT /api/admin/holidays/:id
func (h *HolidayController) updateHoliday(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	request, apiErr := bindHoliday(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	holidays, err := h.repo.Holidays(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load holidays"}
	}
	id := ctx.Param("id")
	found := false
	for _, existing := range holidays {
		if existing.ID == id {
			found = true
			break
		}
	}
	if !found {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}

	holiday := model.Holiday{ID: id, Name: request.Name, Date: request.Date}
	if err := h.repo.PutHoliday(ctx.Request.Context(), holiday); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update holiday"}
	}
	return holiday, nil
}

// DELETE /api/admin/holidays/:id
func (h *HolidayController) deleteHoliday(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if err := h.repo.RemoveHoliday(ctx.Request.Context(), ctx.Param("id")); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete holiday"}
	}
	return gin.H{"deleted": ctx.Param("id")}, nil
}

func bindHoliday(ctx *gin.Context) (packets.HolidayRequest, *api.APIError) {
	var request packets.HolidayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return request, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := time.Parse(model.DateLayout, request.Date); err != nil {
		return request, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date"}
	}
	return request, nil
}
