package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gisqo-media/tracker/internal/http/api"
	"github.com/gisqo-media/tracker/internal/http/api/packets"
	"github.com/gisqo-media/tracker/internal/model"
	"github.com/gisqo-media/tracker/internal/report"
	"github.com/gisqo-media/tracker/internal/store"
)

type ShootingController struct {
	repo *store.Repository
	now  func() time.Time
}

// ShootingModule mounts the production-session schedule.
func ShootingModule(repo *store.Repository) api.Module {
	ctl := &ShootingController{repo: repo, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/shootings", ctl.listShootings)
		c.POST("/shootings", ctl.createShooting)
		c.PUT("/shootings/:id", ctl.updateShooting)
		c.DELETE("/shootings/:id", ctl.deleteShooting)
	})
}

// GET /api/shootings
func (s *ShootingController) listShootings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	pastPage := 1
	if raw := ctx.Query("past_page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid page"}
		}
		pastPage = p
	}

	shootings, err := s.repo.Shootings(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load shootings"}
	}

	today := s.now().Format(model.DateLayout)
	upcoming, past := report.SplitShootings(shootings, today)
	return packets.ShootingsResponse{
		Upcoming: upcoming,
		Past:     report.PaginatePast(past, pastPage),
		PastPage: pastPage,
	}, nil
}

// POST /api/shootings
func (s *ShootingController) createShooting(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	request, apiErr := bindShooting(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	shooting := model.Shooting{
		ID:         store.NewID(),
		Title:      request.Title,
		ClientID:   request.ClientID,
		Date:       request.Date,
		Time:       request.Time,
		Location:   request.Location,
		CreatorIDs: request.CreatorIDs,
	}
	if err := s.repo.PutShooting(ctx.Request.Context(), shooting); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save shooting"}
	}
	return shooting, nil
}

// PUT /api/shootings/:id
func (s *ShootingController) updateShooting(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	request, apiErr := bindShooting(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	id := ctx.Param("id")
	if apiErr := s.mustExist(ctx, id); apiErr != nil {
		return nil, apiErr
	}

	shooting := model.Shooting{
		ID:         id,
		Title:      request.Title,
		ClientID:   request.ClientID,
		Date:       request.Date,
		Time:       request.Time,
		Location:   request.Location,
		CreatorIDs: request.CreatorIDs,
	}
	if err := s.repo.PutShooting(ctx.Request.Context(), shooting); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update shooting"}
	}
	return shooting, nil
}

// DELETE /api/shootings/:id
func (s *ShootingController) deleteShooting(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if err := s.repo.RemoveShooting(ctx.Request.Context(), ctx.Param("id")); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete shooting"}
	}
	return gin.H{"deleted": ctx.Param("id")}, nil
}

func (s *ShootingController) mustExist(ctx *gin.Context, id string) *api.APIError {
	shootings, err := s.repo.Shootings(ctx.Request.Context())
	if err != nil {
		return &api.APIError{Code: http.StatusInternalServerError, Message: "could not load shootings"}
	}
	for _, existing := range shootings {
		if existing.ID == id {
			return nil
		}
	}
	return &api.APIError{Code: http.StatusNotFound, Message: "not found"}
}

func bindShooting(ctx *gin.Context) (packets.ShootingRequest, *api.APIError) {
	var request packets.ShootingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return request, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := time.Parse(model.DateLayout, request.Date); err != nil {
		return request, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date"}
	}
	return request, nil
}
