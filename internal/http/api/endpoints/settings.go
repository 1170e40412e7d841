package endpoints

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gisqo-media/tracker/internal/http/api"
	"github.com/gisqo-media/tracker/internal/http/api/packets"
	"github.com/gisqo-media/tracker/internal/model"
	"github.com/gisqo-media/tracker/internal/storage"
	"github.com/gisqo-media/tracker/internal/store"
)

type SettingsController struct {
	repo    *store.Repository
	storage storage.Storage
}

// BrandingModule exposes the public branding subset the login screen
// renders before authentication.
func BrandingModule(repo *store.Repository) api.Module {
	ctl := &SettingsController{repo: repo}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/branding", ctl.getBranding)
	})
}

// SettingsModule mounts configuration management for admins.
func SettingsModule(repo *store.Repository, assetStorage storage.Storage) api.Module {
	ctl := &SettingsController{repo: repo, storage: assetStorage}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/settings", ctl.getSettings)
		c.PUT("/settings", ctl.updateSettings)
		c.POST("/settings/logo", ctl.uploadLogo)
		c.POST("/settings/favicon", ctl.uploadFavicon)
	})
}

// GET /api/branding
func (s *SettingsController) getBranding(ctx *gin.Context) (any, *api.APIError) {
	settings, err := s.repo.Settings(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}
	return packets.BrandingResponse{
		AppName:      settings.AppName,
		Theme:        settings.Theme,
		Logo:         settings.Logo,
		Favicon:      settings.Favicon,
		PrimaryColor: settings.PrimaryColor,
	}, nil
}

// GET /api/admin/settings
func (s *SettingsController) getSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	settings, err := s.repo.Settings(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}
	return settings, nil
}

// PUT /api/admin/settings
func (s *SettingsController) updateSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if strings.TrimSpace(request.AppName) == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "app name cannot be blank"}
	}

	settings, err := s.repo.Settings(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}

	settings.AppName = strings.TrimSpace(request.AppName)
	settings.DailyGoal = request.DailyGoal
	settings.MonthlyClientGoal = request.MonthlyClientGoal
	settings.AllowWeekends = request.AllowWeekends
	settings.Theme = request.Theme
	settings.PrimaryColor = request.PrimaryColor

	if err := s.repo.SaveSettings(ctx.Request.Context(), settings); err != nil {
		log.Error().Err(err).Msg("[settings] save failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}
	return settings, nil
}

// POST /api/admin/settings/logo
func (s *SettingsController) uploadLogo(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return s.uploadAsset(ctx, "logo")
}

// POST /api/admin/settings/favicon
func (s *SettingsController) uploadFavicon(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return s.uploadAsset(ctx, "favicon")
}

func (s *SettingsController) uploadAsset(ctx *gin.Context, kind string) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "file is required"}
	}

	url, err := s.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("[settings] asset upload failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save file"}
	}

	settings, err := s.repo.Settings(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}
	if kind == "logo" {
		settings.Logo = url
	} else {
		settings.Favicon = url
	}
	if err := s.repo.SaveSettings(ctx.Request.Context(), settings); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}
	return settings, nil
}
