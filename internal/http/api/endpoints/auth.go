package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gisqo-media/tracker/internal/http/api"
	"github.com/gisqo-media/tracker/internal/http/api/packets"
	"github.com/gisqo-media/tracker/internal/http/middleware"
	"github.com/gisqo-media/tracker/internal/model"
	"github.com/gisqo-media/tracker/internal/store"
)

// AuthPublicModule mounts the public login endpoint.
func AuthPublicModule(jwtSecret string, repo *store.Repository) api.Module {
	ctl := newAccountManager(jwtSecret, repo)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/login", ctl.login)
	})
}

// AuthSessionModule mounts the profile endpoints (JWT required).
func AuthSessionModule(jwtSecret string, repo *store.Repository) api.Module {
	ctl := newAccountManager(jwtSecret, repo)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.getCurrentProfile)
		c.PUT("/auth/current_profile", ctl.updateCurrentProfile)
	})
}

type AccountManager struct {
	jwtSecret string
	repo      *store.Repository
}

func newAccountManager(secret string, repo *store.Repository) *AccountManager {
	return &AccountManager{jwtSecret: secret, repo: repo}
}

// POST /api/auth/login
func (a *AccountManager) login(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	foundUser, err := a.repo.CreatorByEmail(ctx.Request.Context(), request.Email)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not look up account"}
	}
	if foundUser == nil || !middleware.CheckPassword(foundUser.HashedPassword, request.Password) {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "invalid credentials"}
	}
	if !foundUser.Active {
		log.Warn().Str("email", request.Email).Msg("login attempt on archived account")
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "this account has been deactivated"}
	}

	token, err := middleware.GenerateJWT(foundUser.ID, a.jwtSecret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return packets.LoginResponse{
		Token: token,
		User:  packets.NewProfileResponse(*foundUser),
	}, nil
}

// GET /api/auth/current_profile
func (a *AccountManager) getCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return packets.NewProfileResponse(*user), nil
}

// PUT /api/auth/current_profile
func (a *AccountManager) updateCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateCurrentProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.Email != user.Email {
		if other, _ := a.repo.CreatorByEmail(ctx.Request.Context(), request.Email); other != nil {
			return nil, &api.APIError{Code: http.StatusConflict, Message: "email already in use"}
		}
	}

	updated := *user
	updated.Name = request.Name
	updated.Email = request.Email
	if request.Avatar != nil {
		updated.Avatar = *request.Avatar
	}

	if err := a.repo.PutCreator(ctx.Request.Context(), updated); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update profile"}
	}
	return packets.NewProfileResponse(updated), nil
}
