package endpoints

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gisqo-media/tracker/internal/http/api"
	"github.com/gisqo-media/tracker/internal/http/api/packets"
	"github.com/gisqo-media/tracker/internal/http/middleware"
	"github.com/gisqo-media/tracker/internal/model"
	"github.com/gisqo-media/tracker/internal/store"
)

type PeopleController struct {
	repo *store.Repository
}

// PeopleModule mounts the admin people-management endpoints.
func PeopleModule(repo *store.Repository) api.Module {
	ctl := &PeopleController{repo: repo}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/people", ctl.listPeople)
		c.POST("/people", ctl.createPerson)
		c.PUT("/people/:id", ctl.updatePerson)
		c.PUT("/people/:id/archive", ctl.archivePerson)
		c.PUT("/people/:id/restore", ctl.restorePerson)
	})
}

// GET /api/admin/people
func (p *PeopleController) listPeople(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	users, err := p.repo.Creators(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list people"}
	}

	// active accounts first, then by name
	sort.SliceStable(users, func(i, j int) bool {
		if users[i].Active != users[j].Active {
			return users[i].Active
		}
		return users[i].Name < users[j].Name
	})

	out := make([]packets.ProfileResponse, 0, len(users))
	for _, u := range users {
		out = append(out, packets.NewProfileResponse(u))
	}
	return out, nil
}

// POST /api/admin/people
func (p *PeopleController) createPerson(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreatePersonRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if existing, _ := p.repo.CreatorByEmail(ctx.Request.Context(), request.Email); existing != nil {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "email already registered"}
	}

	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not hash password"}
	}

	person := model.User{
		ID:             store.NewID(),
		Name:           request.Name,
		Email:          request.Email,
		HashedPassword: hashed,
		Role:           model.Role(request.Role),
		Active:         true,
	}
	if err := p.repo.PutCreator(ctx.Request.Context(), person); err != nil {
		log.Error().Err(err).Msg("[people] create failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create person"}
	}
	return packets.NewProfileResponse(person), nil
}

// PUT /api/admin/people/:id
func (p *PeopleController) updatePerson(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdatePersonRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	person, apiErr := p.findPerson(ctx, ctx.Param("id"))
	if apiErr != nil {
		return nil, apiErr
	}

	if request.Email != person.Email {
		if other, _ := p.repo.CreatorByEmail(ctx.Request.Context(), request.Email); other != nil {
			return nil, &api.APIError{Code: http.StatusConflict, Message: "email already in use"}
		}
	}

	person.Name = request.Name
	person.Email = request.Email
	person.Role = model.Role(request.Role)
	if request.Password != nil && *request.Password != "" {
		hashed, err := middleware.HashPassword(*request.Password)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not hash password"}
		}
		person.HashedPassword = hashed
	}

	if err := p.repo.PutCreator(ctx.Request.Context(), *person); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update person"}
	}
	return packets.NewProfileResponse(*person), nil
}

// PUT /api/admin/people/:id/archive
func (p *PeopleController) archivePerson(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return p.setActive(ctx, ctx.Param("id"), false)
}

// PUT /api/admin/people/:id/restore
func (p *PeopleController) restorePerson(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return p.setActive(ctx, ctx.Param("id"), true)
}

func (p *PeopleController) setActive(ctx *gin.Context, id string, active bool) (any, *api.APIError) {
	person, apiErr := p.findPerson(ctx, id)
	if apiErr != nil {
		return nil, apiErr
	}
	person.Active = active
	if err := p.repo.PutCreator(ctx.Request.Context(), *person); err != nil {
		log.Error().Err(err).Str("id", id).Bool("active", active).Msg("[people] status change failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update person"}
	}
	return packets.NewProfileResponse(*person), nil
}

func (p *PeopleController) findPerson(ctx *gin.Context, id string) (*model.User, *api.APIError) {
	person, err := p.repo.CreatorByID(ctx.Request.Context(), id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load person"}
	}
	if person == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	return person, nil
}
