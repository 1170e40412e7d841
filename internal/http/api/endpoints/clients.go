package endpoints

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gisqo-media/tracker/internal/http/api"
	"github.com/gisqo-media/tracker/internal/http/api/packets"
	"github.com/gisqo-media/tracker/internal/model"
	"github.com/gisqo-media/tracker/internal/store"
)

type ClientController struct {
	repo *store.Repository
}

// ClientListModule mounts the read-only client listing available to
// every authenticated user (the log form needs it).
func ClientListModule(repo *store.Repository) api.Module {
	ctl := &ClientController{repo: repo}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/clients", ctl.listActive)
	})
}

// ClientAdminModule mounts client management for admins.
func ClientAdminModule(repo *store.Repository) api.Module {
	ctl := &ClientController{repo: repo}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/clients", ctl.listAll)
		c.POST("/clients", ctl.createClient)
		c.PUT("/clients/:id", ctl.updateClient)
		c.PUT("/clients/:id/archive", ctl.archiveClient)
		c.PUT("/clients/:id/restore", ctl.restoreClient)
	})
}

// GET /api/clients
func (cc *ClientController) listActive(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	clients, apiErr := cc.sortedClients(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	out := make([]model.Client, 0, len(clients))
	for _, c := range clients {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

// GET /api/admin/clients
func (cc *ClientController) listAll(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	clients, apiErr := cc.sortedClients(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	return clients, nil
}

func (cc *ClientController) sortedClients(ctx *gin.Context) ([]model.Client, *api.APIError) {
	clients, err := cc.repo.Clients(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list clients"}
	}
	sort.SliceStable(clients, func(i, j int) bool {
		if clients[i].Active != clients[j].Active {
			return clients[i].Active
		}
		return clients[i].Name < clients[j].Name
	})
	return clients, nil
}

// POST /api/admin/clients
func (cc *ClientController) createClient(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ClientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "client name is required"}
	}

	client := model.Client{ID: store.NewID(), Name: name, Active: true}
	if err := cc.repo.PutClient(ctx.Request.Context(), client); err != nil {
		log.Error().Err(err).Msg("[clients] create failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create client"}
	}
	return client, nil
}

// PUT /api/admin/clients/:id
func (cc *ClientController) updateClient(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ClientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	client, apiErr := cc.findClient(ctx, ctx.Param("id"))
	if apiErr != nil {
		return nil, apiErr
	}

	client.Name = strings.TrimSpace(request.Name)
	if err := cc.repo.PutClient(ctx.Request.Context(), client); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update client"}
	}
	return client, nil
}

// PUT /api/admin/clients/:id/archive
func (cc *ClientController) archiveClient(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return cc.setActive(ctx, ctx.Param("id"), false)
}

// PUT /api/admin/clients/:id/restore
func (cc *ClientController) restoreClient(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return cc.setActive(ctx, ctx.Param("id"), true)
}

func (cc *ClientController) setActive(ctx *gin.Context, id string, active bool) (any, *api.APIError) {
	client, apiErr := cc.findClient(ctx, id)
	if apiErr != nil {
		return nil, apiErr
	}
	client.Active = active
	if err := cc.repo.PutClient(ctx.Request.Context(), client); err != nil {
		log.Error().Err(err).Str("id", id).Bool("active", active).Msg("[clients] status change failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update client"}
	}
	return client, nil
}

func (cc *ClientController) findClient(ctx *gin.Context, id string) (model.Client, *api.APIError) {
	clients, err := cc.repo.Clients(ctx.Request.Context())
	if err != nil {
		return model.Client{}, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load clients"}
	}
	if c, ok := model.FindClient(clients, id); ok {
		return c, nil
	}
	return model.Client{}, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
}
