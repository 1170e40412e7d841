package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gisqo-media/tracker/internal/http/api"
	"github.com/gisqo-media/tracker/internal/http/api/packets"
	"github.com/gisqo-media/tracker/internal/model"
	"github.com/gisqo-media/tracker/internal/store"
)

type EntryController struct {
	repo *store.Repository
}

// EntryModule mounts the content-log endpoints.
func EntryModule(repo *store.Repository) api.Module {
	ctl := &EntryController{repo: repo}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/entries", ctl.listEntries)
		c.POST("/entries", ctl.createEntry)
		c.PUT("/entries/:id", ctl.updateEntry)
		c.DELETE("/entries/:id", ctl.deleteEntry)
	})
}

// GET /api/entries
func (e *EntryController) listEntries(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	entries, err := e.repo.Entries(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list entries"}
	}
	creators, err := e.repo.Creators(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list creators"}
	}
	clients, err := e.repo.Clients(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list clients"}
	}

	filter, apiErr := parseEntryFilter(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	out := make([]packets.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		if !filter.matches(entry) {
			continue
		}
		out = append(out, packets.NewEntryResponse(entry, creators, clients))
	}
	return out, nil
}

// entryFilter narrows the listing; zero values mean no constraint. The
// month is 0-based, matching the dashboard.
type entryFilter struct {
	creatorID string
	month     time.Month
	year      int
	hasMonth  bool
	hasYear   bool
}

func parseEntryFilter(ctx *gin.Context) (entryFilter, *api.APIError) {
	f := entryFilter{creatorID: ctx.Query("creator_id")}
	if raw := ctx.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 0 || m > 11 {
			return f, &api.APIError{Code: http.StatusBadRequest, Message: "invalid month"}
		}
		f.month, f.hasMonth = time.Month(m+1), true
	}
	if raw := ctx.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return f, &api.APIError{Code: http.StatusBadRequest, Message: "invalid year"}
		}
		f.year, f.hasYear = y, true
	}
	return f, nil
}

func (f entryFilter) matches(e model.ContentEntry) bool {
	if f.creatorID != "" && e.CreatorID != f.creatorID {
		return false
	}
	if f.hasMonth || f.hasYear {
		d := e.Day()
		if d.IsZero() {
			return false
		}
		if f.hasMonth && d.Month() != f.month {
			return false
		}
		if f.hasYear && d.Year() != f.year {
			return false
		}
	}
	return true
}

// validateEntry applies the submission rules shared by create and
// update; it returns the resolved creator id.
func (e *EntryController) validateEntry(ctx *gin.Context, user *model.User, request packets.EntryRequest) (string, *api.APIError) {
	if request.ClientID == "" {
		return "", &api.APIError{Code: http.StatusBadRequest, Message: "please assign this content to a client"}
	}

	creatorID := request.CreatorID
	if user.Role == model.RoleAdmin {
		if creatorID == "" {
			return "", &api.APIError{Code: http.StatusBadRequest, Message: "please select a content creator first"}
		}
	} else {
		// creators only log for themselves
		creatorID = user.ID
	}

	day, err := time.Parse(model.DateLayout, request.Date)
	if err != nil {
		return "", &api.APIError{Code: http.StatusBadRequest, Message: "invalid date"}
	}

	settings, err := e.repo.Settings(ctx.Request.Context())
	if err != nil {
		return "", &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}
	weekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
	if weekend && !settings.AllowWeekends && user.Role == model.RoleCreator {
		return "", &api.APIError{Code: http.StatusBadRequest, Message: "weekend submissions are disabled"}
	}

	return creatorID, nil
}

// POST /api/entries
func (e *EntryController) createEntry(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.EntryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	creatorID, apiErr := e.validateEntry(ctx, user, request)
	if apiErr != nil {
		return nil, apiErr
	}

	entry := model.ContentEntry{
		ID:        store.NewID(),
		CreatorID: creatorID,
		ClientID:  request.ClientID,
		Title:     request.Title,
		Type:      model.ContentType(request.Type),
		Link:      request.Link,
		Date:      request.Date,
	}
	if err := e.repo.PutEntry(ctx.Request.Context(), entry); err != nil {
		log.Error().Err(err).Msg("[entries] create failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save entry"}
	}
	return entry, nil
}

// PUT /api/entries/:id
func (e *EntryController) updateEntry(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id := ctx.Param("id")

	existing, apiErr := e.ownedEntry(ctx, user, id)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.EntryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	creatorID, apiErr := e.validateEntry(ctx, user, request)
	if apiErr != nil {
		return nil, apiErr
	}

	// full-object replace; identity is immutable
	updated := model.ContentEntry{
		ID:        existing.ID,
		CreatorID: creatorID,
		ClientID:  request.ClientID,
		Title:     request.Title,
		Type:      model.ContentType(request.Type),
		Link:      request.Link,
		Date:      request.Date,
	}
	if err := e.repo.PutEntry(ctx.Request.Context(), updated); err != nil {
		log.Error().Err(err).Str("id", id).Msg("[entries] update failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update entry"}
	}
	return updated, nil
}

// DELETE /api/entries/:id
func (e *EntryController) deleteEntry(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id := ctx.Param("id")

	if _, apiErr := e.ownedEntry(ctx, user, id); apiErr != nil {
		return nil, apiErr
	}

	if err := e.repo.RemoveEntry(ctx.Request.Context(), id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("[entries] delete failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete entry"}
	}
	return gin.H{"deleted": id}, nil
}

func (e *EntryController) ownedEntry(ctx *gin.Context, user *model.User, id string) (*model.ContentEntry, *api.APIError) {
	entries, err := e.repo.Entries(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load entries"}
	}
	for _, entry := range entries {
		if entry.ID != id {
			continue
		}
		if user.Role != model.RoleAdmin && entry.CreatorID != user.ID {
			log.Warn().Str("owner", entry.CreatorID).Str("user", user.ID).Msg("[entries] forbidden access")
			return nil, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
		}
		return &entry, nil
	}
	return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
}
