package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gisqo-media/tracker/internal/http/api"
	"github.com/gisqo-media/tracker/internal/http/api/packets"
	"github.com/gisqo-media/tracker/internal/model"
	"github.com/gisqo-media/tracker/internal/store"
)

type NoticeController struct {
	repo *store.Repository
}

// NoticeReadModule exposes the active broadcast to every signed-in
// creator.
func NoticeReadModule(repo *store.Repository) api.Module {
	ctl := &NoticeController{repo: repo}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/notices/active", ctl.activeNotice)
	})
}

// NoticeAdminModule mounts broadcast management for admins.
func NoticeAdminModule(repo *store.Repository) api.Module {
	ctl := &NoticeController{repo: repo}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/notices", ctl.listNotices)
		c.POST("/notices", ctl.publishNotice)
		c.PUT("/notices/:id", ctl.updateNotice)
		c.PUT("/notices/:id/toggle", ctl.toggleNotice)
		c.DELETE("/notices/:id", ctl.deleteNotice)
	})
}

// GET /api/notices/active
func (n *NoticeController) activeNotice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	notices, err := n.repo.Notices(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load notices"}
	}
	if active, ok := model.ActiveNotice(notices); ok {
		return active, nil
	}
	return gin.H{}, nil
}

// GET /api/admin/notices
func (n *NoticeController) listNotices(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	notices, err := n.repo.Notices(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load notices"}
	}
	return notices, nil
}

// POST /api/admin/notices
//
// Publishing activates the new notice immediately, so it is rejected
// while another broadcast is live. The check runs against the loaded
// snapshot before the write; with no transactional backing this is a
// known check-then-write race under concurrent admins.
func (n *NoticeController) publishNotice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	notices, err := n.repo.Notices(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load notices"}
	}
	if _, active := model.ActiveNotice(notices); active {
		return nil, &api.APIError{
			Code:    http.StatusConflict,
			Message: "please deactivate or delete the existing active notice before publishing a new one",
		}
	}

	title := request.Title
	if title == "" {
		title = "Important Update"
	}
	noticeType := model.NoticeType(request.Type)
	if noticeType == "" {
		noticeType = model.NoticeWarning
	}

	notice := model.Notice{
		ID:        store.NewID(),
		Title:     title,
		Message:   request.Message,
		Type:      noticeType,
		Active:    true,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := n.repo.PutNotice(ctx.Request.Context(), notice); err != nil {
		log.Error().Err(err).Msg("[notices] publish failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not publish notice"}
	}
	return notice, nil
}

// PUT /api/admin/notices/:id
func (n *NoticeController) updateNotice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateNoticeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	notice, apiErr := n.findNotice(ctx, ctx.Param("id"))
	if apiErr != nil {
		return nil, apiErr
	}

	if request.Title != nil {
		notice.Title = *request.Title
	}
	if request.Message != nil {
		notice.Message = *request.Message
	}
	if request.Type != nil {
		notice.Type = model.NoticeType(*request.Type)
	}

	if err := n.repo.PutNotice(ctx.Request.Context(), notice); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update notice"}
	}
	return notice, nil
}

// PUT /api/admin/notices/:id/toggle
func (n *NoticeController) toggleNotice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	notice, apiErr := n.findNotice(ctx, ctx.Param("id"))
	if apiErr != nil {
		return nil, apiErr
	}

	if !notice.Active {
		notices, err := n.repo.Notices(ctx.Request.Context())
		if err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load notices"}
		}
		if _, active := model.ActiveNotice(notices); active {
			return nil, &api.APIError{Code: http.StatusConflict, Message: "another notice is already active"}
		}
	}

	notice.Active = !notice.Active
	if err := n.repo.PutNotice(ctx.Request.Context(), notice); err != nil {
		log.Error().Err(err).Str("id", notice.ID).Msg("[notices] toggle failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update notice"}
	}
	return notice, nil
}

// DELETE /api/admin/notices/:id
func (n *NoticeController) deleteNotice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if _, apiErr := n.findNotice(ctx, ctx.Param("id")); apiErr != nil {
		return nil, apiErr
	}
	if err := n.repo.RemoveNotice(ctx.Request.Context(), ctx.Param("id")); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete notice"}
	}
	return gin.H{"deleted": ctx.Param("id")}, nil
}

func (n *NoticeController) findNotice(ctx *gin.Context, id string) (model.Notice, *api.APIError) {
	notices, err := n.repo.Notices(ctx.Request.Context())
	if err != nil {
		return model.Notice{}, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load notices"}
	}
	for _, notice := range notices {
		if notice.ID == id {
			return notice, nil
		}
	}
	return model.Notice{}, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
}
