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

type ReportController struct {
	repo *store.Repository
	// now is swappable for tests
	now func() time.Time
}

// ReportModule mounts the reporting and content-bank endpoints.
func ReportModule(repo *store.Repository) api.Module {
	ctl := &ReportController{repo: repo, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/reports/team", ctl.teamReport)
		c.GET("/reports/calendar", ctl.calendar)
		c.GET("/reports/clients", ctl.clientHealth)
		c.GET("/reports/bank", ctl.contentBank)
	})
}

func parsePeriod(raw string) (report.Period, bool) {
	switch report.Period(raw) {
	case report.PeriodDaily, report.PeriodWeekly, report.PeriodMonthly:
		return report.Period(raw), true
	case "":
		return report.PeriodMonthly, true
	}
	return "", false
}

// monthYear reads optional month (0-based, matching the dashboard) and
// year query params, defaulting to now.
func monthYear(ctx *gin.Context, now time.Time) (time.Month, int, bool) {
	month, year := now.Month(), now.Year()
	if raw := ctx.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 0 || m > 11 {
			return 0, 0, false
		}
		month = time.Month(m + 1)
	}
	if raw := ctx.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		year = y
	}
	return month, year, true
}

// GET /api/reports/team
func (r *ReportController) teamReport(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	period, ok := parsePeriod(ctx.Query("period"))
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid period"}
	}
	now := r.now()
	month, year, ok := monthYear(ctx, now)
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid month or year"}
	}

	entries, err := r.repo.Entries(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load entries"}
	}
	creators, err := r.repo.Creators(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load creators"}
	}
	settings, err := r.repo.Settings(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}

	stats := report.BuildTeamStats(report.StatsInput{
		Entries:   entries,
		Creators:  creators,
		Settings:  settings,
		Period:    period,
		Now:       now,
		Month:     month,
		Year:      year,
		CreatorID: ctx.Query("creator_id"),
	})

	return packets.TeamReportResponse{Period: string(period), Stats: stats}, nil
}

// GET /api/reports/calendar
func (r *ReportController) calendar(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	now := r.now()
	month, year, ok := monthYear(ctx, now)
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid month or year"}
	}

	settings, err := r.repo.Settings(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}

	return report.Calendar(year, month, settings.AllowWeekends), nil
}

// GET /api/reports/clients
func (r *ReportController) clientHealth(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	now := r.now()
	month, year, ok := monthYear(ctx, now)
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid month or year"}
	}

	entries, err := r.repo.Entries(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load entries"}
	}
	clients, err := r.repo.Clients(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load clients"}
	}
	settings, err := r.repo.Settings(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}

	return report.BuildClientHealth(entries, clients, settings, month, year), nil
}

// GET /api/reports/bank
func (r *ReportController) contentBank(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	page := 1
	if raw := ctx.Query("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid page"}
		}
		page = p
	}

	entries, err := r.repo.Entries(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load entries"}
	}
	creators, err := r.repo.Creators(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load creators"}
	}
	clients, err := r.repo.Clients(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load clients"}
	}

	bank := report.FilterBank(entries, report.BankQuery{
		Search:    ctx.Query("search"),
		CreatorID: ctx.Query("creator_id"),
		ClientID:  ctx.Query("client_id"),
		Page:      page,
	})

	out := packets.BankResponse{
		Entries:    make([]packets.EntryResponse, 0, len(bank.Entries)),
		Page:       bank.Page,
		TotalPages: bank.TotalPages,
		Total:      bank.Total,
	}
	for _, e := range bank.Entries {
		out.Entries = append(out.Entries, packets.NewEntryResponse(e, creators, clients))
	}
	return out, nil
}
