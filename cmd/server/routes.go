package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gisqo-media/tracker/internal/events"
	"github.com/gisqo-media/tracker/internal/http/api"
	"github.com/gisqo-media/tracker/internal/http/api/endpoints"
	"github.com/gisqo-media/tracker/internal/storage"
	"github.com/gisqo-media/tracker/internal/store"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, repo *store.Repository, assetStorage storage.Storage, bus *events.Bus) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
		Auth:   false,
	},
		endpoints.AuthPublicModule(env.SecretKey, repo),
		endpoints.BrandingModule(repo),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api",
		Auth:      true,
		SecretKey: env.SecretKey,
		Users:     repo,
	},
		endpoints.AuthSessionModule(env.SecretKey, repo),
		endpoints.EntryModule(repo),
		endpoints.ClientListModule(repo),
		endpoints.NoticeReadModule(repo),
		endpoints.HolidayReadModule(repo),
		endpoints.ReportModule(repo),
		endpoints.ShootingModule(repo),
		endpoints.EventsModule(bus),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		AdminOnly: true,
		SecretKey: env.SecretKey,
		Users:     repo,
	},
		endpoints.PeopleModule(repo),
		endpoints.ClientAdminModule(repo),
		endpoints.NoticeAdminModule(repo),
		endpoints.HolidayAdminModule(repo),
		endpoints.SettingsModule(repo, assetStorage),
	)

	// uploaded branding assets when Spaces is off
	if !env.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
