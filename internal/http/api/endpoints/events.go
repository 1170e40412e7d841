package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/gisqo-media/tracker/internal/events"
	"github.com/gisqo-media/tracker/internal/http/api"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// EventsModule streams store changes to connected dashboards over a
// websocket, standing in for the realtime backend's push
// subscriptions. Clients reload the affected collection on receipt.
func EventsModule(bus *events.Bus) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.RAW_GET("/events", streamEvents(bus))
	})
}

func streamEvents(bus *events.Bus) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn().Err(err).Msg("websocket upgrade failed")
			return
		}
		defer conn.Close()

		changes, cancel := bus.Subscribe()
		defer cancel()

		// drain reads so pings and close frames are processed
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case change := <-changes:
				if err := conn.WriteJSON(change); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}
}
