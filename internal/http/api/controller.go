package api

import "github.com/gin-gonic/gin"

// Controller wraps a gin group so endpoint modules register handlers in
// the (handler, user) form without repeating the resolve boilerplate.
type Controller struct {
	Group *gin.RouterGroup
}

func (c *Controller) GET(path string, h HandlerFuncWithAuth) {
	c.Group.GET(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) POST(path string, h HandlerFuncWithAuth) {
	c.Group.POST(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) PUT(path string, h HandlerFuncWithAuth) {
	c.Group.PUT(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) DELETE(path string, h HandlerFuncWithAuth) {
	c.Group.DELETE(path, ResolveEndpointWithAuth(h))
}

// PUBLIC_GET and PUBLIC_POST register handlers that do not expect an
// authenticated user in the context.
func (c *Controller) PUBLIC_GET(path string, h HandlerFunc) {
	c.Group.GET(path, ResolveEndpoint(h))
}

func (c *Controller) PUBLIC_POST(path string, h HandlerFunc) {
	c.Group.POST(path, ResolveEndpoint(h))
}

// RAW_GET registers a plain gin handler for endpoints that manage the
// response themselves (the websocket upgrade).
func (c *Controller) RAW_GET(path string, h gin.HandlerFunc) {
	c.Group.GET(path, h)
}
