package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
)

// streamSnapshots writes every snapshot as a server-sent "snapshot" event
// until the client goes away or the feed is closed.
func streamSnapshots[T any, R any](c *gin.Context, ch <-chan []T, cancel func(), convert func([]T) []R) {
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	done := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-done:
			return false
		case snapshot, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", convert(snapshot))
			return true
		}
	})
}
