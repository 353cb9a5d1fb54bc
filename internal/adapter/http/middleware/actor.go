package middleware

import "github.com/gin-gonic/gin"

const actorKey = "actor"

// SetActor stamps every request with a fixed acting identity. Authentication
// is out of scope, so the identity comes from configuration.
func SetActor(actor string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, actor)
		c.Next()
	}
}

// Actor returns the identity set by SetActor, or "" when none was set.
func Actor(c *gin.Context) string {
	return c.GetString(actorKey)
}
