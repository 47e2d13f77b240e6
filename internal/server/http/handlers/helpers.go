package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/banksajt/internal/domain/model"
	"github.com/polkiloo/banksajt/internal/server/http/middleware"
)

const msgInvalidBody = "Invalid request body"

// CurrentSession extracts the resolved session from context.
func CurrentSession(c *gin.Context) *model.Session {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := val.(*model.Session)
	return sess
}

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	if sess := CurrentSession(c); sess != nil {
		return sess.UserID
	}
	return 0
}
