package utils

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionAdminKey = "admin_id"

// SetAdminSession stores the logged-in admin ID in the cookie session
func SetAdminSession(c *gin.Context, adminID uint) error {
	session := sessions.Default(c)
	session.Set(sessionAdminKey, adminID)
	if err := session.Save(); err != nil {
		return fmt.Errorf("failed to save admin session: %v", err)
	}
	return nil
}

// ClearAdminSession removes the admin ID from the cookie session
func ClearAdminSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionAdminKey)
	return session.Save()
}

// GetAdminSession returns the admin ID stored in the session, if any
func GetAdminSession(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	val := session.Get(sessionAdminKey)
	if val == nil {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}
