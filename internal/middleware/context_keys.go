package middleware

import "github.com/gin-gonic/gin"

// subjectKey is the key used to store the authenticated caller in the request context.
const subjectKey = contextKey("subject")

// GetSubjectFromContext retrieves the authenticated caller (the token subject)
// from the request context. It returns false when the request was not authenticated.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	subject, ok := c.Request.Context().Value(subjectKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
