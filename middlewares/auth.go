package middlewares

import (
	"strings"

	"github.com/antonyth18/enigma-webgame/utils"
	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware rejects requests without a valid bearer token and
// exposes the session claim (user, team, portal) to handlers.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			utils.Error(c, utils.CodeUnauthorized, "Missing Authorization header")
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.Error(c, utils.CodeUnauthorized, "Malformed Authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(c, utils.CodeUnauthorized, "Invalid token")
			c.Abort()
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("team_id", claims.TeamID)
		c.Set("portal", claims.Portal)
		c.Next()
	}
}
