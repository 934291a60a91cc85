package routes

import (
	"net/http"
	"time"

	"medibook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the chat workflow endpoints.
func RegisterChatRoutes(r *gin.Engine, chat *handlers.ChatHandler) {
	api := r.Group("/api")
	{
		api.POST("/session", chat.CreateSession)
		api.POST("/chat", chat.Chat)
		api.GET("/session/:sessionID", chat.GetSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Doctor Appointment Booking Agent"})
	})
}

// CORSMiddleware returns the permissive CORS policy used by the chat frontend.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
