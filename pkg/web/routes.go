package web

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/errors"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/cases/:id", caseHandler)
		api.GET("/cases", casesHandler)
	}
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	db := database.Get()
	client := discord.Get()

	dbStatus, dbOnline := db.GetStatus()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Warden is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "The bot is not available right now.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"avatar":   user.Avatar,
		"guild":    client.GuildID(),
		"uptime":   client.Uptime().String(),
		"isReady":  client.IsReady(),
	})
}

// caseHandler returns a single moderation case by id
func caseHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid case id"})
		return
	}

	found, err := database.Modlogs().CaseByID(c.Request.Context(), id)
	if err != nil {
		if stderrors.Is(err, errors.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store unavailable"})
		return
	}

	c.JSON(http.StatusOK, found)
}

// casesHandler returns all cases against a user
func casesHandler(c *gin.Context) {
	userID := c.Query("user")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user query parameter"})
		return
	}

	found, err := database.Modlogs().SearchCases(c.Request.Context(), map[string]interface{}{"user_id": userID})
	if err != nil {
		if stderrors.Is(err, errors.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No cases for that user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userID, "count": len(found), "cases": found})
}
