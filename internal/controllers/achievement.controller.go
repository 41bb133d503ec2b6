package controllers

import (
	"net/http"
	"time"

	"fittrack/internal/middleware"
	"fittrack/internal/repository"
	"fittrack/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type AchievementController struct {
	achievementRepo     repository.AchievementRepository
	userAchievementRepo repository.UserAchievementRepository
	hub                 *services.RealtimeHub
	notifier            AchievementNotifier
}

func NewAchievementController(
	achievementRepo repository.AchievementRepository,
	userAchievementRepo repository.UserAchievementRepository,
	hub *services.RealtimeHub,
	notifier AchievementNotifier,
) *AchievementController {
	return &AchievementController{
		achievementRepo:     achievementRepo,
		userAchievementRepo: userAchievementRepo,
		hub:                 hub,
		notifier:            notifier,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ListAchievements godoc
// @Summary List the achievement catalog with unlock state
// @Description Retrieve all achievements and the set already unlocked by the user; also schedules an evaluation pass so badges earned offline are caught on load
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Achievements retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve achievements"
// @Router /achievements [get]
func (ac *AchievementController) ListAchievements(c *gin.Context) {
	userID := middleware.UserID(c)

	catalog, err := ac.achievementRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve achievements",
			"error":   err.Error(),
		})
		return
	}

	unlocks, err := ac.userAchievementRepo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve achievements",
			"error":   err.Error(),
		})
		return
	}

	unlockedIDs := make([]uint, 0, len(unlocks))
	for _, u := range unlocks {
		unlockedIDs = append(unlockedIDs, u.AchievementID)
	}

	// Initial-load evaluation: catches criteria met while no writes were
	// happening (e.g. a threshold reached before this feature shipped).
	if ac.notifier != nil {
		ac.notifier.Enqueue(userID)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Achievements retrieved successfully",
		"data": gin.H{
			"achievements": catalog,
			"unlocked_ids": unlockedIDs,
			"unlocked":     len(unlockedIDs),
			"total":        len(catalog),
		},
	})
}

// StreamUnlocks upgrades to a websocket and pushes achievement-unlock
// notifications for the authenticated user until the client disconnects.
func (ac *AchievementController) StreamUnlocks(c *gin.Context) {
	userID := middleware.UserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	client := &services.WSClient{UserID: userID, Conn: conn}
	ac.hub.Register(client)

	// Keep intermediaries from idling the connection out.
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				ac.hub.Unregister(client)
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			ac.hub.Unregister(client)
			return
		}
	}
}
