package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fittrack/internal/cache"
	"fittrack/internal/coach"
	"fittrack/internal/middleware"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	summaryCacheTTL      = time.Hour
	conversationTTL      = 24 * time.Hour
	conversationMaxTurns = 20
)

type CoachController struct {
	client       *coach.Client
	redis        *cache.RedisClient
	profileRepo  repository.ProfileRepository
	mealRepo     repository.MealRepository
	exerciseRepo repository.ExerciseRepository
	sleepRepo    repository.SleepRepository
}

func NewCoachController(
	client *coach.Client,
	redis *cache.RedisClient,
	profileRepo repository.ProfileRepository,
	mealRepo repository.MealRepository,
	exerciseRepo repository.ExerciseRepository,
	sleepRepo repository.SleepRepository,
) *CoachController {
	return &CoachController{
		client:       client,
		redis:        redis,
		profileRepo:  profileRepo,
		mealRepo:     mealRepo,
		exerciseRepo: exerciseRepo,
		sleepRepo:    sleepRepo,
	}
}

// gatewayError maps gateway billing errors to their HTTP statuses; anything
// else is a 500.
func gatewayError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Failed to generate response"
	switch {
	case errors.Is(err, coach.ErrRateLimited):
		status = http.StatusTooManyRequests
		message = "AI coach is busy, please try again shortly"
	case errors.Is(err, coach.ErrPaymentRequired):
		status = http.StatusPaymentRequired
		message = "AI coach quota exhausted"
	}
	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}

func (cc *CoachController) weekRange() (time.Time, time.Time) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -6)
	return start, start.AddDate(0, 0, 7)
}

// GenerateGoalSummary godoc
// @Summary Generate an AI goal summary
// @Description Produce a coaching summary with SMART goals from the last seven days of logs; cached for an hour unless refresh is set
// @Tags coach
// @Produce json
// @Security BearerAuth
// @Param refresh query bool false "Bypass the cached summary"
// @Success 200 {object} map[string]interface{} "Summary generated successfully"
// @Failure 402 {object} map[string]interface{} "AI coach quota exhausted"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 429 {object} map[string]interface{} "AI coach is busy"
// @Router /coach/summary [post]
func (cc *CoachController) GenerateGoalSummary(c *gin.Context) {
	userID := middleware.UserID(c)
	ctx := c.Request.Context()

	if cc.redis != nil && c.Query("refresh") != "true" {
		if summary, found, err := cc.redis.GetSummary(ctx, userID); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Summary generated successfully",
				"data": gin.H{
					"summary": summary,
					"cached":  true,
				},
			})
			return
		}
	}

	profile, err := cc.profileRepo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "Complete your profile before requesting a summary",
		})
		return
	}

	start, until := cc.weekRange()
	meals, err := cc.mealRepo.FindByUserIDAndDateRange(userID, start, until)
	if err != nil {
		gatewayError(c, err)
		return
	}
	exercises, err := cc.exerciseRepo.FindByUserIDAndDateRange(userID, start, until)
	if err != nil {
		gatewayError(c, err)
		return
	}
	sleepLogs, err := cc.sleepRepo.FindByUserIDAndDateRange(userID, start, until)
	if err != nil {
		gatewayError(c, err)
		return
	}

	prompt := coach.BuildGoalSummaryPrompt(profile, meals, exercises, sleepLogs)
	summary, usage, err := cc.client.Complete(ctx, []coach.ChatMessage{{Role: "user", Content: prompt}}, 1500)
	if err != nil {
		gatewayError(c, err)
		return
	}

	if cc.redis != nil {
		// Best effort; a cold cache just means the next request pays again.
		_ = cc.redis.StoreSummary(ctx, userID, summary, summaryCacheTTL)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary generated successfully",
		"data": gin.H{
			"summary": summary,
			"cached":  false,
			"usage":   usage,
		},
	})
}

type chatRequest struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversation_id"`
}

// Chat godoc
// @Summary Chat with the AI coach
// @Description Send a message grounded in today's logs; pass conversation_id to continue a previous exchange
// @Tags coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chat body chatRequest true "Chat message"
// @Success 200 {object} map[string]interface{} "Response generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 402 {object} map[string]interface{} "AI coach quota exhausted"
// @Failure 429 {object} map[string]interface{} "AI coach is busy"
// @Router /coach/chat [post]
func (cc *CoachController) Chat(c *gin.Context) {
	userID := middleware.UserID(c)
	ctx := c.Request.Context()

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	profile, err := cc.profileRepo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "Complete your profile before chatting with the coach",
		})
		return
	}

	today := time.Now()
	meals, err := cc.mealRepo.FindByUserIDAndDate(userID, today)
	if err != nil {
		gatewayError(c, err)
		return
	}
	exercises, err := cc.exerciseRepo.FindByUserIDAndDate(userID, today)
	if err != nil {
		gatewayError(c, err)
		return
	}
	start, until := cc.weekRange()
	sleepLogs, err := cc.sleepRepo.FindByUserIDAndDateRange(userID, start, until)
	if err != nil {
		gatewayError(c, err)
		return
	}

	conversationID := req.ConversationID
	var history []coach.ChatMessage
	if conversationID == "" {
		conversationID = uuid.NewString()
	} else if cc.redis != nil {
		if _, err := cc.redis.GetConversation(ctx, conversationID, &history); err != nil {
			history = nil
		}
	}

	// The system prompt is rebuilt every turn so mid-conversation log writes
	// are reflected immediately.
	messages := make([]coach.ChatMessage, 0, len(history)+2)
	messages = append(messages, coach.ChatMessage{
		Role:    "system",
		Content: coach.BuildChatSystemPrompt(profile, meals, exercises, sleepLogs),
	})
	messages = append(messages, history...)
	messages = append(messages, coach.ChatMessage{Role: "user", Content: req.Message})

	reply, usage, err := cc.client.Complete(ctx, messages, 800)
	if err != nil {
		gatewayError(c, err)
		return
	}

	history = append(history, coach.ChatMessage{Role: "user", Content: req.Message})
	history = append(history, coach.ChatMessage{Role: "assistant", Content: reply})
	if len(history) > conversationMaxTurns*2 {
		history = history[len(history)-conversationMaxTurns*2:]
	}
	if cc.redis != nil {
		_ = cc.redis.StoreConversation(ctx, conversationID, history, conversationTTL)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Response generated successfully",
		"data": gin.H{
			"reply":           reply,
			"conversation_id": conversationID,
			"usage":           usage,
		},
	})
}

type nutritionRequest struct {
	FoodDescription string `json:"food_description" binding:"required"`
}

// AnalyzeNutrition godoc
// @Summary Analyze a food description
// @Description Estimate calories and macros for a free-text food description via the gateway's function tool
// @Tags coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param food body nutritionRequest true "Food description"
// @Success 200 {object} map[string]interface{} "Nutrition analyzed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 402 {object} map[string]interface{} "AI coach quota exhausted"
// @Failure 429 {object} map[string]interface{} "AI coach is busy"
// @Router /coach/nutrition [post]
func (cc *CoachController) AnalyzeNutrition(c *gin.Context) {
	ctx := c.Request.Context()

	var req nutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	args, usage, err := cc.client.CompleteWithTool(ctx, coach.BuildNutritionMessages(req.FoodDescription), coach.NutritionTool())
	if err != nil {
		gatewayError(c, err)
		return
	}

	var info coach.NutritionInfo
	if err := json.Unmarshal(args, &info); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to parse nutrition analysis",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Nutrition analyzed successfully",
		"data": gin.H{
			"nutrition": info,
			"usage":     usage,
		},
	})
}
