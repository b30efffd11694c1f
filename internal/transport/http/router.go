package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"sigdesk/internal/dealplan"
	"sigdesk/internal/enrich"
	"sigdesk/internal/feed"
	"sigdesk/internal/store/promolog"
	"sigdesk/internal/types"

	"github.com/gin-gonic/gin"
)

// Router exposes the feed, enrichment and deal plan APIs.
type Router struct {
	Feed     *feed.Aggregator
	Plans    *dealplan.Service
	Enricher *enrich.Enricher
	Audit    *promolog.Store
}

// NewRouter wires the API router. Audit may be nil when auditing is off.
func NewRouter(agg *feed.Aggregator, plans *dealplan.Service, enricher *enrich.Enricher, audit *promolog.Store) *Router {
	return &Router{Feed: agg, Plans: plans, Enricher: enricher, Audit: audit}
}

// Register mounts the API routes under the given group.
func (r *Router) Register(group *gin.RouterGroup) {
	if group == nil {
		return
	}
	group.GET("/feed/stories", r.handleUnifiedStories)
	group.GET("/feed/signals", r.handleSignalPlaylist)
	group.GET("/feed/voices/:id", r.handleVoicePlaylist)
	group.GET("/feed/winwires", r.handleWinwirePlaylist)

	group.POST("/signals/enrich", r.handleEnrich)

	group.GET("/dealplans", r.handleListDealPlans)
	group.GET("/dealplans/:focus/:week", r.handleGetDealPlan)
	group.POST("/dealplans/:focus/:week/promote", r.handlePromote)
	group.DELETE("/dealplans/:focus/:week/signals/:signalId", r.handleRemoveSignal)

	if r.Audit != nil {
		group.GET("/promotions/recent", r.handleRecentPromotions)
	}
}

func (r *Router) handleUnifiedStories(c *gin.Context) {
	space := strings.TrimSpace(c.Query("space"))
	c.JSON(http.StatusOK, gin.H{"items": r.Feed.UnifiedStories(space)})
}

func (r *Router) handleSignalPlaylist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": r.Feed.SignalPlaylist()})
}

func (r *Router) handleVoicePlaylist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": r.Feed.VoicePlaylist(c.Param("id"))})
}

func (r *Router) handleWinwirePlaylist(c *gin.Context) {
	space := strings.TrimSpace(c.Query("space"))
	c.JSON(http.StatusOK, gin.H{"items": r.Feed.WinwirePlaylist(space)})
}

type enrichRequest struct {
	FocusID string         `json:"focus_id" binding:"required"`
	Signals []types.Signal `json:"signals"`
}

func (r *Router) handleEnrich(c *gin.Context) {
	var req enrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	enriched := r.Enricher.Enrich(req.Signals, req.FocusID)
	c.JSON(http.StatusOK, gin.H{"signals": enriched})
}

func (r *Router) handleListDealPlans(c *gin.Context) {
	plans, err := r.Plans.ListDealPlans(c.Request.Context(), strings.TrimSpace(c.Query("focus_id")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deal_plans": plans})
}

func (r *Router) handleGetDealPlan(c *gin.Context) {
	plan, err := r.Plans.GetDealPlan(c.Request.Context(), c.Param("focus"), c.Param("week"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if plan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "deal plan not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

type promoteRequest struct {
	Signals []types.Signal `json:"signals"`
}

func (r *Router) handlePromote(c *gin.Context) {
	var req promoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := r.Plans.PromoteSignals(c.Request.Context(), c.Param("focus"), c.Param("week"), req.Signals)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (r *Router) handleRemoveSignal(c *gin.Context) {
	removed, err := r.Plans.RemovePromotedSignal(c.Request.Context(), c.Param("focus"), c.Param("week"), c.Param("signalId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"removed": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

func (r *Router) handleRecentPromotions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := r.Audit.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempts": records})
}
