package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/java-vacancy-bot/internal/filter"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/models"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/render"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/session"
)

const sessionCookie = "session_id"

type ViewStore interface {
	Get(id string) (string, *session.View)
}

type Handler struct {
	store ViewStore
	seed  []models.Job
}

func NewHandler(store *session.Store, seed []models.Job) *Handler {
	return &Handler{store: store, seed: seed}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Health)

	r.GET("/", h.Index)
	r.POST("/search", h.Search)
	r.POST("/filters/salary", h.SetSalary)
	r.POST("/filters/experience", h.SetExperience)
	r.POST("/location", h.EnableLocation)
	r.POST("/notifications", h.ToggleNotifications)

	api := r.Group("/api")
	api.GET("/jobs", h.ListJobs)
	api.GET("/view", h.GetView)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// view resolves the caller's session, issuing a cookie for new sessions.
func (h *Handler) view(c *gin.Context) *session.View {
	id, _ := c.Cookie(sessionCookie)
	newID, v := h.store.Get(id)
	if newID != id {
		c.SetCookie(sessionCookie, newID, 0, "/", "", false, true)
	}
	return v
}

func (h *Handler) Index(c *gin.Context) {
	snap := h.view(c).Snapshot()
	var body bytes.Buffer
	if err := render.Render(&body, render.NewPage(snap.Criteria, snap.Jobs)); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body.Bytes())
}

func (h *Handler) Search(c *gin.Context) {
	h.view(c).Search(c.PostForm("q"))
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) SetSalary(c *gin.Context) {
	thousands, err := parseMinSalary(c.PostForm("min_salary"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.view(c).SetMinSalary(thousands)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) SetExperience(c *gin.Context) {
	band, err := filter.ParseExperience(c.PostForm("experience"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.view(c).SetExperience(band)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) EnableLocation(c *gin.Context) {
	h.view(c).EnableLocation()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) ToggleNotifications(c *gin.Context) {
	h.view(c).ToggleNotifications()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, h.view(c).Snapshot())
}

// ListJobs filters the catalog without touching any session.
func (h *Handler) ListJobs(c *gin.Context) {
	thousands, err := parseMinSalary(c.Query("min_salary"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	band, err := filter.ParseExperience(c.Query("experience"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jobs := filter.Apply(h.seed, filter.Criteria{
		Query:              c.Query("q"),
		MinSalaryThousands: thousands,
		Experience:         band,
	})

	switch sort := c.Query("sort"); sort {
	case "":
	case "distance":
		jobs = filter.SortByDistance(jobs)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported sort %q", sort)})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func parseMinSalary(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("min_salary must be an integer number of thousands, got %q", raw)
	}
	return filter.ClampSalary(v), nil
}
