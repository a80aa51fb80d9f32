package handler

import (
	"errors"
	"net/http"
	"strconv"

	"focal/internal/middleware"
	"focal/internal/models"
	"focal/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PhotographerHandler struct {
	repo        *repository.PhotographerRepository
	mediaRepo   *repository.MediaRepository
	earningRepo *repository.EarningRepository
}

func NewPhotographerHandler(repo *repository.PhotographerRepository, mediaRepo *repository.MediaRepository, earningRepo *repository.EarningRepository) *PhotographerHandler {
	return &PhotographerHandler{repo: repo, mediaRepo: mediaRepo, earningRepo: earningRepo}
}

// Search is the public directory listing.
func (h *PhotographerHandler) Search(c *gin.Context) {
	limit, offset := pagination(c)
	minRating, _ := strconv.ParseFloat(c.Query("min_rating"), 64)
	list, err := h.repo.Search(c.Query("city"), minRating, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photographers": list})
}

func (h *PhotographerHandler) Get(c *gin.Context) {
	p, err := h.repo.GetByID(idParam(c, "id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "photographer not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PhotographerHandler) Portfolio(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := h.mediaRepo.ListPortfolio(idParam(c, "id"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"media": list})
}

type UpsertProfileRequest struct {
	BusinessName    string  `json:"business_name" binding:"max=255"`
	Bio             string  `json:"bio" binding:"max=5000"`
	YearsExperience int     `json:"years_experience" binding:"min=0"`
	HourlyRate      float64 `json:"hourly_rate" binding:"min=0"`
	City            string  `json:"city" binding:"required,max=100"`
	Region          string  `json:"region" binding:"max=100"`
	PortfolioURL    string  `json:"portfolio_url" binding:"max=512"`
	InstagramHandle string  `json:"instagram_handle" binding:"max=100"`
}

// UpsertMine creates or updates the caller's own profile. Derived fields
// (rating, review and booking counts) are never writable here.
func (h *PhotographerHandler) UpsertMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.repo.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
			return
		}
		p = &models.Photographer{UserID: userID}
	}
	p.BusinessName = req.BusinessName
	p.Bio = req.Bio
	p.YearsExperience = req.YearsExperience
	p.HourlyRate = req.HourlyRate
	p.City = req.City
	if req.Region != "" {
		p.Region = req.Region
	}
	p.PortfolioURL = req.PortfolioURL
	p.InstagramHandle = req.InstagramHandle
	if p.ID == 0 {
		err = h.repo.Create(p)
	} else {
		err = h.repo.Update(p)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PhotographerHandler) GetMine(c *gin.Context) {
	p, err := h.repo.GetByUserID(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no photographer profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Earnings returns the caller's monthly earnings summary for a year.
func (h *PhotographerHandler) Earnings(c *gin.Context) {
	p, err := h.repo.GetByUserID(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no photographer profile"})
		return
	}
	year, _ := strconv.Atoi(c.Query("year"))
	if year == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year query param required"})
		return
	}
	summary, err := h.earningRepo.Summary(p.ID, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "summary failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
