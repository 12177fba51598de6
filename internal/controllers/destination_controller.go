package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sais189/travelex/internal/models"
	"github.com/sais189/travelex/internal/repository"
)

// DestinationResponse is models.Destination with the location rendered as
// a GeoJSON string.
type DestinationResponse struct {
	models.Destination
	Location string `json:"location,omitempty"`
}

func toDestinationResponse(d models.Destination) DestinationResponse {
	location, err := convertWKBToGeoJSON(d.Location)
	if err != nil {
		logrus.WithError(err).WithField("destination_id", d.ID).Warn("Stored location is not valid WKB")
	}
	return DestinationResponse{Destination: d, Location: location}
}

type destinationInput struct {
	Name        string  `json:"name" binding:"required"`
	Country     string  `json:"country" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image" binding:"omitempty,url"`
	Price       string  `json:"price" binding:"required,numeric"`
	Rating      string  `json:"rating" binding:"required,numeric"`
	ReviewCount int     `json:"reviewCount" binding:"gte=0"`
	Distance    *string `json:"distance" binding:"omitempty,numeric"`
	Location    string  `json:"location"` // GeoJSON Point
}

func (in destinationInput) toModel() (models.Destination, error) {
	location, err := parsePointGeoJSON(in.Location)
	if err != nil {
		return models.Destination{}, err
	}
	return models.Destination{
		Name:        in.Name,
		Country:     in.Country,
		Description: in.Description,
		Image:       in.Image,
		Price:       in.Price,
		Rating:      in.Rating,
		ReviewCount: in.ReviewCount,
		Distance:    in.Distance,
		Location:    location,
	}, nil
}

// DestinationController serves the destination listing and its admin
// maintenance endpoints.
type DestinationController struct {
	repo *repository.DestinationRepository
}

func NewDestinationController(repo *repository.DestinationRepository) *DestinationController {
	return &DestinationController{repo: repo}
}

// ListDestinations handles GET /api/destinations.
func (dc *DestinationController) ListDestinations(c *gin.Context) {
	destinations, err := dc.repo.FindAll(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("ListDestinations: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch destinations"})
		return
	}

	responses := make([]DestinationResponse, 0, len(destinations))
	for _, d := range destinations {
		responses = append(responses, toDestinationResponse(d))
	}
	c.JSON(http.StatusOK, responses)
}

// GetDestination handles GET /api/destinations/:id.
func (dc *DestinationController) GetDestination(c *gin.Context) {
	id, ok := destinationID(c)
	if !ok {
		return
	}

	destination, err := dc.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, "GetDestination", err)
		return
	}
	c.JSON(http.StatusOK, toDestinationResponse(*destination))
}

// CreateDestination handles POST /admin/destinations.
func (dc *DestinationController) CreateDestination(c *gin.Context) {
	var input destinationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateDestination: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	destination, err := input.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location: " + err.Error()})
		return
	}

	if err := dc.repo.Create(c.Request.Context(), &destination); err != nil {
		respondRepoError(c, "CreateDestination", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"destination": toDestinationResponse(destination)})
}

// UpdateDestination handles PUT /admin/destinations/:id.
func (dc *DestinationController) UpdateDestination(c *gin.Context) {
	id, ok := destinationID(c)
	if !ok {
		return
	}

	var input destinationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("UpdateDestination: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	destination, err := input.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location: " + err.Error()})
		return
	}
	destination.ID = id

	if err := dc.repo.Update(c.Request.Context(), &destination); err != nil {
		respondRepoError(c, "UpdateDestination", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destination": toDestinationResponse(destination)})
}

// DeleteDestination handles DELETE /admin/destinations/:id.
func (dc *DestinationController) DeleteDestination(c *gin.Context) {
	id, ok := destinationID(c)
	if !ok {
		return
	}

	if err := dc.repo.Delete(c.Request.Context(), id); err != nil {
		respondRepoError(c, "DeleteDestination", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Destination deleted"})
}

func destinationID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid destination ID"})
		return 0, false
	}
	return id, true
}

func respondRepoError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "Destination already exists"})
	default:
		logrus.WithError(err).Error(op + ": database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}
