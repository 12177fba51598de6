package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/sais189/travelex/internal/models"
	"github.com/sais189/travelex/internal/repository"
)

func destinationRouter(t *testing.T) (*gin.Engine, *repository.DestinationRepository) {
	t.Helper()
	repo := repository.NewDestinationRepository(newTestDB(t))
	dc := NewDestinationController(repo)

	r := gin.New()
	r.GET("/api/destinations", dc.ListDestinations)
	r.GET("/api/destinations/:id", dc.GetDestination)
	r.POST("/admin/destinations", dc.CreateDestination)
	r.PUT("/admin/destinations/:id", dc.UpdateDestination)
	r.DELETE("/admin/destinations/:id", dc.DeleteDestination)
	return r, repo
}

func seedDestination(t *testing.T, repo *repository.DestinationRepository, d models.Destination) models.Destination {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &d))
	return d
}

func TestListDestinations(t *testing.T) {
	r, repo := destinationRouter(t)
	distance := "3.5"
	seedDestination(t, repo, models.Destination{Name: "Paris", Country: "France", Image: "https://img.example.com/paris.jpg", Price: "129.99", Rating: "4.8", ReviewCount: 40, Distance: &distance})
	seedDestination(t, repo, models.Destination{Name: "Rome", Country: "Italy", Price: "89.5", Rating: "4.6", ReviewCount: 12})

	w := performJSON(r, http.MethodGet, "/api/destinations", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, int64(2), gjson.Get(body, "#").Int())
	assert.Equal(t, "Paris", gjson.Get(body, "0.name").String())
	assert.Equal(t, "France", gjson.Get(body, "0.country").String())
	assert.Equal(t, "https://img.example.com/paris.jpg", gjson.Get(body, "0.image").String())
	assert.Equal(t, "129.99", gjson.Get(body, "0.price").String())
	assert.Equal(t, gjson.String, gjson.Get(body, "0.price").Type)
	assert.Equal(t, int64(40), gjson.Get(body, "0.reviewCount").Int())
	assert.Equal(t, "3.5", gjson.Get(body, "0.distance").String())
	assert.Equal(t, gjson.Null, gjson.Get(body, "1.distance").Type)
	assert.False(t, gjson.Get(body, "1.location").Exists())
	assert.True(t, gjson.Get(body, "1.id").Exists())
}

func TestListDestinations_Empty(t *testing.T) {
	r, _ := destinationRouter(t)

	w := performJSON(r, http.MethodGet, "/api/destinations", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetDestination(t *testing.T) {
	r, repo := destinationRouter(t)
	d := seedDestination(t, repo, models.Destination{Name: "Kyoto", Country: "Japan", Price: "150.25", Rating: "4.9"})

	w := performJSON(r, http.MethodGet, "/api/destinations/"+itoa(d.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Kyoto", gjson.Get(w.Body.String(), "name").String())

	w = performJSON(r, http.MethodGet, "/api/destinations/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Destination not found", gjson.Get(w.Body.String(), "error").String())

	w = performJSON(r, http.MethodGet, "/api/destinations/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDestination_WithLocation(t *testing.T) {
	r, _ := destinationRouter(t)

	w := performJSON(r, http.MethodPost, "/admin/destinations", gin.H{
		"name":        "Paris",
		"country":     "France",
		"description": "City of light",
		"image":       "https://img.example.com/paris.jpg",
		"price":       "129.99",
		"rating":      "4.8",
		"reviewCount": 40,
		"location":    `{"type":"Point","coordinates":[2.35,48.85]}`,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := gjson.Get(w.Body.String(), "destination.id").Int()
	assert.NotZero(t, id)

	w = performJSON(r, http.MethodGet, "/api/destinations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"type":"Point","coordinates":[2.35,48.85]}`, gjson.Get(w.Body.String(), "0.location").String())
}

func TestCreateDestination_Validation(t *testing.T) {
	r, _ := destinationRouter(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing price", gin.H{"name": "Rome", "country": "Italy", "rating": "4.6"}},
		{"non numeric rating", gin.H{"name": "Rome", "country": "Italy", "price": "89.5", "rating": "great"}},
		{"bad image url", gin.H{"name": "Rome", "country": "Italy", "price": "89.5", "rating": "4.6", "image": "not a url"}},
		{"negative reviews", gin.H{"name": "Rome", "country": "Italy", "price": "89.5", "rating": "4.6", "reviewCount": -1}},
		{"line location", gin.H{"name": "Rome", "country": "Italy", "price": "89.5", "rating": "4.6", "location": `{"type":"LineString","coordinates":[[0,0],[1,1]]}`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performJSON(r, http.MethodPost, "/admin/destinations", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, gjson.Get(w.Body.String(), "error").String())
		})
	}
}

func TestUpdateDestination(t *testing.T) {
	r, repo := destinationRouter(t)
	d := seedDestination(t, repo, models.Destination{Name: "Lisbon", Country: "Portugal", Price: "75.5", Rating: "4.4"})

	w := performJSON(r, http.MethodPut, "/admin/destinations/"+itoa(d.ID), gin.H{
		"name": "Porto", "country": "Portugal", "price": "70.25", "rating": "4.5", "reviewCount": 3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Porto", gjson.Get(w.Body.String(), "destination.name").String())

	got, err := repo.GetByID(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Porto", got.Name)

	w = performJSON(r, http.MethodPut, "/admin/destinations/999", gin.H{
		"name": "Porto", "country": "Portugal", "price": "70.25", "rating": "4.5",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDestination(t *testing.T) {
	r, repo := destinationRouter(t)
	d := seedDestination(t, repo, models.Destination{Name: "Oslo", Country: "Norway", Price: "99.99", Rating: "4.1"})

	w := performJSON(r, http.MethodDelete, "/admin/destinations/"+itoa(d.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(r, http.MethodDelete, "/admin/destinations/"+itoa(d.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
