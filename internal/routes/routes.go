package routes

import (
	"fmt"
	"net/http"
	"time"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/sais189/travelex/internal/controllers"
	"github.com/sais189/travelex/internal/logger"
	"github.com/sais189/travelex/internal/middleware"
)

// Dependencies are the controllers and middleware the router mounts.
type Dependencies struct {
	Destinations *controllers.DestinationController
	Auth         *controllers.AuthController
	Search       *controllers.SearchController
	JWT          *middleware.Auth
	LoginLimiter *middleware.RateLimiter

	// TrustedProxies may set X-Forwarded-For. Empty trusts no proxy, so
	// rate limits key on the socket address.
	TrustedProxies []string
}

// NewLoginLimiter allows a burst of 5 login attempts per IP, refilled at
// one attempt every 12 seconds.
func NewLoginLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(rate.Every(12*time.Second), 5)
}

func SetupRouter(deps Dependencies) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(deps.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	// Request logging middleware
	r.Use(ginlog.SetLogger(
		ginlog.WithWriter(logger.Writer()),
		ginlog.WithSkipPath([]string{"/health"}),
	))
	// Recovery middleware
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	APIRoutes(r, deps)
	AuthRoutes(r, deps)
	AdminRoutes(r, deps)
	WebSocketRoutes(r, deps)

	return r, nil
}
