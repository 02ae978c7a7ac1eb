package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/auth"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/core"
)

type RestfulServer struct {
	Server           *gin.Engine
	Core             *core.BreathSafe
	JWT              *auth.JWTManager
	RateLimiterStore *core.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(userID uint) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(userID)
	}
}

func (rs *RestfulServer) CheckUserLimiter(userID uint) bool {
	limiter := rs.GetLimiter(userID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(userID uint, userRate float64, userBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(userID, rate.Limit(userRate), userBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(cors.Default())

	rs.Server.GET("/healthz", rs.HealthCheck)

	authGroup := rs.Server.Group("/auth")
	{
		authGroup.POST("/register", rs.Register)
		authGroup.POST("/login", rs.Login)
	}

	user := rs.Server.Group("/", AuthMiddleware(rs.JWT))
	{
		user.GET("/requests/mine", rs.ListMyRequests)
		user.POST("/requests", rs.CreateRequest)
		user.PUT("/requests/:id", rs.UpdateRequest)
		user.DELETE("/requests/:id", rs.DeleteRequest)

		user.GET("/sensors", rs.ListSensors)
		user.GET("/sensors/available", rs.ListAvailableSensors)
		user.POST("/sensors/:id/readings", rs.PostReading)

		user.GET("/subscriptions/mine", rs.ListMySubscriptions)
		user.POST("/subscriptions", rs.Subscribe)
		user.PATCH("/subscriptions/:id/active", rs.SetSubscriptionActive)
		user.PATCH("/subscriptions/:id/email", rs.SetSubscriptionEmail)
		user.PATCH("/subscriptions/:id/threshold", rs.SetSubscriptionThreshold)
		user.DELETE("/subscriptions/:id", rs.Unsubscribe)

		user.GET("/alerts/mine", rs.ListMyAlerts)
	}

	admin := rs.Server.Group("/", AuthMiddleware(rs.JWT), AdminMiddleware())
	{
		admin.GET("/requests", rs.ListAllRequests)
		admin.POST("/requests/:id/approve", rs.ApproveRequest)
		admin.POST("/requests/:id/reject", rs.RejectRequest)

		admin.POST("/sensors", rs.CreateSensor)
		admin.GET("/admin/analytics", rs.Analytics)
		admin.POST("/admin/users/:id/limiter", rs.PostLimiter)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
