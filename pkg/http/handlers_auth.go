package http

import (
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Email().Required(),
	"Name":     z.String().Required(),
	"Password": z.String().Min(8).Required(),
})

func (rs *RestfulServer) Register(c *gin.Context) {
	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Core.Users.Register(req.Email, req.Name, req.Password, false)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Required(),
	"Password": z.String().Required(),
})

type LoginResponse struct {
	Token string `json:"token"`
}

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Core.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	token, err := rs.JWT.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}
