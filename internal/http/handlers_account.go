// README: Account handlers: registration, login, user profile.
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mechmatch/internal/modules/user"
	"mechmatch/internal/types"
)

func parseID(c *gin.Context, name string) (types.ID, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

type registerReq struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	Password       string  `json:"password"`
	ProfilePicture *string `json:"profile_picture"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	u, err := s.users.Register(c.Request.Context(), user.RegisterCommand{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		s.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": userJSON(u)})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	body := gin.H{"message": "Login successful", "role": res.Role}
	switch res.Role {
	case user.RoleUser:
		body["user"] = userJSON(res.User)
	case user.RoleMechanic:
		m := res.Mechanic
		body["mechanic"] = gin.H{
			"id":              m.ID,
			"name":            m.Name,
			"email":           m.Email,
			"phone":           m.Phone,
			"profile_picture": m.ProfilePicture,
			"garage_name":     m.GarageName,
			"garage_location": m.GarageLocation,
			"status":          m.Status,
		}
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleGetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := s.users.Get(c.Request.Context(), id)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	body := userJSON(&p.User)
	body["created_at"] = p.CreatedAt
	body["membership"] = p.Membership
	body["bookings_count"] = p.BookingsCount
	c.JSON(http.StatusOK, body)
}

func userJSON(u *user.User) gin.H {
	return gin.H{
		"id":              u.ID,
		"name":            u.Name,
		"email":           u.Email,
		"phone":           u.Phone,
		"profile_picture": u.ProfilePicture,
		"status":          u.Status,
	}
}
