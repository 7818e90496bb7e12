package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tierevents/services"
)

type SignupInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, token, err := h.Identity.SignUp(c.Request.Context(), services.SignUpInput{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"token": token, "redirect": "/"})
}

func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, token, err := h.Identity.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "redirect": "/"})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(h.Session.Cookie, "", -1, "/", "", h.Session.Secure, true)
	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

func (h *Handler) setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(h.Session.Cookie, token, int(h.Session.MaxAge.Seconds()), "/", "", h.Session.Secure, true)
}
