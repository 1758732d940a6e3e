package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campushub/internal/auth"
	"campushub/internal/httperr"
	"campushub/internal/schema"
	"campushub/internal/service"
)

// UserHandler handles signup, signin, and token refresh endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SigninRequest represents a signin request.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup godoc
// @Summary Register a new user
// @Tags user
// @Accept json
// @Produce json
// @Param request body schema.SignupRequest true "Signup data"
// @Success 201 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Failure 409 {object} httperr.Envelope
// @Router /user/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req schema.SignupRequest
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.userService.Signup(c.Request().Context(), &req); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, httperr.OK("SignUp successfully"))
}

// Signin godoc
// @Summary Authenticate and issue a token pair
// @Tags user
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Credentials"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /user/signin [post]
func (h *UserHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest("Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return httperr.BadRequest("Email and password are required")
	}

	pair, ok, err := h.userService.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if !ok {
		// A wrong password is a domain outcome, not an error.
		return c.JSON(http.StatusOK, httperr.Envelope{Success: false, Message: "Invalid credentials"})
	}
	return c.JSON(http.StatusOK, httperr.Envelope{Success: true, Data: pair})
}

// Refresh godoc
// @Summary Issue a fresh access token
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /user/refresh [post]
func (h *UserHandler) Refresh(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	token, err := h.userService.IssueToken(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, httperr.Envelope{Success: true, Data: token})
}
