package controller

import (
	"log"
	"strings"
	"time"

	"buildops_backend/internals/configs"
	"buildops_backend/internals/features/users/auth/dto"
	"buildops_backend/internals/features/users/user/model"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const accessTokenTTL = 12 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func issueToken(u *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"id":        u.UserID.String(),
		"role":      u.UserRole,
		"user_name": u.UserName,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(accessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// 🟢 POST /api/a/auth/register  (admin creates accounts)
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}
	if !model.ValidRole(req.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown role")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	ctrl.DB.Model(&model.UserModel{}).Where("user_email = ?", email).Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Hash password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	newUser := model.UserModel{
		UserName:     req.UserName,
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     req.Role,
		UserIsActive: true,
	}
	if err := ctrl.DB.Create(&newUser).Error; err != nil {
		log.Printf("[ERROR] Create user failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created", dto.ToUserResponse(&newUser))
}

// 🟢 POST /api/public/auth/login  (rate limited)
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var user model.UserModel
	if err := ctrl.DB.Where("user_email = ?", email).First(&user).Error; err != nil {
		// Same message for unknown email and bad password.
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := issueToken(&user)
	if err != nil {
		log.Printf("[ERROR] Sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Signed in", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(&user),
	})
}

// 🟢 POST /api/u/auth/logout  (clears the cookie; the token itself just expires)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Signed out", nil)
}

// 🟢 GET /api/u/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "Profile", dto.ToUserResponse(&user))
}

// 🟡 PATCH /api/u/auth/me  (name and/or password)
func (ctrl *AuthController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.UserName != nil {
		if strings.TrimSpace(*req.UserName) == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Name cannot be empty")
		}
		updates["user_name"] = strings.TrimSpace(*req.UserName)
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
		}
		updates["user_password"] = string(hash)
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload profile")
	}

	return helper.JsonUpdated(c, "Profile updated", dto.ToUserResponse(&user))
}

// 🟡 PATCH /api/a/users/:id/active  (enable/disable an account)
func (ctrl *AuthController) SetUserActive(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID is required")
	}

	var body struct {
		Active *bool `json:"active"`
	}
	if err := c.BodyParser(&body); err != nil || body.Active == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Field 'active' is required")
	}

	res := ctrl.DB.Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Update("user_is_active", *body.Active)
	if res.Error != nil {
		log.Printf("[ERROR] Toggle user active: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonUpdated(c, "User updated", fiber.Map{"user_id": id, "active": *body.Active})
}

// 🟢 GET /api/a/users  + pagination
func (ctrl *AuthController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.UserModel{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.
		Order("user_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list users")
	}

	list := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		list = append(list, dto.ToUserResponse(&users[i]))
	}

	return helper.JsonList(c, "Users", list,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
