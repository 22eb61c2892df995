package authController

import (
	"errors"

	"learnhub/config"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	authValidator "learnhub/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	DB     *gorm.DB
	Config *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Config: cfg}
}

func (a *AuthController) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*authValidator.SignupRequest)
	if !ok {
		return utils.NewAppError(utils.KindValidation, "Invalid request data", nil)
	}

	role := reqData.Role
	if role == "" {
		role = models.RoleStudent
	}

	// Hash Password
	hashedPassword, err := utils.HashPassword(reqData.Password, a.Config.SaltRound)
	if err != nil {
		return utils.NewAppError(utils.KindInternal, "Failed to process your request", err)
	}

	newUser := models.User{
		Email:    reqData.Email,
		Password: hashedPassword,
		Name:     reqData.Name,
		Role:     role,
	}

	if err := a.DB.WithContext(c.UserContext()).Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.NewAppError(utils.KindConflict, "Email already registered", err)
		}
		return utils.WriteError(err)
	}

	token, err := middleware.GenerateJWT(newUser.ID, a.Config.JWTKey, a.Config.TokenTTL)
	if err != nil {
		return utils.NewAppError(utils.KindInternal, "Failed to generate token", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, fiber.Map{
		"user":  newUser.Profile(),
		"token": token,
	})
}

// Login never tells an unknown email apart from a wrong password
func (a *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return utils.NewAppError(utils.KindValidation, "Invalid request data", nil)
	}

	var user models.User
	if err := a.DB.WithContext(c.UserContext()).Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return utils.NewAppError(utils.KindAuth, "Invalid credentials", err)
	}

	if !utils.CheckPassword(reqData.Password, user.Password) {
		return utils.NewAppError(utils.KindAuth, "Invalid credentials", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, a.Config.JWTKey, a.Config.TokenTTL)
	if err != nil {
		return utils.NewAppError(utils.KindInternal, "Failed to generate token", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"user":  user.Profile(),
		"token": token,
	})
}
