// file: internals/features/users/session/controller/session_controller.go
package controller

import (
	"contatorapido_backend/internals/features/users/session/dto"
	"contatorapido_backend/internals/features/users/session/service"
	helper "contatorapido_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	EntryPath     = "/"
	DirectoryPath = "/alunos"

	TooManyAttemptsMessage = "Muitas tentativas de login. Aguarde um minuto."
)

type SessionController struct {
	Session *service.Manager
	Log     *zap.Logger
}

func NewSessionController(m *service.Manager, log *zap.Logger) *SessionController {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionController{Session: m, Log: log}
}

/* ===========================================================
 * GET / (entry route, login page)
 * =========================================================== */
func (ctl *SessionController) ShowLogin(c *fiber.Ctx) error {
	if ctl.Session.IsAuthenticated(c) {
		return c.Redirect(DirectoryPath)
	}
	return ctl.renderLogin(c, fiber.StatusOK, "")
}

/* ===========================================================
 * POST /login
 * =========================================================== */
func (ctl *SessionController) Login(c *fiber.Ctx) error {
	req, err := dto.BindLogin(c)
	if err != nil {
		return ctl.renderLogin(c, fiber.StatusBadRequest, "Código de acesso inválido")
	}
	if !ctl.Session.CheckAccessCode(req.AccessCode) {
		ctl.Log.Info("login rejected", zap.String("ip", c.IP()))
		return ctl.renderLogin(c, fiber.StatusUnauthorized, "Código de acesso incorreto")
	}
	if err := ctl.Session.Issue(c); err != nil {
		ctl.Log.Error("failed to issue session", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to start session")
	}
	return c.Redirect(DirectoryPath)
}

// TooManyAttempts re-renders the login form when the login limiter trips.
func (ctl *SessionController) TooManyAttempts(c *fiber.Ctx) error {
	ctl.Log.Warn("login rate limited", zap.String("ip", c.IP()))
	return ctl.renderLogin(c, fiber.StatusTooManyRequests, TooManyAttemptsMessage)
}

/* ===========================================================
 * POST|GET /logout
 * =========================================================== */
func (ctl *SessionController) Logout(c *fiber.Ctx) error {
	ctl.Session.Clear(c)
	return c.Redirect(EntryPath)
}

/* ===========================================================
 * GET /api/session
 * =========================================================== */
func (ctl *SessionController) Status(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", dto.SessionResponse{
		Authenticated:      ctl.Session.IsAuthenticated(c),
		RequiresAccessCode: ctl.Session.RequiresAccessCode(),
	})
}

func (ctl *SessionController) renderLogin(c *fiber.Ctx, status int, errMsg string) error {
	return c.Status(status).Render("auth/login", fiber.Map{
		"Title":              "Entrar - Contatos dos Alunos",
		"RequiresAccessCode": ctl.Session.RequiresAccessCode(),
		"Error":              errMsg,
	})
}
