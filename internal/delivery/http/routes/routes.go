package routes

import (
	"career-connect/internal/app"
	"career-connect/internal/delivery/http/handler"
	"career-connect/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health     *handler.HealthHandler
	users      *handler.UserHandler
	mentorship *handler.MentorshipHandler
	interview  *handler.InterviewHandler
	chat       *handler.ChatHandler
	wsHandler  *ws.Handler
}

func NewRegistry(c *app.Container) *Registry {
	return &Registry{
		health:     handler.NewHealthHandler(c.DB, c.Cache),
		users:      handler.NewUserHandler(c.Users, c.Matching),
		mentorship: handler.NewMentorshipHandler(c.Mentorship),
		interview:  handler.NewInterviewHandler(c.Questions, c.Submissions, c.Readiness),
		chat:       handler.NewChatHandler(c.Chat),
		wsHandler:  ws.NewHandler(c.Hub, c.Chat, c.Logger),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.wsHandler.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	r.users.RegisterRoutes(v1)
	r.mentorship.RegisterRoutes(v1)
	r.interview.RegisterRoutes(v1)
	r.chat.RegisterRoutes(v1)
}
