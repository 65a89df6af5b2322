package http

import (
	"net/http"

	"postbox/internal/core/application/usecases/commands"
	"postbox/internal/core/domain/model/user"
	"postbox/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterCourier handles POST /api/user/courier/register.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	return s.registerUser(ctx, commands.NewRegisterCourierCommand)
}

// RegisterClient handles POST /api/user/client/register.
func (s *Server) RegisterClient(ctx echo.Context) error {
	return s.registerUser(ctx, commands.NewRegisterClientCommand)
}

func (s *Server) registerUser(
	ctx echo.Context,
	newCommand func(email string) (commands.RegisterUserCommand, error),
) error {
	var req servers.RegisterUserRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := newCommand(req.EmailAddress)
	if err != nil {
		return err
	}

	registered, err := s.h.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toUser(registered))
}

func toUser(u *user.User) servers.User {
	roles := make([]string, 0, len(u.Roles()))
	for _, r := range u.Roles() {
		roles = append(roles, string(r.Name()))
	}
	return servers.User{Email: u.Email(), Id: u.ID(), Roles: roles}
}
