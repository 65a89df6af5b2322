package http

import (
	"net/http"

	"postbox/internal/core/application/usecases/commands"
	"postbox/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreatePackage handles POST /api/admin/packages - registers a Pending package.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var req servers.CreatePackageJSONRequestBody
	if err := bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreatePackageCommand(req.UserId, req.CategoryId, req.Height, req.Width, req.Depth)
	if err != nil {
		return err
	}

	id, err := s.h.CreatePackage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedId{Id: id})
}

// DeletePackage handles DELETE /api/admin/packages/{id}.
func (s *Server) DeletePackage(ctx echo.Context, id servers.PackageIdPath) error {
	cmd, err := commands.NewDeletePackageCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.DeletePackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
