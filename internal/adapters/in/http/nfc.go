package http

import (
	"net/http"

	"postbox/internal/core/application/usecases/commands"
	"postbox/internal/core/application/usecases/queries"
	"postbox/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterNfc handles POST /api/nfc - binds a card to a user.
func (s *Server) RegisterNfc(ctx echo.Context) error {
	var req servers.RegisterNfcJSONRequestBody
	if err := bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterNfcCommand(req.UserId, req.SerialNumber)
	if err != nil {
		return err
	}

	serial, err := s.h.RegisterNfc.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.NfcBinding{SerialNumber: serial, UserId: req.UserId})
}

// ListUsersWithNfc handles GET /api/nfc.
func (s *Server) ListUsersWithNfc(ctx echo.Context) error {
	cards, err := s.h.ListUsersWithNfc.Handle(ctx.Request().Context(), queries.NewListUsersWithNfcQuery())
	if err != nil {
		return err
	}

	response := make([]servers.UserCard, len(cards))
	for i, card := range cards {
		response[i] = servers.UserCard{
			Email:        card.Email,
			SerialNumber: card.Serial,
			UserId:       card.UserID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUserIdBySerial handles GET /api/nfc/serial/{serialNumber}/user.
func (s *Server) GetUserIdBySerial(ctx echo.Context, serialNumber string) error {
	id, err := s.h.ResolveUserBySerial.Handle(
		ctx.Request().Context(),
		queries.NewResolveUserBySerialQuery(serialNumber),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.UserId{UserId: id})
}

// GetSerialByUserId handles GET /api/nfc/user/{userId}/serial. A user without
// a card gets a null serial, not an error.
func (s *Server) GetSerialByUserId(ctx echo.Context, userID servers.UserIdPath) error {
	q, err := queries.NewGetUserSerialQuery(userID)
	if err != nil {
		return err
	}

	bound, err := s.h.GetUserSerial.Handle(ctx.Request().Context(), q)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.UserSerial{SerialNumber: bound.Serial, UserId: bound.UserID})
}

// ValidateNfc handles POST /api/nfc/validate.
func (s *Server) ValidateNfc(ctx echo.Context) error {
	var req servers.ValidateNfcJSONRequestBody
	if err := bind(ctx, &req); err != nil {
		return err
	}

	holder, err := s.h.ValidateCard.Handle(ctx.Request().Context(), queries.NewValidateCardQuery(req.SerialNumber))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.CardHolder{
		Email:        holder.Email,
		Roles:        nonNil(holder.Roles),
		SerialNumber: holder.Serial,
		UserId:       holder.UserID,
	})
}
