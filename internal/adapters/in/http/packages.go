package http

import (
	"net/http"

	"postbox/internal/core/application/usecases/commands"
	"postbox/internal/core/application/usecases/queries"
	"postbox/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetCourierQueue handles GET /api/package/courier - pending packages, oldest first.
func (s *Server) GetCourierQueue(ctx echo.Context, params servers.GetCourierQueueParams) error {
	queue, err := s.h.GetCourierQueue.Handle(
		ctx.Request().Context(),
		queries.NewGetCourierQueueQuery(params.SerialNumber),
	)
	if err != nil {
		return err
	}

	response := make([]servers.Package, len(queue))
	for i, p := range queue {
		response[i] = toPackage(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetClientPackages handles GET /api/package/client/{userId}.
func (s *Server) GetClientPackages(ctx echo.Context, userID servers.UserIdPath) error {
	q, err := queries.NewGetClientPackagesQuery(userID)
	if err != nil {
		return err
	}

	packages, err := s.h.GetClientPackages.Handle(ctx.Request().Context(), q)
	if err != nil {
		return err
	}

	response := make([]servers.ClientPackage, len(packages))
	for i, p := range packages {
		response[i] = servers.ClientPackage{
			CategoryId:   p.CategoryID,
			CategoryName: p.CategoryName,
			CreatedOn:    p.CreatedOn,
			Depth:        p.Depth,
			Height:       p.Height,
			Id:           p.ID,
			IsFragile:    p.IsFragile,
			PostBoxId:    p.PostBoxID,
			Status:       p.Status.String(),
			UserId:       p.UserID,
			Volume:       p.Volume(),
			Width:        p.Width,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartDelivery handles POST /api/package/{id}/status/in-progress.
func (s *Server) StartDelivery(
	ctx echo.Context,
	id servers.PackageIdPath,
	params servers.StartDeliveryParams,
) error {
	cmd, err := commands.NewStartDeliveryCommand(id, params.SerialNumber)
	if err != nil {
		return err
	}

	if err = s.h.StartDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusOK)
}

// PlaceInLocker handles POST /api/package/place.
func (s *Server) PlaceInLocker(ctx echo.Context) error {
	var req servers.PlaceInLockerJSONRequestBody
	if err := bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewPlaceInLockerCommand(req.PackageId, req.PostBoxId, req.SerialNumber)
	if err != nil {
		return err
	}

	if err = s.h.PlaceInLocker.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusOK)
}

// OpenAllDelivered handles POST /api/package/locker/open-all-delivered.
func (s *Server) OpenAllDelivered(ctx echo.Context) error {
	var req servers.OpenAllDeliveredJSONRequestBody
	if err := bind(ctx, &req); err != nil {
		return err
	}

	pickups, err := s.h.OpenPickupLockers.Handle(
		ctx.Request().Context(),
		commands.NewOpenPickupLockersCommand(req.SerialNumber),
	)
	if err != nil {
		return err
	}

	response := make([]servers.Pickup, len(pickups))
	for i, p := range pickups {
		response[i] = servers.Pickup{LockerId: p.LockerID, PackageId: p.PackageID}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OpenForPlacement handles POST /api/package/courier/locker/open-for-placement.
func (s *Server) OpenForPlacement(ctx echo.Context) error {
	var req servers.OpenForPlacementJSONRequestBody
	if err := bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewOpenLockerForPlacementCommand(req.SerialNumber, req.PostBoxId)
	if err != nil {
		return err
	}

	if err = s.h.OpenLockerForPlacement.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusOK)
}

// CheckBinding handles GET /api/package/locker/{postBoxId}/binding.
func (s *Server) CheckBinding(ctx echo.Context, postBoxID int64, params servers.CheckBindingParams) error {
	q, err := queries.NewCheckBindingQuery(postBoxID, params.SerialNumber, params.PackageId)
	if err != nil {
		return err
	}

	bound, err := s.h.CheckBinding.Handle(ctx.Request().Context(), q)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Binding{Bound: bound})
}

// ReceivePackage handles POST /api/package/{id}/receive.
func (s *Server) ReceivePackage(
	ctx echo.Context,
	id servers.PackageIdPath,
	params servers.ReceivePackageParams,
) error {
	cmd, err := commands.NewReceivePackageCommand(id, params.SerialNumber)
	if err != nil {
		return err
	}

	if err = s.h.ReceivePackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusOK)
}

func toPackage(p queries.PackageResponse) servers.Package {
	return servers.Package{
		CategoryId: p.CategoryID,
		Depth:      p.Depth,
		Height:     p.Height,
		Id:         p.ID,
		PostBoxId:  p.PostBoxID,
		Status:     p.Status.String(),
		UserId:     p.UserID,
		Width:      p.Width,
	}
}
