package http

import (
	"context"

	"postbox/internal/core/application/usecases/commands"
	"postbox/internal/core/application/usecases/queries"
	"postbox/internal/core/domain/model/user"
	"postbox/internal/core/domain/services"
	"postbox/internal/generated/servers"
)

// Handler runs one use case and returns its result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Action runs one use case that only reports success or failure.
type Action[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers lists the use cases exposed over HTTP.
type Handlers struct {
	// Commands
	RegisterNfc            Handler[commands.RegisterNfcCommand, string]
	StartDelivery          Action[commands.StartDeliveryCommand]
	PlaceInLocker          Action[commands.PlaceInLockerCommand]
	ReceivePackage         Action[commands.ReceivePackageCommand]
	OpenPickupLockers      Handler[commands.OpenPickupLockersCommand, []services.Pickup]
	OpenLockerForPlacement Action[commands.OpenLockerForPlacementCommand]
	RegisterUser           Handler[commands.RegisterUserCommand, *user.User]
	CreatePackage          Handler[commands.CreatePackageCommand, int64]
	DeletePackage          Action[commands.DeletePackageCommand]

	// Queries
	ListUsersWithNfc    Handler[queries.ListUsersWithNfcQuery, []queries.UserCardResponse]
	ResolveUserBySerial Handler[queries.ResolveUserBySerialQuery, int64]
	GetUserSerial       Handler[queries.GetUserSerialQuery, queries.GetUserSerialQueryResponse]
	ValidateCard        Handler[queries.ValidateCardQuery, queries.ValidateCardQueryResponse]
	CheckBinding        Handler[queries.CheckBindingQuery, bool]
	GetCourierQueue     Handler[queries.GetCourierQueueQuery, []queries.PackageResponse]
	GetClientPackages   Handler[queries.GetClientPackagesQuery, []queries.ClientPackageResponse]
}

// Server implements the ServerInterface for handling HTTP requests.
// It translates wire models to commands and queries and back; failures are
// returned unchanged and rendered by the error handler.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{h: h}
}
