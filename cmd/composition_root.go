package cmd

import (
	"context"
	"log/slog"

	httpadapter "postbox/internal/adapters/in/http"
	"postbox/internal/adapters/out/email"
	"postbox/internal/adapters/out/kafka"
	"postbox/internal/adapters/out/notify"
	"postbox/internal/adapters/out/postgres"
	"postbox/internal/core/application/usecases/commands"
	"postbox/internal/core/application/usecases/queries"
	"postbox/internal/core/domain/services"
	"postbox/internal/core/ports"
	"postbox/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	gatekeeper services.LockerGatekeeper

	notifier *notify.AsyncNotifier
	opener   ports.LockerOpener
	closers  []func()
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		gatekeeper: services.NewLockerGatekeeper(),
	}

	c.notifier = notify.NewAsyncNotifier(c.createEmailSender(), logger, cfg.Notifier.QueueSize)
	c.notifier.Start()

	if len(cfg.Kafka.Brokers) == 0 {
		c.opener = kafka.NewLogLockerOpener(logger)
	} else {
		opener := kafka.NewLockerOpener(logger, cfg.Kafka.Brokers, cfg.Kafka.LockerTopic)
		c.opener = opener
		c.closers = append(c.closers, opener.Close)
	}

	return c
}

func (c *CompositionRoot) createEmailSender() ports.EmailSender {
	if c.cfg.Mailer.Host == "" {
		return email.NewLogSender(c.logger)
	}
	return email.NewSMTPSender(email.Config{
		Host:     c.cfg.Mailer.Host,
		Port:     c.cfg.Mailer.Port,
		Login:    c.cfg.Mailer.Login,
		Password: c.cfg.Mailer.Password,
		From:     c.cfg.Mailer.From,
		FromName: c.cfg.Mailer.FromName,
	})
}

// Close drains pending notifications and releases the locker transport.
func (c *CompositionRoot) Close(ctx context.Context) {
	if err := c.notifier.Close(ctx); err != nil {
		c.logger.Warn("notifications left undelivered", "error", err)
	}
	for _, closeFn := range c.closers {
		closeFn()
	}
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) registrationUoWFactory() commands.RegistrationUoWFactory {
	return FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterNfcCommandHandler() commands.RegisterNfcCommandHandler {
	return commands.NewRegisterNfcCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.registrationUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreatePlaceInLockerCommandHandler() commands.PlaceInLockerCommandHandler {
	return commands.NewPlaceInLockerCommandHandler(c.lifecycleUoWFactory(), c.notifier, c.opener)
}

func (c *CompositionRoot) CreateReceivePackageCommandHandler() commands.ReceivePackageCommandHandler {
	return commands.NewReceivePackageCommandHandler(c.lifecycleUoWFactory(), c.gatekeeper, c.notifier)
}

func (c *CompositionRoot) CreateOpenPickupLockersCommandHandler() commands.OpenPickupLockersCommandHandler {
	return commands.NewOpenPickupLockersCommandHandler(c.uowFactory.Repositories(), c.gatekeeper, c.opener)
}

func (c *CompositionRoot) CreateOpenLockerForPlacementCommandHandler() commands.OpenLockerForPlacementCommandHandler {
	return commands.NewOpenLockerForPlacementCommandHandler(c.uowFactory.Repositories(), c.gatekeeper, c.opener)
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	return commands.NewCreatePackageCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeletePackageCommandHandler() commands.DeletePackageCommandHandler {
	return commands.NewDeletePackageCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreatePurgeReceivedCommandHandler() commands.PurgeReceivedCommandHandler {
	return commands.NewPurgeReceivedCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateListUsersWithNfcQueryHandler() queries.ListUsersWithNfcQueryHandler {
	return queries.NewListUsersWithNfcQueryHandler(c.uowFactory.Repositories())
}

func (c *CompositionRoot) CreateResolveUserBySerialQueryHandler() queries.ResolveUserBySerialQueryHandler {
	return queries.NewResolveUserBySerialQueryHandler(c.uowFactory.Repositories())
}

func (c *CompositionRoot) CreateGetUserSerialQueryHandler() queries.GetUserSerialQueryHandler {
	return queries.NewGetUserSerialQueryHandler(c.uowFactory.Repositories())
}

func (c *CompositionRoot) CreateValidateCardQueryHandler() queries.ValidateCardQueryHandler {
	return queries.NewValidateCardQueryHandler(c.uowFactory.Repositories())
}

func (c *CompositionRoot) CreateCheckBindingQueryHandler() queries.CheckBindingQueryHandler {
	return queries.NewCheckBindingQueryHandler(c.uowFactory.Repositories(), c.gatekeeper)
}

func (c *CompositionRoot) CreateGetCourierQueueQueryHandler() queries.GetCourierQueueQueryHandler {
	return queries.NewGetCourierQueueQueryHandler(c.uowFactory.Repositories(), c.gatekeeper)
}

func (c *CompositionRoot) CreateGetClientPackagesQueryHandler() queries.GetClientPackagesQueryHandler {
	return queries.NewGetClientPackagesQueryHandler(c.gormDB)
}

// CreateServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		RegisterNfc:            c.CreateRegisterNfcCommandHandler(),
		StartDelivery:          c.CreateStartDeliveryCommandHandler(),
		PlaceInLocker:          c.CreatePlaceInLockerCommandHandler(),
		ReceivePackage:         c.CreateReceivePackageCommandHandler(),
		OpenPickupLockers:      c.CreateOpenPickupLockersCommandHandler(),
		OpenLockerForPlacement: c.CreateOpenLockerForPlacementCommandHandler(),
		RegisterUser:           c.CreateRegisterUserCommandHandler(),
		CreatePackage:          c.CreateCreatePackageCommandHandler(),
		DeletePackage:          c.CreateDeletePackageCommandHandler(),

		ListUsersWithNfc:    c.CreateListUsersWithNfcQueryHandler(),
		ResolveUserBySerial: c.CreateResolveUserBySerialQueryHandler(),
		GetUserSerial:       c.CreateGetUserSerialQueryHandler(),
		ValidateCard:        c.CreateValidateCardQueryHandler(),
		CheckBinding:        c.CreateCheckBindingQueryHandler(),
		GetCourierQueue:     c.CreateGetCourierQueueQueryHandler(),
		GetClientPackages:   c.CreateGetClientPackagesQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	purge := jobs.NewPurgeReceivedJob(
		c.CreatePurgeReceivedCommandHandler(),
		c.cfg.Jobs.RetentionCron,
		c.cfg.Jobs.Retention(),
		c.logger,
	)
	return jobs.NewJobManager(purge, c.logger)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
