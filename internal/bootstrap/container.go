package bootstrap

import (
	"notes-app-be/internal/config"
	"notes-app-be/internal/controller"
	"notes-app-be/internal/pkg/logger"
	"notes-app-be/internal/repository/unitofwork"
	"notes-app-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController controller.INoteController
	PageController controller.IPageController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Services
	publisherService := service.NewPublisherService(cfg.Events.NoteTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.NoteTopic, sysLogger)

	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)

	return &Container{
		NoteController: controller.NewNoteController(noteService),
		PageController: controller.NewPageController(noteService, cfg.App.PageNoteLimit),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
