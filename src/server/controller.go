package server

import (
	"github.com/mintforge/minter/src/mint"
	"github.com/mintforge/minter/src/utils/config"
	"github.com/mintforge/minter/src/utils/model"
	"github.com/mintforge/minter/src/utils/monitor"
	"github.com/mintforge/minter/src/utils/task"
)

type Controller struct {
	*task.Task
}

// Main class that orchestrates the minter's functionalities
func NewController(config *config.Config) (self *Controller, err error) {
	self = new(Controller)
	self.Task = task.NewTask(config, "controller")

	db, err := model.NewConnection(self.Ctx, config, "minter")
	if err != nil {
		return
	}

	monitor := monitor.NewMonitor().
		WithMaxHistorySize(30)

	service, err := mint.NewService(config)
	if err != nil {
		return
	}
	service.WithMonitor(monitor)

	server := NewServer(config).
		WithMonitor(monitor).
		WithMintService(service).
		WithDB(db)

	self.Task.
		WithSubtask(monitor.Task).
		WithSubtask(server.Task)
	return
}
