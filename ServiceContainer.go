package main

import (
	"github.com/gin-gonic/gin"

	"gridsheet/contracts"
)

type ServiceContainer struct {
	WebhookDispatcher contracts.WebhookDispatcher
	SheetRepository   contracts.SheetRepository
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer() (container ServiceContainer) {
	container.WebhookDispatcher = NewWebhookDispatcher()
	container.SheetRepository = NewSheetRepository(container.WebhookDispatcher)
	container.ApiController = NewApiController(container.SheetRepository, container.WebhookDispatcher)

	container.Router = SetupRouter(container.ApiController)

	return
}
