package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

const ListenPort = ":8080"

func RunApp() error {
	gin.SetMode(gin.ReleaseMode)

	serviceContainer := BuildServiceContainer()

	serviceContainer.WebhookDispatcher.Start()
	defer serviceContainer.WebhookDispatcher.Close()

	return http.ListenAndServe(ListenPort, serviceContainer.Router)
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
