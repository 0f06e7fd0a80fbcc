package main

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gridsheet/contracts"
)

type ApiController struct {
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	Format  string `form:"format"`
}

// SetCellRequest carries the raw cell text. A pointer keeps the empty
// string a valid payload, required only rejects a missing field.
type SetCellRequest struct {
	Text *string `json:"text" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required"`
}

func NewApiController(sheetRepository contracts.SheetRepository, webhookDispatcher contracts.WebhookDispatcher) *ApiController {
	return &ApiController{SheetRepository: sheetRepository, WebhookDispatcher: webhookDispatcher}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cell, affected, err := api.SheetRepository.SetCell(params.SheetId, params.CellId, *request.Text)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"cell": cell, "affected": affected})
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.CellData

	err := c.ShouldBindUri(&params)
	if err == nil {
		response, err = api.SheetRepository.GetCell(params.SheetId, params.CellId)
	}

	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) ClearCellAction(c *gin.Context) {
	params := CellEndpointParams{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		_, _, err = api.SheetRepository.ClearCell(params.SheetId, params.CellId)
	}

	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.Status(http.StatusNoContent)
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindQuery(&params)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch params.Format {
	case "values":
		api.renderSheet(c, params.SheetId, api.SheetRepository.RenderValues)
	case "texts":
		api.renderSheet(c, params.SheetId, api.SheetRepository.RenderTexts)
	default:
		response, err := api.SheetRepository.GetSheet(params.SheetId)
		if err != nil {
			c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusOK, response)
		}
	}
}

func (api *ApiController) renderSheet(c *gin.Context, sheetId string, render func(string, io.Writer) error) {
	out := &strings.Builder{}
	if err := render(sheetId, out); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, out.String())
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pos := contracts.PositionFromString(params.CellId)
	if !pos.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": contracts.InvalidPositionError.Error()})
		return
	}

	subscriptionId := api.WebhookDispatcher.Subscribe(strings.ToLower(params.SheetId), pos.String(), request.WebhookUrl)

	c.JSON(http.StatusCreated, gin.H{"subscription_id": subscriptionId, "webhook_url": request.WebhookUrl})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, contracts.SheetNotFoundError), errors.Is(err, contracts.CellNotFoundError):
		return http.StatusNotFound
	case errors.Is(err, contracts.InvalidPositionError):
		return http.StatusBadRequest
	case errors.Is(err, contracts.CircularDependencyError), errors.Is(err, contracts.FormulaSyntaxError):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
