package main

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/google/uuid"

	"gridsheet/contracts"
)

const WebhookWorkersCount = 5

type Webhook struct {
	Id  string
	Url string
}

type SheetWebhooks map[string]*Webhook

type WebhookSendCommand struct {
	Webhook string
	Cell    *contracts.CellData
}

// WebhookDispatcher posts cell change notifications to subscriber
// urls. Delivery is asynchronous, a bounded queue feeds a fixed worker
// pool.
type WebhookDispatcher struct {
	mu       sync.RWMutex
	queue    chan WebhookSendCommand
	webhooks map[string]SheetWebhooks
}

func NewWebhookDispatcher() *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, 20),
		webhooks: map[string]SheetWebhooks{},
	}
}

func (manager *WebhookDispatcher) Subscribe(canonicalSheetId string, cellRef string, webhookUrl string) string {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if _, ok := manager.webhooks[canonicalSheetId]; !ok {
		manager.webhooks[canonicalSheetId] = SheetWebhooks{}
	}

	if webhookUrl == "" {
		delete(manager.webhooks[canonicalSheetId], cellRef)
		return ""
	}

	webhook := &Webhook{Id: uuid.NewString(), Url: webhookUrl}
	manager.webhooks[canonicalSheetId][cellRef] = webhook
	return webhook.Id
}

func (manager *WebhookDispatcher) GetWebhookUrl(canonicalSheetId string, cellRef string) string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	if _, ok := manager.webhooks[canonicalSheetId]; !ok {
		return ""
	}

	if webhook, ok := manager.webhooks[canonicalSheetId][cellRef]; ok {
		return webhook.Url
	}

	return ""
}

func (manager *WebhookDispatcher) Notify(canonicalSheetId string, cells []*contracts.CellData) {
	manager.mu.RLock()
	_, ok := manager.webhooks[canonicalSheetId]
	manager.mu.RUnlock()
	if !ok {
		return
	}

	go manager.addToQueue(canonicalSheetId, cells)
}

func (manager *WebhookDispatcher) addToQueue(canonicalSheetId string, cells []*contracts.CellData) {
	for _, cell := range cells {
		if webhook := manager.GetWebhookUrl(canonicalSheetId, cell.Ref); webhook != "" {
			manager.queue <- WebhookSendCommand{
				Webhook: webhook,
				Cell:    cell,
			}
		}
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	close(manager.queue)
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	var response *http.Response
	var err error

	for command := range manager.queue {
		payload, _ := json.Marshal(command.Cell)
		response, err = client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			fmt.Printf("Webhook send error: %s\n", err)
		} else if response.StatusCode >= 300 {
			fmt.Printf("Unexpected webhook response HTTP status: %s\n", response.Status)
		}
	}
}
