package contracts

type WebhookDispatcher interface {
	Subscribe(canonicalSheetId string, cellRef string, webhookUrl string) (subscriptionId string)
	GetWebhookUrl(canonicalSheetId string, cellRef string) string
	Notify(canonicalSheetId string, cells []*CellData)
	Start()
	Close()
}
