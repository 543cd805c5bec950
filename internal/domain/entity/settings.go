package entity

// PlatformFeeKey - ключ комиссии платформы в таблице настроек.
const PlatformFeeKey = "platform_fee"

// DefaultPlatformFee используется, пока комиссия не задана явно.
const DefaultPlatformFee = 2.0

// CrawlCursor - позиция обходчика событий смарт-контракта.
type CrawlCursor struct {
	Key     string
	StartAt int64
	Value   int64
}
