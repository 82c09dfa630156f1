package domain

import "time"

// Pub/Sub Channels
// 無効化イベントの配信チャンネル。配信保証はなく、購読者が存在しなくてもよい。
const (
	ChannelProductInvalidate     = "product:invalidate"
	ChannelProductBulkInvalidate = "product:bulk_invalidate"
	ChannelCategoryInvalidate    = "category:invalidate"
)

// InvalidationEvent はミューテーション後に発行されるベストエフォートな通知です。
// 永続化されず、真実の情報源としては扱われません。
type InvalidationEvent struct {
	ResourceID   string    `json:"resourceId"`
	ResourceSlug string    `json:"resourceSlug"`
	RelatedID    string    `json:"relatedId"`
	Action       string    `json:"action"`
	Timestamp    time.Time `json:"timestamp"`
}

// Invalidation Actions
const (
	ActionCreated     = "created"
	ActionUpdated     = "updated"
	ActionDeleted     = "deleted"
	ActionBulkToggled = "bulk_toggled"
)
