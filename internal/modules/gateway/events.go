package gateway

// Event types pushed to subscribers.
const (
	EventArticleCreated  = "article:created"
	EventArticleUpdated  = "article:updated"
	EventArticleDeleted  = "article:deleted"
	EventCommentCreated  = "comment:created"
	EventCommentUpdated  = "comment:updated"
	EventPollUpdated     = "poll:updated"
	EventPollActivated   = "poll:activated"
	EventAdUpdated       = "ad:updated"
	EventSettingsUpdated = "settings:updated"
)
