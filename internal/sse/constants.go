package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often to send keepalive pings
const KeepaliveInterval = 30 * time.Second

// Stream control event types
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryParamTypes   = "types"
	QueryParamAccount = "account"
)

// Log messages
const (
	LogMsgClientConnected     = "SSE client connected"
	LogMsgClientDisconnected  = "SSE client disconnected"
	LogMsgEventBroadcast      = "Broadcasting SSE event"
	LogMsgBroadcastDropped    = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError          = "Failed to write SSE event"
	LogMsgFlushError          = "Failed to flush SSE response"
	LogMsgSubscriberReady     = "SSE subscriber registered for event types"
	LogMsgPayloadMissingOwner = "SSE event payload has no account"
)
