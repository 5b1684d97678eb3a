package protocol

// RPC method names handled by the gateway.
const (
	MethodConnect      = "connect"
	MethodHealth       = "health"
	MethodTasksList    = "tasks.list"
	MethodChatSend     = "chat.send"
	MethodChatHistory  = "chat.history"
	MethodChatClear    = "chat.clear"
	MethodLedgerSearch = "ledger.search"
	MethodReplayRun    = "replay.run"
)

// ConnectParams is the payload of the connect handshake.
type ConnectParams struct {
	Token           string `json:"token,omitempty"`
	ProtocolVersion int    `json:"protocolVersion"`
}

// ChatSendParams asks the orchestrator to run a task over user input.
type ChatSendParams struct {
	Task    string `json:"task"`
	Input   string `json:"input"`
	Session string `json:"session,omitempty"`
}

// ChatSendResult carries the household's reply.
type ChatSendResult struct {
	Session string           `json:"session"`
	Record  TranscriptRecord `json:"record"`
}

// ChatHistoryParams identifies the transient session to read.
type ChatHistoryParams struct {
	Session string `json:"session"`
}

// ChatClearParams identifies the transient session to reset. Clearing a
// session never touches the persisted memory ledger.
type ChatClearParams struct {
	Session string `json:"session"`
}

// LedgerSearchParams is a substring query against the memory ledger.
type LedgerSearchParams struct {
	Query string `json:"query"`
}
