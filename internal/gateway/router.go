package gateway

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nextlevelbuilder/westmarch/internal/household"
	"github.com/nextlevelbuilder/westmarch/internal/orchestrator"
	"github.com/nextlevelbuilder/westmarch/internal/replay"
	"github.com/nextlevelbuilder/westmarch/pkg/protocol"
)

// MethodHandler processes a single RPC method request.
type MethodHandler func(ctx context.Context, client *Client, req *protocol.RequestFrame)

// MethodRouter maps method names to handlers.
type MethodRouter struct {
	handlers map[string]MethodHandler
	server   *Server
}

func NewMethodRouter(server *Server) *MethodRouter {
	r := &MethodRouter{
		handlers: make(map[string]MethodHandler),
		server:   server,
	}
	r.registerDefaults()
	return r
}

// Register adds a method handler.
func (r *MethodRouter) Register(method string, handler MethodHandler) {
	r.handlers[method] = handler
}

// Handle dispatches a request to the appropriate handler. chat.send blocks on
// a chain of model calls, so it runs on its own goroutine; everything else is
// quick and handled inline.
func (r *MethodRouter) Handle(ctx context.Context, client *Client, req *protocol.RequestFrame) {
	handler, ok := r.handlers[req.Method]
	if !ok {
		slog.Warn("gateway: unknown method", "method", req.Method, "client", client.id)
		client.SendResponse(protocol.NewErrorResponse(
			req.ID,
			protocol.ErrInvalidRequest,
			"unknown method: "+req.Method,
		))
		return
	}

	slog.Debug("gateway: handling method", "method", req.Method, "client", client.id, "req_id", req.ID)
	if req.Method == protocol.MethodChatSend {
		go handler(ctx, client, req)
		return
	}
	handler(ctx, client, req)
}

func (r *MethodRouter) registerDefaults() {
	r.Register(protocol.MethodConnect, r.handleConnect)
	r.Register(protocol.MethodHealth, r.handleHealth)
	r.Register(protocol.MethodTasksList, r.handleTasksList)
	r.Register(protocol.MethodChatSend, r.handleChatSend)
	r.Register(protocol.MethodChatHistory, r.handleChatHistory)
	r.Register(protocol.MethodChatClear, r.handleChatClear)
	r.Register(protocol.MethodLedgerSearch, r.handleLedgerSearch)
	r.Register(protocol.MethodReplayRun, r.handleReplayRun)
}

// --- Handlers ---

func (r *MethodRouter) handleConnect(_ context.Context, client *Client, req *protocol.RequestFrame) {
	var params protocol.ConnectParams
	if req.Params != nil {
		json.Unmarshal(req.Params, &params)
	}

	token := r.server.cfg.Gateway.Token
	if token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(params.Token)) != 1 {
		slog.Warn("gateway: connect rejected, bad token", "client", client.id)
		client.SendResponse(protocol.NewErrorResponse(req.ID, protocol.ErrUnauthorized, "invalid token"))
		return
	}

	client.authenticated = true
	client.SendResponse(protocol.NewOKResponse(req.ID, map[string]any{
		"protocol": protocol.ProtocolVersion,
		"server": map[string]any{
			"name":    serverName,
			"version": serverVersion,
		},
	}))
}

func (r *MethodRouter) handleHealth(_ context.Context, client *Client, req *protocol.RequestFrame) {
	client.SendResponse(protocol.NewOKResponse(req.ID, map[string]any{
		"status":      "ok",
		"clients":     r.server.ClientCount(),
		"rateLimited": r.server.limiter.Enabled(),
	}))
}

func (r *MethodRouter) handleTasksList(_ context.Context, client *Client, req *protocol.RequestFrame) {
	type taskInfo struct {
		Name     string `json:"name"`
		Speaker  string `json:"speaker"`
		Scripted bool   `json:"scripted,omitempty"`
	}
	var tasks []taskInfo
	for _, name := range orchestrator.TaskNames() {
		tasks = append(tasks, taskInfo{Name: name, Speaker: orchestrator.Speaker(name)})
	}
	tasks = append(tasks, taskInfo{Name: replay.TaskName, Speaker: household.NameJeeves, Scripted: true})

	client.SendResponse(protocol.NewOKResponse(req.ID, map[string]any{"tasks": tasks}))
}

func (r *MethodRouter) handleChatSend(ctx context.Context, client *Client, req *protocol.RequestFrame) {
	var params protocol.ChatSendParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		client.sendError(req.ID, protocol.ErrInvalidRequest, "malformed params: "+err.Error())
		return
	}
	if strings.TrimSpace(params.Input) == "" {
		client.sendError(req.ID, protocol.ErrInvalidRequest, "input must not be empty")
		return
	}
	if replay.Is(params.Task) {
		// The scripted transcript is a replay capability, not a live workflow.
		client.sendError(req.ID, protocol.ErrInvalidRequest, "scripted transcript: use replay.run")
		return
	}
	if !r.server.limiter.Allow(client.id) {
		client.sendError(req.ID, protocol.ErrResourceExhausted, "rate limit exceeded, slow down")
		return
	}

	session := r.server.sessions.Ensure(params.Session)
	r.server.sessions.Append(session, protocol.TranscriptRecord{
		Role:    "user",
		Speaker: "user",
		Content: params.Input,
	})

	mode := household.ModeStructured
	if strings.EqualFold(strings.TrimSpace(params.Task), orchestrator.TaskParlourDiscussion) {
		mode = household.ModeParlour
	}

	reply, err := r.server.orch.Run(ctx, params.Task, params.Input, mode)
	if err != nil {
		// The user always sees a graceful, in-character failure.
		slog.Error("gateway: workflow failed", "task", params.Task, "error", err)
		reply = orchestrator.Apology(err, r.server.cfg.Debug)
	}

	record := protocol.TranscriptRecord{
		Role:    "assistant",
		Speaker: orchestrator.Speaker(params.Task),
		Content: reply,
	}
	r.server.sessions.Append(session, record)

	client.SendResponse(protocol.NewOKResponse(req.ID, protocol.ChatSendResult{
		Session: session,
		Record:  record,
	}))
}

func (r *MethodRouter) handleChatHistory(_ context.Context, client *Client, req *protocol.RequestFrame) {
	var params protocol.ChatHistoryParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		client.sendError(req.ID, protocol.ErrInvalidRequest, "malformed params: "+err.Error())
		return
	}
	client.SendResponse(protocol.NewOKResponse(req.ID, map[string]any{
		"session": params.Session,
		"records": r.server.sessions.History(params.Session),
	}))
}

func (r *MethodRouter) handleChatClear(_ context.Context, client *Client, req *protocol.RequestFrame) {
	var params protocol.ChatClearParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		client.sendError(req.ID, protocol.ErrInvalidRequest, "malformed params: "+err.Error())
		return
	}
	// Clears the transient transcript only. The memory ledger is never
	// touched from here.
	r.server.sessions.Clear(params.Session)
	client.SendEvent(*protocol.NewEvent(protocol.EventChat, map[string]any{
		"type":    protocol.ChatEventClear,
		"session": params.Session,
	}))
	client.SendResponse(protocol.NewOKResponse(req.ID, map[string]any{"session": params.Session}))
}

func (r *MethodRouter) handleLedgerSearch(_ context.Context, client *Client, req *protocol.RequestFrame) {
	var params protocol.LedgerSearchParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		client.sendError(req.ID, protocol.ErrInvalidRequest, "malformed params: "+err.Error())
		return
	}
	entries := r.server.ledger.Search(params.Query)
	client.SendResponse(protocol.NewOKResponse(req.ID, map[string]any{
		"query":   params.Query,
		"entries": entries,
	}))
}

func (r *MethodRouter) handleReplayRun(_ context.Context, client *Client, req *protocol.RequestFrame) {
	var params struct {
		Session string `json:"session,omitempty"`
	}
	if req.Params != nil {
		json.Unmarshal(req.Params, &params)
	}

	session := r.server.sessions.Ensure(params.Session)
	records := replay.Transcript()
	r.server.sessions.Append(session, records...)

	client.SendResponse(protocol.NewOKResponse(req.ID, map[string]any{
		"session": session,
		"records": records,
	}))
}
