package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/NikitaCOEUR/routeconf/internal/completion"
	"github.com/NikitaCOEUR/routeconf/internal/config"
	"github.com/NikitaCOEUR/routeconf/internal/derrors"
	"github.com/NikitaCOEUR/routeconf/internal/document"
	"github.com/NikitaCOEUR/routeconf/internal/logger"
	"github.com/NikitaCOEUR/routeconf/internal/timing"
	"github.com/NikitaCOEUR/routeconf/internal/trace"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ServerName is reported to the editor in the initialize response
const ServerName = "routeconf"

// ErrExitWithoutShutdown is returned by Serve when the editor exits or
// disconnects without a prior shutdown request.
var ErrExitWithoutShutdown = errors.New("exit received before shutdown")

// TriggerCharacters request completion after the = of a declaration header
var TriggerCharacters = []string{"=", " "}

// Options configures a Server
type Options struct {
	Config     *config.Config // Defaults when nil
	ConfigPath string         // Watched and reloaded while serving when set
	Logger     *logger.Logger // Discards logs when nil
	Version    string
}

// Server is a language server offering route segment config completions.
// Messages are handled one at a time in arrival order.
type Server struct {
	conn       *Conn
	docs       *document.Store
	cfg        atomic.Pointer[config.Config]
	configPath string
	log        *logger.Logger
	version    string

	initialized bool
	shutdown    bool
}

// errExit stops the message loop
var errExit = errors.New("exit")

// NewServer creates a server reading requests from r and writing responses to w
func NewServer(r io.Reader, w io.Writer, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = logger.New("error", io.Discard)
	}

	s := &Server{
		conn:       NewConn(r, w),
		docs:       document.NewStore(),
		configPath: opts.ConfigPath,
		log:        log.With("session", uuid.NewString()),
		version:    opts.Version,
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	s.cfg.Store(cfg)

	return s
}

// Config returns the configuration currently in effect
func (s *Server) Config() *config.Config {
	return s.cfg.Load()
}

// Serve handles messages until the editor sends exit, the stream ends or
// ctx is cancelled. The config file, if any, is watched meanwhile.
func (s *Server) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.log.Info().Str("version", s.version).Str("config", s.configPath).Msg("Language server started")

	g.Go(func() error {
		defer cancel()
		return s.loop(ctx)
	})

	if s.configPath != "" {
		watcher := config.NewWatcher(s.configPath, s.reload)
		g.Go(func() error {
			if err := watcher.Run(ctx); err != nil {
				// Completions keep working with the last loaded config
				s.log.Warn().Err(err).Str("path", s.configPath).Msg("Config watcher stopped")
			}
			return nil
		})
	}

	return g.Wait()
}

// message is one framed message read from the editor, or the read error
type message struct {
	data []byte
	err  error
}

// readMessages feeds messages to out until a read fails or ctx is done.
// Reads block on the editor's stream, so they run apart from the loop.
func (s *Server) readMessages(ctx context.Context, out chan<- message) {
	for {
		data, err := s.conn.Read()
		select {
		case out <- message{data: data, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

// loop dispatches messages sequentially until exit, end of stream or
// cancellation of ctx
func (s *Server) loop(ctx context.Context) error {
	messages := make(chan message)
	go s.readMessages(ctx, messages)

	for {
		var msg message
		select {
		case <-ctx.Done():
			s.log.Info().Msg("Language server cancelled")
			return nil
		case msg = <-messages:
		}

		if msg.err != nil {
			if errors.Is(msg.err, io.EOF) {
				if s.shutdown {
					return nil
				}
				s.log.Warn().Msg("Editor disconnected before shutdown")
				return ErrExitWithoutShutdown
			}
			return fmt.Errorf("failed to read message: %w", msg.err)
		}

		if err := s.handleMessage(ctx, msg.data); err != nil {
			if errors.Is(err, errExit) {
				if s.shutdown {
					s.log.Info().Msg("Language server stopped")
					return nil
				}
				return ErrExitWithoutShutdown
			}
			return err
		}
	}
}

// handleMessage decodes one message, dispatches it and writes the response
func (s *Server) handleMessage(ctx context.Context, data []byte) error {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		s.log.Warn().Err(err).Msg("Malformed message")
		return s.reply(nil, nil, &RPCError{Code: CodeParseError, Message: "parse error"})
	}

	if req.Method == "" {
		// Responses to server-initiated requests; the server sends none
		return nil
	}

	ctx, end := trace.Task(ctx, req.Method)
	defer end()

	s.log.Debug().Str("method", req.Method).Bool("notification", req.IsNotification()).Msg("Received message")

	if req.Method == MethodExit {
		return errExit
	}

	result, err := s.dispatch(ctx, &req)

	if req.IsNotification() {
		if err != nil {
			s.log.Warn().Err(err).Str("method", req.Method).Msg("Notification failed")
		}
		return nil
	}

	if err != nil {
		var perr *derrors.ProtocolError
		if errors.As(err, &perr) {
			return s.reply(req.ID, nil, &RPCError{Code: perr.RPCCode, Message: perr.Error()})
		}
		s.log.Error().Err(err).Str("method", req.Method).Msg("Request failed")
		return s.reply(req.ID, nil, &RPCError{Code: CodeInternalError, Message: err.Error()})
	}

	return s.reply(req.ID, result, nil)
}

// dispatch routes a request or notification to its handler.
// Unknown notifications are ignored.
func (s *Server) dispatch(ctx context.Context, req *Request) (any, error) {
	switch {
	case req.Method == MethodInitialize:
		if s.initialized {
			return nil, derrors.NewProtocolError(CodeInvalidRequest, "server already initialized", nil)
		}
	case s.shutdown:
		return nil, derrors.NewProtocolError(CodeInvalidRequest, "server is shutting down", nil)
	case !s.initialized:
		return nil, derrors.NewProtocolError(CodeServerNotInitialized, "server not initialized", nil)
	}

	switch req.Method {
	case MethodInitialize:
		return s.initialize(req.Params)
	case MethodInitialized:
		return nil, nil
	case MethodShutdown:
		s.shutdown = true
		return nil, nil
	case MethodDidOpen:
		return nil, s.didOpen(req.Params)
	case MethodDidChange:
		return nil, s.didChange(req.Params)
	case MethodDidClose:
		return nil, s.didClose(req.Params)
	case MethodCompletion:
		return s.completion(ctx, req.Params)
	}

	if req.IsNotification() {
		return nil, nil
	}
	return nil, derrors.NewProtocolError(CodeMethodNotFound, "method not found: "+req.Method, nil)
}

// reply writes a response; a nil result is sent as null
func (s *Server) reply(id json.RawMessage, result any, rpcErr *RPCError) error {
	resp := Response{
		JSONRPC: jsonrpcVersion,
		ID:      id,
		Error:   rpcErr,
	}

	if rpcErr == nil {
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		resp.Result = data
	}

	if err := s.conn.Write(resp); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func decodeParams(params json.RawMessage, v any) error {
	if len(params) == 0 {
		return derrors.NewProtocolError(CodeInvalidParams, "missing params", nil)
	}
	if err := json.Unmarshal(params, v); err != nil {
		return derrors.NewProtocolError(CodeInvalidParams, "invalid params", err)
	}
	return nil
}

func (s *Server) initialize(params json.RawMessage) (any, error) {
	var p InitializeParams
	if len(params) > 0 {
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
	}

	entry := s.log.Info().Str("root", p.RootURI)
	if p.ClientInfo != nil {
		entry = entry.Str("client", p.ClientInfo.Name).Str("client_version", p.ClientInfo.Version)
	}
	entry.Msg("Initialize")

	s.initialized = true

	return InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync: TextDocumentSyncOptions{
				OpenClose: true,
				Change:    SyncFull,
			},
			CompletionProvider: CompletionOptions{
				TriggerCharacters: TriggerCharacters,
			},
		},
		ServerInfo: ServerInfo{
			Name:    ServerName,
			Version: s.version,
		},
	}, nil
}

func (s *Server) didOpen(params json.RawMessage) error {
	var p DidOpenTextDocumentParams
	if err := decodeParams(params, &p); err != nil {
		return err
	}

	item := p.TextDocument
	s.docs.Open(item.URI, item.LanguageID, item.Version, item.Text)
	s.log.Debug().Str("uri", item.URI).Str("language", item.LanguageID).Int("documents", s.docs.Len()).Msg("Document opened")
	return nil
}

func (s *Server) didChange(params json.RawMessage) error {
	var p DidChangeTextDocumentParams
	if err := decodeParams(params, &p); err != nil {
		return err
	}

	changes := make([]document.Change, len(p.ContentChanges))
	for i, c := range p.ContentChanges {
		changes[i] = document.Change{Range: c.Range, Text: c.Text}
	}
	return s.docs.Change(p.TextDocument.URI, p.TextDocument.Version, changes)
}

func (s *Server) didClose(params json.RawMessage) error {
	var p DidCloseTextDocumentParams
	if err := decodeParams(params, &p); err != nil {
		return err
	}

	s.docs.Close(p.TextDocument.URI)
	s.log.Debug().Str("uri", p.TextDocument.URI).Int("documents", s.docs.Len()).Msg("Document closed")
	return nil
}

// completion answers with the candidates of the declaration before the cursor,
// or null when there is none
func (s *Server) completion(ctx context.Context, params json.RawMessage) (any, error) {
	var p CompletionParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	timer := timing.NewTimer()
	uri := p.TextDocument.URI

	doc, err := s.docs.Get(uri)
	if err != nil {
		s.log.Debug().Err(err).Msg("Completion on unknown document")
		return nil, nil
	}

	cfg := s.Config()
	if !document.IsSupported(doc.LanguageID) || !cfg.LanguageEnabled(doc.LanguageID) {
		s.log.Debug().Str("uri", uri).Str("language", doc.LanguageID).Msg("Language not enabled")
		return nil, nil
	}

	prefix, ok := doc.LinePrefix(p.Position)
	if !ok {
		return nil, nil
	}
	timer.Mark("prefix")

	endRegion := trace.Region(ctx, "resolve")
	result, ok := completion.ResolveResult(prefix)
	endRegion()
	timer.Mark("resolve")

	if !ok {
		return nil, nil
	}
	if !cfg.DeclarationEnabled(result.Identifier) {
		s.log.Debug().Str("declaration", result.Identifier).Msg("Declaration disabled")
		return nil, nil
	}

	list := toCompletionList(result.Candidates)
	timer.Mark("build")

	trace.Log(ctx, "completion", result.Identifier)
	s.log.Debug().
		Str("uri", uri).
		Str("declaration", result.Identifier).
		Int("items", len(list.Items)).
		Dur("elapsed", timer.Elapsed()).
		Str("timing", timer.Summary()).
		Msg("Completion")

	return list, nil
}

// toCompletionList converts candidates, keeping their order through sortText
func toCompletionList(candidates []completion.Candidate) *CompletionList {
	items := make([]CompletionItem, len(candidates))
	for i, c := range candidates {
		items[i] = CompletionItem{
			Label:            c.Label,
			Kind:             CompletionItemKindValue,
			Detail:           c.Detail,
			InsertText:       c.InsertText,
			InsertTextFormat: InsertTextFormatPlainText,
			SortText:         fmt.Sprintf("%02d", i),
		}
		if c.Deprecated {
			items[i].Tags = []CompletionItemTag{CompletionItemTagDeprecated}
		}
	}
	return &CompletionList{IsIncomplete: false, Items: items}
}

// reload swaps in the config file after it changed on disk.
// An unreadable or invalid file keeps the previous config.
func (s *Server) reload() {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.configPath).Msg("Failed to reload config")
		return
	}
	if errs := config.Check(cfg); len(errs) > 0 {
		s.log.Warn().Str("path", s.configPath).Str("field", errs[0].Field).Str("error", errs[0].Message).Msg("Ignoring invalid config")
		return
	}

	s.cfg.Store(cfg)
	s.log.SetLevel(cfg.LogLevel)
	s.log.Info().Str("path", s.configPath).Strs("disabled", cfg.Disabled).Msg("Config reloaded")
}
