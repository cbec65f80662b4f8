// Package lsp serves view-markup completions over the Language Server
// Protocol on stdio.
package lsp

import (
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	// Register the commonlog backend glsp logs through.
	_ "github.com/tliron/commonlog/simple"

	"github.com/viewls/viewls/internal/completion"
	"github.com/viewls/viewls/internal/logger"
	"github.com/viewls/viewls/internal/markup"
)

const serverName = "viewls"

// Server bridges the completion engine to an LSP client. Documents are
// synced whole into an in-memory store; every completion request parses
// the stored text fresh, so no stale tree can leak between edits.
type Server struct {
	engine    *completion.Engine
	namespace string
	version   string
	store     *documentStore
	log       *logger.Logger
}

// NewServer creates a language server backed by the given engine.
// namespace is the attribute namespace documents are parsed under.
func NewServer(engine *completion.Engine, namespace, version string, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	return &Server{
		engine:    engine,
		namespace: namespace,
		version:   version,
		store:     newDocumentStore(),
		log:       log,
	}
}

// Run speaks the protocol on stdin/stdout and blocks until the client
// disconnects. verbosity raises glsp's own protocol logging, which goes
// to stderr so it cannot corrupt the JSON-RPC stream.
func (s *Server) Run(verbosity int) error {
	commonlog.Configure(verbosity, nil)
	srv := server.NewServer(s.handler(), serverName, verbosity > 1)
	return srv.RunStdio()
}

func (s *Server) handler() *protocol.Handler {
	return &protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.didOpen,
		TextDocumentDidChange:  s.didChange,
		TextDocumentDidClose:   s.didClose,
		TextDocumentCompletion: s.completion,
	}
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	client := "unknown"
	if params.ClientInfo != nil {
		client = params.ClientInfo.Name
	}
	s.log.Info().Str("client", client).Msg("Initializing language server")

	openClose := true
	change := protocol.TextDocumentSyncKindFull
	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			OpenClose: &openClose,
			Change:    &change,
		},
		CompletionProvider: &protocol.CompletionOptions{
			TriggerCharacters: []string{"<", ":", "\""},
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	s.log.Debug().Msg("Client finished initialization")
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	s.log.Info().Msg("Shutting down language server")
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(_ *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.store.Set(uri, params.TextDocument.Text)
	s.log.Debug().Str("uri", uri).Int("bytes", len(params.TextDocument.Text)).Msg("Document opened")
	return nil
}

func (s *Server) didChange(_ *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	text, _ := s.store.Get(uri)

	for _, raw := range params.ContentChanges {
		switch change := raw.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = change.Text
		case protocol.TextDocumentContentChangeEvent:
			text = applyChange(text, change.Range, change.Text)
		}
	}

	s.store.Set(uri, text)
	return nil
}

func (s *Server) didClose(_ *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.store.Delete(uri)
	s.log.Debug().Str("uri", uri).Msg("Document closed")
	return nil
}

// completion handles textDocument/completion. It never fails the request:
// unknown documents and engine misfires degrade to an empty list so the
// client keeps the session alive.
func (s *Server) completion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)
	text, found := s.store.Get(uri)
	if !found {
		s.log.Warn().Str("uri", uri).Msg("Completion requested for a document that is not open")
		return []protocol.CompletionItem{}, nil
	}

	doc := markup.Parse(text, s.namespace)
	offset := offsetAt(text, params.Position)
	items := s.engine.Complete(doc, offset)
	return toProtocolItems(items), nil
}
