package lsp

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/parsic/diag"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "parsic"

// Checker parses the text of the document at path and returns the
// diagnostics of the parse.
type Checker func(path string, text string) *diag.Logger

type document struct {
	path    string
	text    string
	version *protocol.UInteger
}

// Server is a language server that checks documents as they are edited and
// publishes the diagnostics of each check.
type Server struct {
	check   Checker
	handler protocol.Handler
	server  *server.Server
	version string
	source  string
	log     commonlog.Logger

	mu   sync.Mutex
	docs map[protocol.DocumentUri]*document
}

type Option func(*Server)

// WithVersion sets the server version reported on initialize.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithSource sets the source attached to every published diagnostic.
func WithSource(source string) Option {
	return func(s *Server) {
		s.source = source
	}
}

func NewServer(check Checker, opts ...Option) *Server {
	ls := &Server{
		check:  check,
		source: lsName,
		log:    commonlog.GetLogger("parsic.lsp"),
		docs:   make(map[protocol.DocumentUri]*document),
	}
	for _, opt := range opts {
		opt(ls)
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	ls.mu.Lock()
	clear(ls.docs)
	ls.mu.Unlock()
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	item := params.TextDocument
	path, err := uriToPath(item.URI)
	if err != nil {
		return err
	}
	doc := &document{path: path, text: item.Text, version: versionPtr(item.Version)}
	ls.mu.Lock()
	ls.docs[item.URI] = doc
	ls.mu.Unlock()

	ls.checkAndPublish(ctx, item.URI, doc)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return err
	}
	doc := &document{path: path, text: textChange.Text, version: versionPtr(params.TextDocument.Version)}
	ls.mu.Lock()
	ls.docs[uri] = doc
	ls.mu.Unlock()

	ls.checkAndPublish(ctx, uri, doc)
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	ls.mu.Lock()
	delete(ls.docs, uri)
	ls.mu.Unlock()

	publish(ctx, uri, nil, diag.NewLogger(), ls.source)
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	path, err := uriToPath(uri)
	if err != nil {
		return err
	}

	ls.mu.Lock()
	doc, known := ls.docs[uri]
	ls.mu.Unlock()

	switch {
	case params.Text != nil:
		next := &document{path: path, text: *params.Text}
		if known {
			next.version = doc.version
		}
		doc = next
	case !known:
		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		doc = &document{path: path, text: string(content)}
	}

	ls.mu.Lock()
	ls.docs[uri] = doc
	ls.mu.Unlock()

	ls.checkAndPublish(ctx, uri, doc)
	return nil
}

func (ls *Server) checkAndPublish(ctx *glsp.Context, uri protocol.DocumentUri, doc *document) {
	logs := ls.check(doc.path, doc.text)
	if ls.log.AllowLevel(commonlog.Debug) {
		ls.log.Debugf("%s: %d diagnostics", doc.path, logs.Len())
		logs.Emit(ls.log)
	}
	publish(ctx, uri, doc.version, logs, ls.source)
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", errors.Wrapf(err, "parse document URI %q", uri)
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func versionPtr(v protocol.Integer) *protocol.UInteger {
	if v < 0 {
		return nil
	}
	u := protocol.UInteger(v)
	return &u
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
