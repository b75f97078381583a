package lsp

import (
	"log"
	"sort"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sable/internal/token"
)

// SableHandler implements the LSP server handlers for the Sable language.
// Documents are kept in memory from the client's full-sync notifications;
// the server never reads files itself.
type SableHandler struct {
	mu      sync.RWMutex
	content map[protocol.DocumentUri]string
}

func NewSableHandler() *SableHandler {
	return &SableHandler{
		content: make(map[protocol.DocumentUri]string),
	}
}

// Initialize advertises the server's capabilities.
func (h *SableHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *SableHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Sable LSP Initialized")
	return nil
}

func (h *SableHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Sable LSP Shutdown")
	return nil
}

func (h *SableHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (h *SableHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	h.setContent(params.TextDocument.URI, params.TextDocument.Text)
	h.publishDiagnostics(ctx, params.TextDocument.URI)
	return nil
}

func (h *SableHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, params.TextDocument.URI)
	return nil
}

func (h *SableHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	// Full sync only: the last whole-document event wins.
	for _, change := range params.ContentChanges {
		switch event := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			h.setContent(params.TextDocument.URI, event.Text)
		case protocol.TextDocumentContentChangeEvent:
			h.setContent(params.TextDocument.URI, event.Text)
		}
	}

	h.publishDiagnostics(ctx, params.TextDocument.URI)
	return nil
}

// TextDocumentCompletion offers the keyword table as completion items.
func (h *SableHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	keywords := make([]string, 0, len(token.KEYWORDS))
	for keyword := range token.KEYWORDS {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)

	items := make([]protocol.CompletionItem, 0, len(keywords))
	for _, keyword := range keywords {
		items = append(items, protocol.CompletionItem{
			Label: keyword,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindKeyword),
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull classifies the whole document's token stream
// and encodes it in the LSP delta wire format.
func (h *SableHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	h.mu.RLock()
	source, ok := h.content[params.TextDocument.URI]
	h.mu.RUnlock()
	if !ok {
		return &protocol.SemanticTokens{}, nil
	}

	tokens := collectSemanticTokens(source)

	var data []uint32
	var prevLine, prevStart uint32
	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		} else {
			deltaStart = tok.StartChar
		}

		data = append(data, deltaLine, deltaStart, tok.Length, tok.TokenType, tok.TokenModifiers)

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return &protocol.SemanticTokens{Data: data}, nil
}

func (h *SableHandler) setContent(uri protocol.DocumentUri, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.content[uri] = text
}

func (h *SableHandler) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri) {
	h.mu.RLock()
	source, ok := h.content[uri]
	h.mu.RUnlock()
	if !ok {
		return
	}

	diagnostics := CollectDiagnostics(source)
	if diagnostics == nil {
		// An empty (non-nil) list clears previously published diagnostics.
		diagnostics = []protocol.Diagnostic{}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrCompletionKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}
