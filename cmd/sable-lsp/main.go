// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"sable/internal/lsp"
)

const lsName = "sable" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	sableHandler := lsp.NewSableHandler()

	handler = protocol.Handler{
		Initialize:                     sableHandler.Initialize,
		Initialized:                    sableHandler.Initialized,
		Shutdown:                       sableHandler.Shutdown,
		SetTrace:                       sableHandler.SetTrace,
		TextDocumentDidOpen:            sableHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           sableHandler.TextDocumentDidClose,
		TextDocumentDidChange:          sableHandler.TextDocumentDidChange,
		TextDocumentCompletion:         sableHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: sableHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Sable LSP server...")

	// Serve over standard input/output, the transport editors use for LSP.
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Sable LSP server:", err)
		os.Exit(1)
	}
}
