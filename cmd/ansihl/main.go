// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/ansihl/main.go
// Summary: Highlights a source file and emits it as SGR escape text.
// Usage: ansihl [-style name] [-lexer name] file
// Notes: Re-parses its own output as a self check before printing.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"reflect"

	"github.com/framegrace/ansidoc/config"
	"github.com/framegrace/ansidoc/document"
	"github.com/framegrace/ansidoc/hlfmt"
)

func main() {
	var (
		styleName = flag.String("style", "", "chroma style name")
		lexerName = flag.String("lexer", "", "lexer name (default: detect)")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ansihl [-style name] [-lexer name] file")
		os.Exit(2)
	}
	path := flag.Arg(0)

	src, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("ansihl: %v", err)
	}

	name := *styleName
	if name == "" {
		name = config.String("highlight_style", "")
	}

	text := hlfmt.Highlight(path, src, *lexerName, name)
	rendered := text.AppendSGR(nil)

	// The emitted escapes must replay into the same document.
	if reparsed := document.Parse(rendered); !reflect.DeepEqual(reparsed, text) {
		log.Printf("Highlight: Re-parse mismatch for %s; output may render oddly", path)
	}

	os.Stdout.Write(rendered)
	fmt.Println()
}
