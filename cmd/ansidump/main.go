// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/ansidump/main.go
// Summary: Runs a command under a pty, parses its styled output and dumps
// the span structure, optionally archiving the capture.
// Usage: ansidump [-w N] [-h N] [-json] [-save] [--] command [args...]
//        ansidump -list | ansidump -show ID

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/framegrace/ansidoc/config"
	"github.com/framegrace/ansidoc/document"
	"github.com/framegrace/ansidoc/store"
)

func main() {
	var (
		width  = flag.Int("w", 0, "pty width (default: current terminal)")
		height = flag.Int("h", 0, "pty height (default: current terminal)")
		asJSON = flag.Bool("json", false, "emit the document as JSON")
		save   = flag.Bool("save", false, "archive the capture")
		dbPath = flag.String("db", "", "archive database path")
		list   = flag.Bool("list", false, "list archived captures")
		show   = flag.Int64("show", 0, "dump an archived capture by id")
	)
	flag.Parse()

	if *list || *show != 0 {
		st := openStore(*dbPath)
		defer st.Close()
		if *list {
			listCaptures(st)
			return
		}
		text, err := st.Load(*show)
		if err != nil {
			log.Fatalf("ansidump: %v", err)
		}
		dump(text, *asJSON)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: ansidump [flags] command [args...]")
		os.Exit(2)
	}

	raw, err := capture(args, *width, *height)
	if err != nil {
		log.Fatalf("ansidump: %v", err)
	}
	text := document.Parse(raw)

	if *save {
		st := openStore(*dbPath)
		defer st.Close()
		id, err := st.Save(strings.Join(args, " "), text)
		if err != nil {
			log.Fatalf("ansidump: save: %v", err)
		}
		log.Printf("Dump: Saved capture %d (%d lines)", id, len(text))
	}

	dump(text, *asJSON)
}

// capture runs a command under a pty and returns everything it wrote.
func capture(args []string, width, height int) ([]byte, error) {
	if width == 0 || height == 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if width == 0 {
				width = w
			}
			if height == 0 {
				height = h
			}
		}
	}
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("COLUMNS=%d", width),
		fmt.Sprintf("LINES=%d", height),
		"TERM=xterm-256color",
	)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(height),
		Cols: uint16(width),
	})
	if err != nil {
		return nil, fmt.Errorf("start pty: %w", err)
	}
	defer ptmx.Close()

	// Raw mode disables echo so terminal replies are not captured as output.
	if _, err := term.MakeRaw(int(ptmx.Fd())); err != nil {
		return nil, fmt.Errorf("make pty raw: %w", err)
	}

	// The pty read errors with EIO once the child exits; that is EOF here.
	out, _ := io.ReadAll(ptmx)
	if err := cmd.Wait(); err != nil {
		log.Printf("Dump: Command exited: %v", err)
	}
	return out, nil
}

func openStore(path string) *store.Store {
	if path == "" {
		path = config.String("archive_db", defaultDBPath())
	}
	st, err := store.Open(path)
	if err != nil {
		log.Fatalf("ansidump: %v", err)
	}
	return st
}

func defaultDBPath() string {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "ansidump.db"
	}
	return filepath.Join(cache, "ansidoc", "captures.db")
}

func listCaptures(st *store.Store) {
	captures, err := st.List(0)
	if err != nil {
		log.Fatalf("ansidump: %v", err)
	}
	for _, c := range captures {
		fmt.Printf("%6d  %s  %4d lines  %s\n",
			c.ID, c.CreatedAt.Format("2006-01-02 15:04:05"), c.Lines, c.Command)
	}
}

// jsonSpan is the wire shape of one span in -json mode.
type jsonSpan struct {
	Text  string `json:"text"`
	Style string `json:"style,omitempty"`
}

func dump(text document.Text, asJSON bool) {
	if asJSON {
		out := make([][]jsonSpan, len(text))
		for i, line := range text {
			spans := make([]jsonSpan, len(line))
			for j, s := range line {
				spans[j] = jsonSpan{Text: s.Content}
				if !s.Style.IsZero() {
					spans[j].Style = s.Style.String()
				}
			}
			out[i] = spans
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatalf("ansidump: encode: %v", err)
		}
		return
	}

	for i, line := range text {
		fmt.Printf("line %d:\n", i)
		for _, s := range line {
			fmt.Printf("  %-40q %s\n", s.Content, s.Style)
		}
	}
}
