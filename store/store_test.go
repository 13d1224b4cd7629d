// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: store/store_test.go
// Summary: Archive round-trip tests on a throwaway database.

package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/framegrace/ansidoc/document"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "captures.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTemp(t)

	text := document.ParseString("\x1b[1;32mPASS\x1b[m ok\t0.01s\nplain\n\x1b[48;5;17m styled bg")
	id, err := s.Save("go test ./...", text)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, text) {
		t.Fatalf("round trip:\n got  %+v\n want %+v", got, text)
	}
}

func TestLoadMissing(t *testing.T) {
	s := openTemp(t)
	if _, err := s.Load(42); err == nil {
		t.Fatal("expected error for missing capture")
	}
}

func TestListNewestFirst(t *testing.T) {
	s := openTemp(t)

	first, err := s.Save("first", document.ParseString("a\nb"))
	if err != nil {
		t.Fatalf("save first: %v", err)
	}
	second, err := s.Save("second", document.ParseString("c"))
	if err != nil {
		t.Fatalf("save second: %v", err)
	}

	caps, err := s.List(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(caps) != 2 {
		t.Fatalf("list returned %d captures", len(caps))
	}
	if caps[0].ID != second || caps[1].ID != first {
		t.Fatalf("order: %+v", caps)
	}
	if caps[0].Command != "second" || caps[0].Lines != 1 {
		t.Fatalf("capture meta: %+v", caps[0])
	}
	if caps[1].Lines != 2 {
		t.Fatalf("line count: %+v", caps[1])
	}
	if caps[0].CreatedAt.IsZero() {
		t.Fatal("created_at not populated")
	}
}

func TestDeleteCascades(t *testing.T) {
	s := openTemp(t)

	id, err := s.Save("doomed", document.ParseString("x\ny"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Load(id); err == nil {
		t.Fatal("capture still loadable after delete")
	}

	var n int
	if err := s.db.QueryRow(
		"SELECT COUNT(*) FROM capture_lines WHERE capture_id = ?", id,
	).Scan(&n); err != nil {
		t.Fatalf("count lines: %v", err)
	}
	if n != 0 {
		t.Fatalf("%d orphaned lines after delete", n)
	}
}

func TestEmptyDocument(t *testing.T) {
	s := openTemp(t)

	text := document.ParseString("")
	id, err := s.Save("true", text)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, text) {
		t.Fatalf("empty round trip: %+v", got)
	}
}
