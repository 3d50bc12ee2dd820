package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "config error",
			code:    "E100",
			wantMsg: "Configuration file not found",
			wantCat: CategoryConfig,
		},
		{
			name:    "render error",
			code:    "E201",
			wantMsg: "Unknown view kind",
			wantCat: CategoryRender,
		},
		{
			name:    "publish error",
			code:    "E301",
			wantMsg: "Invalid publish target",
			wantCat: CategoryPublish,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "flag %q is required", "name")
	if err.Error() != `flag "name" is required` {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q", err.Category)
	}
}

func TestErrorString(t *testing.T) {
	err := New("E102").WithDetail("port out of range")
	if got := err.Error(); got != "E102: Invalid configuration value" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	err := New("E300").Wrap(io.ErrUnexpectedEOF)
	if !stderrors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is should find the wrapped error")
	}

	outer := fmt.Errorf("publishing: %w", err)
	if !stderrors.Is(outer, New("E300")) {
		t.Error("errors.Is should match by code")
	}
	if stderrors.Is(outer, New("E301")) {
		t.Error("errors.Is should not match a different code")
	}
	if Code(outer) != "E300" {
		t.Errorf("Code() = %q, want E300", Code(outer))
	}
	if Code(io.EOF) != "" {
		t.Error("Code() of a plain error should be empty")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E200") != nil {
		t.Error("FromError(nil) should be nil")
	}

	orig := New("E301")
	if got := FromError(fmt.Errorf("ctx: %w", orig), "E200"); got != orig {
		t.Error("FromError should return the wrapped VattrError")
	}

	got := FromError(io.EOF, "E200")
	if got.Code != "E200" || got.Wrapped != io.EOF {
		t.Errorf("FromError(io.EOF) = %+v", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E101").
		WithDetail("unexpected end of JSON input").
		WithSuggestion("Check that vattr.json is valid JSON").
		Wrap(io.ErrUnexpectedEOF)

	out := err.Format()
	for _, want := range []string{
		"ERROR E101: Invalid configuration file",
		"unexpected end of JSON input",
		"Cause: unexpected EOF",
		"Hint: Check that vattr.json is valid JSON",
		"Learn more: https://vango.dev/vattr/errors/E101",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}

	if got := err.FormatCompact(); got != "E101: Invalid configuration file (unexpected end of JSON input)" {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E400").WithDetail(`bad "value"`)

	var decoded map[string]string
	if jerr := json.Unmarshal([]byte(err.FormatJSON()), &decoded); jerr != nil {
		t.Fatalf("FormatJSON() is not valid JSON: %v", jerr)
	}
	if decoded["code"] != "E400" || decoded["category"] != "cli" || decoded["detail"] != `bad "value"` {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("aaa bbb ccc ddd", 7)
	if len(lines) != 2 || lines[0] != "aaa bbb" || lines[1] != "ccc ddd" {
		t.Errorf("wrapText = %q", lines)
	}
	if wrapText("   ", 10) != nil {
		t.Error("wrapText of blank text should be nil")
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("E100"); !ok {
		t.Error("E100 should be registered")
	}
	if _, ok := Lookup("E000"); ok {
		t.Error("E000 should not be registered")
	}
}
