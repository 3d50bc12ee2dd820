package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/vattr/internal/config"
	"github.com/vango-dev/vattr/internal/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(&app{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		json string
		want string
	}{
		{`"main"`, `id="main"`},
		{`""`, `id=""`},
		{`true`, `id`},
		{`false`, ``},
		{`null`, ``},
		{`42`, `id="42"`},
		{`1.5`, `id="1.5"`},
		{`-0.25`, `id="-0.25"`},
	}

	for _, tt := range tests {
		t.Run(tt.json, func(t *testing.T) {
			out, err := execute(t, "eval", "--name", "id", "--json="+tt.json)
			if err != nil {
				t.Fatalf("eval error = %v", err)
			}
			if got := strings.TrimSuffix(out, "\n"); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvalDebug(t *testing.T) {
	out, err := execute(t, "eval", "--name", "x", "--json", `"a"`, "--debug")
	if err != nil {
		t.Fatal(err)
	}
	if out != "String(\"a\")\nx=\"a\"\n" {
		t.Errorf("got %q", out)
	}
}

func TestEvalErrors(t *testing.T) {
	if _, err := execute(t, "eval", "--json", "1"); errors.Code(err) != "E400" {
		t.Errorf("missing name: error = %v, want E400", err)
	}
	if _, err := execute(t, "eval", "--name", "x", "--json", "[1]"); errors.Code(err) != "E400" {
		t.Errorf("array: error = %v, want E400", err)
	}
	if _, err := execute(t, "eval", "--name", "x", "--json", "{"); errors.Code(err) != "E400" {
		t.Errorf("bad json: error = %v, want E400", err)
	}
}

func TestEvalTrailingInput(t *testing.T) {
	for _, in := range []string{`"a" "b"`, `1 2`, `true }`} {
		if _, err := execute(t, "eval", "--name", "x", "--json="+in); errors.Code(err) != "E400" {
			t.Errorf("--json=%s: error = %v, want E400", in, err)
		}
	}
}

func TestReportError(t *testing.T) {
	publishErr := errors.New("E301").WithDetail("bucket missing")

	tests := []struct {
		name   string
		err    error
		format string
		want   string
	}{
		{"compact", publishErr, "compact", "E301: Invalid publish target (bucket missing)\n"},
		{"plain error is input error", io.ErrUnexpectedEOF, "compact", "E400: Invalid input\n"},
		{"json", publishErr, "json", `{"code":"E301","category":"publish","message":"Invalid publish target","detail":"bucket missing","docUrl":"https://vango.dev/vattr/errors/E301"}` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(&buf, tt.err, tt.format, true)
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestReportErrorText(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, errors.New("E400").WithDetail("--name is required"), "text", true)
	out := buf.String()
	if !strings.Contains(out, "ERROR E400: Invalid input") || !strings.Contains(out, "--name is required") {
		t.Errorf("text output:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Error("colors should be disabled")
	}

	buf.Reset()
	reportError(&buf, errors.New("E400"), "text", false)
	if !strings.Contains(buf.String(), "\033[") {
		t.Error("colors should be enabled")
	}
	reportError(io.Discard, errors.New("E400"), "text", true)
}

func TestErrorFormatFlag(t *testing.T) {
	a := &app{}
	cmd := newRootCmd(a)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--error-format", "xml", "version"})
	if err := cmd.Execute(); errors.Code(err) != "E400" {
		t.Fatalf("error = %v, want E400", err)
	}
	if a.errorFormat != "text" {
		t.Errorf("errorFormat = %q, want fallback to text", a.errorFormat)
	}
}

func TestDecodeAttributesKeepsOrder(t *testing.T) {
	specs, err := decodeAttributes(nil, strings.NewReader(`{"z": "1", "a": true, "m": null, "b": 2}`))
	if err != nil {
		t.Fatalf("decodeAttributes() error = %v", err)
	}
	var names []string
	for _, s := range specs {
		names = append(names, s.Name)
	}
	if got := strings.Join(names, ","); got != "z,a,m,b" {
		t.Errorf("order = %s", got)
	}

	if _, err := decodeAttributes(nil, strings.NewReader(`[1]`)); errors.Code(err) != "E400" {
		t.Errorf("array: error = %v, want E400", err)
	}
}

func TestRenderFromFile(t *testing.T) {
	dir := t.TempDir()
	attrs := filepath.Join(dir, "attrs.json")
	if err := os.WriteFile(attrs, []byte(`{"type": "submit", "disabled": false, "autofocus": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "render", "--file", attrs, "--tag", "button", "--text", "Save")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if want := "<button type=\"submit\" autofocus>Save</button>\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderToFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out", "index.html")
	if _, err := execute(t, "render", "--page", "--out", dest); err != nil {
		t.Fatalf("render error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	for _, want := range []string{"<!DOCTYPE html>", `id="demo"`, `aria-label="demo"`, `data-ready`, `data-version="v`} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
	for _, absent := range []string{"hidden", "title="} {
		if strings.Contains(html, absent) {
			t.Errorf("output should not contain %q", absent)
		}
	}
}

func TestRenderBadTarget(t *testing.T) {
	if _, err := execute(t, "render", "--out", "s3://bucket-only"); errors.Code(err) != "E301" {
		t.Errorf("error = %v, want E301", err)
	}
}

func TestRenderPublishWithoutTarget(t *testing.T) {
	if _, err := execute(t, "render", "--publish"); errors.Code(err) != "E400" {
		t.Errorf("error = %v, want E400", err)
	}
}

func TestVersionShort(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if out != version+"\n" {
		t.Errorf("got %q", out)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New()
	cfg.Log.Level = "loud"
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "--config", dir, "version"); errors.Code(err) != "E102" {
		t.Errorf("error = %v, want E102", err)
	}
}

func newTestDemo(t *testing.T) (*demo, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	d, err := newDemo(ctx, config.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("newDemo() error = %v", err)
	}
	t.Cleanup(d.close)

	srv := httptest.NewServer(d.router())
	t.Cleanup(srv.Close)
	return d, srv
}

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s status = %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func TestServePage(t *testing.T) {
	d, srv := newTestDemo(t)

	page := get(t, srv.URL+"/")
	if !strings.Contains(page, `<div id="counter" data-count="0" title="0 is a multiple of three">`) {
		t.Errorf("initial page:\n%s", page)
	}
	if !strings.Contains(page, "<!--<() />-->") {
		t.Error("page should contain the unit marker")
	}

	d.count.Set(1)
	page = get(t, srv.URL+"/")
	if !strings.Contains(page, `<div id="counter" data-count="1" data-odd>`) {
		t.Errorf("page after tick:\n%s", page)
	}
}

func TestServeMetrics(t *testing.T) {
	_, srv := newTestDemo(t)

	get(t, srv.URL+"/")
	metrics := get(t, srv.URL+"/metrics")
	for _, want := range []string{"vattr_views_total", "vattr_attributes_resolved_total", "vattr_http_requests_total", "go_goroutines"} {
		if !strings.Contains(metrics, want) {
			t.Errorf("metrics missing %s", want)
		}
	}
}
