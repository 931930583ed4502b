package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "github.com/jclec/hikari/internal/platform/testkit"
)

func TestParseLevel_AllBranches(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"fatal", "fatal"},
		{"panic", "panic"},
		{"", "info"},
		{"   nonsense   ", "info"},
	}
	for _, c := range cases {
		lvl := parseLevel(c.in)
		if strings.ToLower(lvl.String()) != c.want {
			t.Fatalf("parseLevel(%q) = %q, want %q", c.in, lvl, c.want)
		}
	}
}

func TestInit_Get_Named_C(t *testing.T) {
	var buf bytes.Buffer

	Init(Options{
		Level:     "info",
		Format:    "json",
		Service:   "hikari",
		Component: "root",
		Writer:    &buf,
	})

	Get().Info().Str("k", "v").Msg("root-msg")
	Named("graph").Info().Msg("named-msg")

	ctx := WithRequest(context.Background(), "req-123")
	ctx = WithRun(ctx, "run-456")
	C(ctx).Info().Msg("ctx-msg")

	// empty ctx child still logs
	C(context.Background()).Info().Msg("ctx-empty")

	out := buf.String()

	kit.MustContain(t, out, "root-msg")
	kit.MustContain(t, out, "named-msg")
	kit.MustContain(t, out, "ctx-msg")
	kit.MustContain(t, out, "ctx-empty")
	kit.MustContain(t, out, "graph")
	kit.MustContain(t, out, "request_id")
	kit.MustContain(t, out, "req-123")
	kit.MustContain(t, out, "run_id")
	kit.MustContain(t, out, "run-456")
	kit.MustContain(t, out, "hikari")
	kit.MustContain(t, out, "go_version")
}

func TestWithRequest_EmptyIDIsNoop(t *testing.T) {
	ctx := context.Background()
	if WithRequest(ctx, "") != ctx {
		t.Fatal("empty request id should not annotate ctx")
	}
	if WithRun(ctx, "") != ctx {
		t.Fatal("empty run id should not annotate ctx")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_SERVICE", "svc-b")
	t.Setenv("LOG_COMPONENT", "comp-b")
	t.Setenv("LOG_CALLER", "true")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" {
		t.Fatalf("FromEnv level/format = %q/%q", opt.Level, opt.Format)
	}
	if opt.Service != "svc-b" || opt.Component != "comp-b" || !opt.WithCaller {
		t.Fatalf("FromEnv fields = %+v", opt)
	}
}
