package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	dom "github.com/jclec/hikari/internal/services/graph/domain"
)

type stubReader struct {
	words []string
	err   error
}

func (s stubReader) Read(context.Context) ([]string, error) { return s.words, s.err }

type captureSink struct {
	run *dom.Run
	err error
}

func (c *captureSink) Write(_ context.Context, run *dom.Run) error {
	c.run = run
	return c.err
}

var exampleWords = []string{"今朝", "今晩", "朝食", "食べる", "楽しい"}

func TestRun_BuildsDocument(t *testing.T) {
	sink := &captureSink{}
	svc := New(stubReader{words: exampleWords}, []dom.SinkPort{sink}, Config{})

	run, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if run.ID == "" {
		t.Error("run has no id")
	}
	if run.WordCount != len(exampleWords) {
		t.Errorf("WordCount = %d, want %d", run.WordCount, len(exampleWords))
	}
	if sink.run != run {
		t.Error("sink did not receive the run")
	}

	doc := run.Doc
	if got := doc.Components["今"]; !reflect.DeepEqual(got, []string{"今晩", "今朝"}) {
		t.Errorf("components[今] = %v", got)
	}
	if got := doc.RelatedWords["今朝"]; !reflect.DeepEqual(got, []string{"今晩", "朝食"}) {
		t.Errorf("related[今朝] = %v", got)
	}
	if got, ok := doc.RelatedTo("楽しい"); !ok || len(got) != 0 {
		t.Errorf("related[楽しい] = %v, %v", got, ok)
	}
}

func TestRun_SerialAndParallelAgree(t *testing.T) {
	words := []string{"日本語", "語学", "学校", "校長", "長い", "日", "今朝", "今朝", "楽しい"}

	serial := New(stubReader{words: words}, nil, Config{Workers: 1})
	parallel := New(stubReader{words: words}, nil, Config{Workers: 4})

	a, err := serial.Run(context.Background())
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	b, err := parallel.Run(context.Background())
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}

	if !reflect.DeepEqual(a.Doc.Components, b.Doc.Components) {
		t.Error("components diverge between worker counts")
	}
	if !reflect.DeepEqual(a.Doc.RelatedWords, b.Doc.RelatedWords) {
		t.Error("related_words diverge between worker counts")
	}
}

func TestRun_SortsWordListBeforeIndexing(t *testing.T) {
	shuffled := []string{"楽しい", "食べる", "今朝", "朝食", "今晩"}

	a, err := New(stubReader{words: exampleWords}, nil, Config{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	loaded := append([]string(nil), shuffled...)
	b, err := New(stubReader{words: loaded}, nil, Config{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !sort.StringsAreSorted(loaded) {
		t.Errorf("word list not sorted after Run: %v", loaded)
	}
	if !reflect.DeepEqual(a.Doc, b.Doc) {
		t.Error("documents diverge across input orderings")
	}
}

func TestRun_ReaderErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	svc := New(stubReader{err: boom}, []dom.SinkPort{&captureSink{}}, Config{})

	if _, err := svc.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run err = %v, want boom", err)
	}
}

func TestRun_SinkErrorAborts(t *testing.T) {
	bad := &captureSink{err: errors.New("sink down")}
	after := &captureSink{}
	svc := New(stubReader{words: exampleWords}, []dom.SinkPort{bad, after}, Config{})

	if _, err := svc.Run(context.Background()); err == nil {
		t.Fatal("Run swallowed sink error")
	}
	if after.run != nil {
		t.Error("later sink ran after an earlier sink failed")
	}
}

func TestFileSink_WritesDeterministicJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "output.json")

	svc := New(stubReader{words: exampleWords}, []dom.SinkPort{NewFileSink(path)}, Config{})

	var outs []string
	for i := 0; i < 3; i++ {
		if _, err := svc.Run(context.Background()); err != nil {
			t.Fatalf("Run: %v", err)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		outs = append(outs, string(b))
	}

	for i := 1; i < len(outs); i++ {
		if outs[i] != outs[0] {
			t.Fatal("output bytes differ across identical runs")
		}
	}
	if !strings.Contains(outs[0], "今朝") || strings.Contains(outs[0], `\u`) {
		t.Errorf("kanji not emitted literally: %s", outs[0])
	}
	if !strings.Contains(outs[0], `"楽しい":[]`) {
		t.Errorf("isolated word missing its empty array: %s", outs[0])
	}
}

func TestFileSink_BadPath(t *testing.T) {
	sink := NewFileSink(filepath.Join(t.TempDir(), "no", "such", "dir", "out.json"))
	svc := New(stubReader{words: exampleWords}, []dom.SinkPort{sink}, Config{})
	if _, err := svc.Run(context.Background()); err == nil {
		t.Fatal("expected error for unwritable output path")
	}
}
