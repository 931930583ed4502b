package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3}
	def := []int{9}
	got := IfEmpty(in, def)
	if len(got) != 3 || got[0] != 1 {
		t.Fatalf("IfEmpty returned wrong slice: %#v", got)
	}

	var empty []string
	def2 := []string{"x"}
	got2 := IfEmpty(empty, def2)
	if len(got2) != 1 || got2[0] != "x" {
		t.Fatalf("IfEmpty did not return default: %#v", got2)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("ok", "name"); got != "ok" {
		t.Fatalf("want ok got %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("want panic for empty name")
		}
	}()
	_ = MustString("   ", "name")
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"/graph/":   "/graph",
		" graph  ":  "/graph",
		"//graph//": "/graph",
		"/":         "", // should panic
		"":          "", // should panic
	}
	for in, want := range cases {
		if want == "" {
			func() {
				defer func() {
					if recover() == nil {
						t.Fatalf("want panic for %q", in)
					}
				}()
				_ = MustPrefix(in)
			}()
			continue
		}
		if got := MustPrefix(in); got != want {
			t.Fatalf("in %q want %q got %q", in, want, got)
		}
	}
}

func TestDerefAndPtr(t *testing.T) {
	t.Parallel()

	if Deref(nil) != "" {
		t.Fatal("Deref(nil) should be empty")
	}
	s := "v"
	if Deref(&s) != "v" {
		t.Fatal("Deref lost value")
	}
	if Ptr("") != nil {
		t.Fatal("Ptr of empty should be nil")
	}
	if p := Ptr("x"); p == nil || *p != "x" {
		t.Fatalf("Ptr roundtrip failed: %v", p)
	}
}
