package sprite_test

import (
	"errors"
	"fmt"
	"testing"

	"spritec/sprite"
)

func TestRegistry_DedupIgnoresOrderAndSpacing(t *testing.T) {
	reg := sprite.NewRegistry("", nil)

	first, err := reg.Register(sprite.Ref{Filename: "a.png", Options: "width: 10; align: right", Line: 1})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	second, err := reg.Register(sprite.Ref{Filename: "a.png", Options: "align:right ;  width:10", Line: 7})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if first != second {
		t.Errorf("expected same placeholder, got %q and %q", first, second)
	}
	if reg.Len() != 1 {
		t.Errorf("expected 1 unique block, got %d", reg.Len())
	}
}

func TestRegistry_DefaultsShareBlockWithExplicitDefaults(t *testing.T) {
	reg := sprite.NewRegistry("", nil)

	first, err := reg.Register(sprite.Ref{Filename: "a.png"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	// resize "0" is false which is the default, so the merged records match
	second, err := reg.Register(sprite.Ref{Filename: "a.png", Options: "resize: 0"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if first != second {
		t.Errorf("expected same placeholder, got %q and %q", first, second)
	}
}

func TestRegistry_DistinctBlocks(t *testing.T) {
	reg := sprite.NewRegistry("", nil)

	tokens := make(map[string]bool)
	for _, ref := range []sprite.Ref{
		{Filename: "a.png"},
		{Filename: "b.png"},
		{Filename: "a.png", Options: "width: 30"},
		{Filename: "a.png", Options: "resize: yes"},
	} {
		token, err := reg.Register(ref)
		if err != nil {
			t.Fatalf("register %+v failed: %v", ref, err)
		}
		if tokens[token] {
			t.Errorf("placeholder %q issued twice", token)
		}
		tokens[token] = true
	}
	if reg.Len() != 4 {
		t.Errorf("expected 4 unique blocks, got %d", reg.Len())
	}
}

func TestRegistry_TokenFormat(t *testing.T) {
	reg := sprite.NewRegistry("MY_TOKEN", nil)

	token, err := reg.Register(sprite.Ref{Filename: "a.png"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token != "MY_TOKEN(1)" {
		t.Errorf("expected MY_TOKEN(1), got %q", token)
	}

	token, err = reg.Register(sprite.Ref{Filename: "b.png"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token != "MY_TOKEN(2)" {
		t.Errorf("expected MY_TOKEN(2), got %q", token)
	}
}

func TestRegistry_Validation(t *testing.T) {
	cases := []struct {
		name    string
		options string
		key     string
	}{
		{"unknown key", "bogus: 1", "bogus"},
		{"bad number", "width: abc", "width"},
		{"bad align", "align: top", "align"},
		{"bad valign", "valign: left", "valign"},
		{"bad repeat", "repeat: both", "repeat"},
		{"infinite number", "height: +Inf", "height"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := sprite.NewRegistry("", nil)
			_, err := reg.Register(sprite.Ref{Filename: "a.png", Options: tc.options})
			var oe *sprite.OptionError
			if !errors.As(err, &oe) {
				t.Fatalf("expected OptionError, got %v", err)
			}
			if oe.Key != tc.key {
				t.Errorf("expected error on key %q, got %q", tc.key, oe.Key)
			}
			if reg.Len() != 0 {
				t.Errorf("failed registration must not leave a block behind, got %d", reg.Len())
			}
		})
	}
}

func TestRegistry_EnumErrorListsAllowedValues(t *testing.T) {
	reg := sprite.NewRegistry("", nil)
	_, err := reg.Register(sprite.Ref{Filename: "a.png", Options: "align: up"})

	var oe *sprite.OptionError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OptionError, got %v", err)
	}
	want := []string{"block", "left", "center", "right"}
	if fmt.Sprint(oe.Allowed) != fmt.Sprint(want) {
		t.Errorf("expected allowed %v, got %v", want, oe.Allowed)
	}
}

func TestRegistry_EmptyFilename(t *testing.T) {
	reg := sprite.NewRegistry("", nil)
	if _, err := reg.Register(sprite.Ref{}); err == nil {
		t.Fatal("expected error for empty file name")
	}
}

func TestRegistry_EmptyClausesSkipped(t *testing.T) {
	reg := sprite.NewRegistry("", nil)

	first, err := reg.Register(sprite.Ref{Filename: "a.png", Options: ";; width: 10 ;;"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	second, err := reg.Register(sprite.Ref{Filename: "a.png", Options: "width: 10"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if first != second {
		t.Errorf("expected same placeholder, got %q and %q", first, second)
	}
}

func TestRegistry_LaterClausesWin(t *testing.T) {
	reg := sprite.NewRegistry("", nil)

	first, err := reg.Register(sprite.Ref{Filename: "a.png", Options: "width: 10; width: 20"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	second, err := reg.Register(sprite.Ref{Filename: "a.png", Options: "width: 20"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if first != second {
		t.Errorf("expected same placeholder, got %q and %q", first, second)
	}
}
