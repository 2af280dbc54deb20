package project

import (
	"os"
	"path/filepath"
	"testing"

	"unify/internal/strlit"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndRules(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[format]
quote = "\""
escape-simple = "backslash"
fstring-quote = "depended"

[files]
extensions = [".py", ".pyi"]
`)

	cfg, err := Load(filepath.Join(dir, ConfigFileName))
	if err != nil {
		t.Fatal(err)
	}

	rules, err := cfg.Rules(strlit.DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	if rules.PreferredQuote != '"' {
		t.Errorf("quote = %q", string(rules.PreferredQuote))
	}
	if rules.EscapeSimple != strlit.EscapeBackslash {
		t.Errorf("escape = %v", rules.EscapeSimple)
	}
	if rules.FStringExprQuote != strlit.ExprQuoteDepended {
		t.Errorf("fstring = %v", rules.FStringExprQuote)
	}

	exts := cfg.Extensions()
	if len(exts) != 2 || exts[1] != ".pyi" {
		t.Errorf("extensions = %v", exts)
	}
}

func TestEmptyConfigKeepsDefaults(t *testing.T) {
	var cfg Config
	rules, err := cfg.Rules(strlit.DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	if rules != strlit.DefaultRules() {
		t.Errorf("rules = %+v", rules)
	}
	if got := cfg.Extensions(); len(got) != 1 || got[0] != ".py" {
		t.Errorf("extensions = %v", got)
	}
}

func TestBadValuesRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[format]\nquote = \"`\"\n")

	cfg, err := Load(filepath.Join(dir, ConfigFileName))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Rules(strlit.DefaultRules()); err == nil {
		t.Error("expected an error for a backtick quote")
	}
}

func TestUnknownKeyRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[format]\nqoute = \"'\"\n")

	if _, err := Load(filepath.Join(dir, ConfigFileName)); err == nil {
		t.Error("expected an error for a misspelled key")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[format]\nquote = \"'\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, ok, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("config not found")
	}
	if cfg.Format.Quote != "'" {
		t.Errorf("quote = %q", cfg.Format.Quote)
	}
}

func TestDiscoverMissing(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("unexpectedly found a config")
	}
}
