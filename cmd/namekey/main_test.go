package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTokenizeCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t, "")

	out, _, err := runCLI(t, []string{"tokenize", "--json", "张三", "A b"}, env.configPath)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	var results []struct {
		Name   string `json:"name"`
		Tokens []struct {
			Class  string `json:"class"`
			Source string `json:"source"`
			Target string `json:"target"`
		} `json:"tokens"`
	}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	first := results[0].Tokens
	if len(first) != 2 || first[0].Target != "ZHANG" || first[1].Target != "SAN" || first[0].Class != "phonetic" {
		t.Fatalf("unexpected tokens for 张三: %+v", first)
	}
	second := results[1].Tokens
	if len(second) != 2 || second[0].Source != "A" || second[1].Source != "b" || second[1].Class != "latin" {
		t.Fatalf("unexpected tokens for \"A b\": %+v", second)
	}
}

func TestTokenizeCommandTable(t *testing.T) {
	env := setupCLITestEnv(t, "")

	out, _, err := runCLI(t, []string{"tokenize", "单田"}, env.configPath)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	requireContains(t, out, "SHAN")
	requireContains(t, out, "TIAN")
	requireContains(t, out, "Class")
}

func TestTokenizeDegradedEngine(t *testing.T) {
	env := setupCLITestEnv(t, "\n[transliteration]\nphonetic_ruleset = \"Han-Klingon\"\n")

	out, _, err := runCLI(t, []string{"tokenize", "张三"}, env.configPath)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	requireContains(t, out, "phonetic engine unavailable")

	out, _, err = runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "[WARN] degraded")
}

func TestSortKeyCommand(t *testing.T) {
	env := setupCLITestEnv(t, "")

	out, _, err := runCLI(t, []string{"sortkey", "--json", "张三"}, env.configPath)
	if err != nil {
		t.Fatalf("sortkey: %v", err)
	}
	var rows []sortKeyRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 || rows[0].SortKey != "ZHANG SAN" || rows[0].PhoneticName != "ZHANG SAN" {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if strings.Join(rows[0].LookupKeys, ",") != "ZHANGSAN,ZS,SAN" {
		t.Fatalf("unexpected lookup keys %v", rows[0].LookupKeys)
	}
}

func TestStatusCommand(t *testing.T) {
	env := setupCLITestEnv(t, "")

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "== Transliteration ==")
	requireContains(t, out, "[OK] ready")
	requireContains(t, out, "[INFO] 44")
	requireContains(t, out, "[OK] 3 groups")
	requireContains(t, out, "[OK] 0 contacts")
}

func TestGroupsCommands(t *testing.T) {
	env := setupCLITestEnv(t, "")

	out, _, err := runCLI(t, []string{"groups", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("groups list: %v", err)
	}
	requireContains(t, out, "Family")
	requireContains(t, out, "content://com.android.contacts.localgroups/local-groups/1")

	out, _, err = runCLI(t, []string{"groups", "add", "Climbing", "--count", "3"}, env.configPath)
	if err != nil {
		t.Fatalf("groups add: %v", err)
	}
	requireContains(t, out, "local-groups/4")

	if _, _, err := runCLI(t, []string{"groups", "rename", "4", "Bouldering"}, env.configPath); err != nil {
		t.Fatalf("groups rename: %v", err)
	}
	if _, _, err := runCLI(t, []string{"groups", "rename", "99", "Ghost"}, env.configPath); err == nil {
		t.Fatal("expected rename of missing group to fail")
	}
	out, _, err = runCLI(t, []string{"groups", "delete", "1", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("groups delete: %v", err)
	}
	requireContains(t, out, "Deleted 2 group(s)")

	out, _, err = runCLI(t, []string{"groups", "list", "--json", "--sort", "title"}, env.configPath)
	if err != nil {
		t.Fatalf("groups list json: %v", err)
	}
	var rows []struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
		Count int64  `json:"count"`
	}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 || rows[0].Title != "Bouldering" || rows[0].Count != 3 || rows[1].Title != "Work" {
		t.Fatalf("unexpected groups %+v", rows)
	}

	if _, _, err := runCLI(t, []string{"groups", "delete", "abc"}, env.configPath); err == nil {
		t.Fatal("expected invalid id error")
	}
}

const cliPreload = `{"contacts":[
  {"data":[{"@mimetype":"{{@$StructuredName.CONTENT_ITEM_TYPE}}","@$StructuredName.DISPLAY_NAME":"张三"}]},
  {"data":[{"@mimetype":"{{@$StructuredName.CONTENT_ITEM_TYPE}}","@$StructuredName.GIVEN_NAME":"Ann","@$StructuredName.FAMILY_NAME":"Lee"}]}
]}`

func TestContactsImportListSearch(t *testing.T) {
	env := setupCLITestEnv(t, "")
	file := filepath.Join(env.baseDir, "preloaded_contacts.json")
	if err := os.WriteFile(file, []byte(cliPreload), 0o644); err != nil {
		t.Fatalf("write preload: %v", err)
	}

	out, _, err := runCLI(t, []string{"contacts", "import", file}, env.configPath)
	if err != nil {
		t.Fatalf("contacts import: %v", err)
	}
	requireContains(t, out, "Imported 2 contact(s) with 2 data row(s)")

	out, _, err = runCLI(t, []string{"contacts", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("contacts list: %v", err)
	}
	requireContains(t, out, "Ann Lee")
	requireContains(t, out, "ZHANG SAN")
	if strings.Index(out, "Ann Lee") > strings.Index(out, "张三") {
		t.Fatalf("expected Ann Lee before 张三 in sort order:\n%s", out)
	}

	out, _, err = runCLI(t, []string{"contacts", "search", "zs"}, env.configPath)
	if err != nil {
		t.Fatalf("contacts search: %v", err)
	}
	requireContains(t, out, "张三")
	if strings.Contains(out, "Ann Lee") {
		t.Fatalf("unexpected match:\n%s", out)
	}

	out, _, err = runCLI(t, []string{"contacts", "search", "nobody"}, env.configPath)
	if err != nil {
		t.Fatalf("contacts search: %v", err)
	}
	requireContains(t, out, `No contacts match "nobody"`)
}

func TestContactsImportWithoutFile(t *testing.T) {
	env := setupCLITestEnv(t, "")
	if _, _, err := runCLI(t, []string{"contacts", "import"}, env.configPath); err == nil {
		t.Fatal("expected error when no preload file is configured")
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t, "")

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.configPath)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
}

func TestInvalidConfigFails(t *testing.T) {
	env := setupCLITestEnv(t, "\n[transliteration]\ncache_size = -1\n")
	if _, _, err := runCLI(t, []string{"status"}, env.configPath); err == nil {
		t.Fatal("expected invalid config to fail")
	}
}
