package command

import (
	"errors"
	"testing"

	apperrors "github.com/abismo-rpg/comandos/internal/platform/errors"
)

func validCommand() Command {
	return Command{
		Command:  "ls -la",
		Title:    "List files",
		Category: "Geral",
		Response: "Lists every file in the current directory.",
	}
}

func TestValidateAcceptsCompleteRecord(t *testing.T) {
	if err := validCommand().Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateRejectsEachMissingField(t *testing.T) {
	mutations := map[string]func(*Command){
		"command":  func(c *Command) { c.Command = "" },
		"title":    func(c *Command) { c.Title = "   " },
		"category": func(c *Command) { c.Category = "" },
		"response": func(c *Command) { c.Response = "\n" },
	}
	for field, mutate := range mutations {
		cmd := validCommand()
		mutate(&cmd)
		err := cmd.Validate()
		if err == nil {
			t.Fatalf("expected error for missing %s", field)
		}
		var domainErr *apperrors.Error
		if !errors.As(err, &domainErr) {
			t.Fatalf("expected domain error, got %T", err)
		}
		if domainErr.Code != apperrors.CodeCommandFieldRequired {
			t.Fatalf("code = %q, want %q", domainErr.Code, apperrors.CodeCommandFieldRequired)
		}
		if domainErr.Metadata["Field"] != field {
			t.Fatalf("field metadata = %q, want %q", domainErr.Metadata["Field"], field)
		}
	}
}

func TestCategoryChoiceNewTextWins(t *testing.T) {
	cases := []struct {
		choice CategoryChoice
		want   string
	}{
		{CategoryChoice{Existing: "Geral", New: ""}, "Geral"},
		{CategoryChoice{Existing: "Geral", New: "Hollows"}, "Hollows"},
		{CategoryChoice{Existing: "", New: "  Quincys  "}, "Quincys"},
		{CategoryChoice{Existing: "Geral", New: "   "}, "Geral"},
		{CategoryChoice{}, ""},
	}
	for _, tc := range cases {
		if got := tc.choice.Resolve(); got != tc.want {
			t.Fatalf("resolve(%+v) = %q, want %q", tc.choice, got, tc.want)
		}
	}
}

func TestImageKey(t *testing.T) {
	if got := ImageKey("historia"); got != "assets/historia.jpg" {
		t.Fatalf("image key = %q, want %q", got, "assets/historia.jpg")
	}
	if got := ImageKey("  ls -la  "); got != "assets/ls -la.jpg" {
		t.Fatalf("image key = %q, want %q", got, "assets/ls -la.jpg")
	}
}

func TestGroupByCategoryKeepsFetchOrder(t *testing.T) {
	commands := []Command{
		{ID: "1", Command: "a", Category: "Hollows"},
		{ID: "2", Command: "b", Category: "Geral"},
		{ID: "3", Command: "c", Category: "Hollows"},
	}
	grouped := GroupByCategory(commands)
	if len(grouped) != 2 {
		t.Fatalf("groups = %d, want 2", len(grouped))
	}
	hollows := grouped["Hollows"]
	if len(hollows) != 2 || hollows[0].ID != "1" || hollows[1].ID != "3" {
		t.Fatalf("Hollows bucket out of order: %+v", hollows)
	}

	total := 0
	for _, bucket := range grouped {
		total += len(bucket)
	}
	if total != len(commands) {
		t.Fatalf("bucketed %d records, want %d", total, len(commands))
	}
}

func TestSortedCategoriesPinsGeralFirst(t *testing.T) {
	grouped := map[string][]Command{
		"Shinigamis": nil,
		"Geral":      nil,
		"Hollows":    nil,
		"Arrancars":  nil,
	}
	got := SortedCategories(grouped)
	want := []string{"Geral", "Arrancars", "Hollows", "Shinigamis"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
}

func TestSortedCategoriesWithoutGeral(t *testing.T) {
	got := SortedCategories(map[string][]Command{"B": nil, "A": nil})
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("categories = %v, want [A B]", got)
	}
}

func TestParagraphs(t *testing.T) {
	got := Paragraphs("first block\n\nsecond block\n")
	if len(got) != 2 || got[0] != "first block" || got[1] != "second block" {
		t.Fatalf("paragraphs = %v", got)
	}
	if got := Paragraphs(""); len(got) != 0 {
		t.Fatalf("paragraphs of empty = %v, want none", got)
	}
}
