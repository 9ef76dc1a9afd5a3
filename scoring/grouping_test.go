package scoring

import (
	"testing"

	"github.com/ssugameworks/pajelingo/models"
)

func TestSumByUser_Group(t *testing.T) {
	records := []models.ScoreRecord{
		{User: "a", Game: 1, Score: 3},
		{User: "b", Game: 1, Score: 2},
		{User: "a", Game: 2, Score: 5},
	}

	entries := SumByUser.Group(records)

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].User != "a" || entries[0].Score != 8 || entries[0].Position != 1 {
		t.Errorf("Expected a=8 at 1, got %+v", entries[0])
	}
	if entries[1].User != "b" || entries[1].Score != 2 || entries[1].Position != 2 {
		t.Errorf("Expected b=2 at 2, got %+v", entries[1])
	}
}

func TestSumByUser_TiesKeepFirstSeenOrder(t *testing.T) {
	records := []models.ScoreRecord{
		{User: "x", Score: 4},
		{User: "y", Score: 1},
		{User: "z", Score: 4},
		{User: "y", Score: 3},
	}

	entries := SumByUser.Group(records)

	want := []string{"x", "y", "z"}
	for i, user := range want {
		if entries[i].User != user {
			t.Errorf("Position %d: expected %s, got %s", i+1, user, entries[i].User)
		}
	}
}

func TestSumByUser_Empty(t *testing.T) {
	if entries := SumByUser.Group(nil); len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestNone_Group(t *testing.T) {
	records := []models.ScoreRecord{
		{User: "a", Score: 3},
		{User: "a", Score: 5},
	}

	entries := None.Group(records)

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Position != 2 || entries[1].Score != 5 {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
	if None.Name() == SumByUser.Name() {
		t.Error("Strategies should have distinct names")
	}
}

func TestFindPosition(t *testing.T) {
	entries := SumByUser.Group([]models.ScoreRecord{
		{User: "a", Score: 1},
		{User: "b", Score: 9},
	})

	entry, found := FindPosition(entries, "a")
	if !found || entry.Position != 2 {
		t.Errorf("Expected a at position 2, got %+v (found=%v)", entry, found)
	}

	if _, found := FindPosition(entries, ""); found {
		t.Error("Anonymous user should never be found")
	}
	if _, found := FindPosition(entries, "c"); found {
		t.Error("Unknown user should not be found")
	}
}
