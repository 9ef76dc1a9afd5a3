package models

import (
	"encoding/json"
	"testing"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count    int
		expected int
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{95, 10},
		{100, 10},
		{101, 11},
	}

	for _, test := range tests {
		if got := TotalPages(test.count); got != test.expected {
			t.Errorf("TotalPages(%d) = %d, expected %d", test.count, got, test.expected)
		}
	}
}

func TestPosition(t *testing.T) {
	for page := 1; page <= 5; page++ {
		for index := 0; index < 10; index++ {
			expected := 10*(page-1) + index + 1
			if got := Position(page, index); got != expected {
				t.Errorf("Position(%d, %d) = %d, expected %d", page, index, got, expected)
			}
		}
	}
}

func TestRankingPage_Decode(t *testing.T) {
	body := `{
		"count": 23,
		"next": "http://localhost/api/rankings/?language=English&page=3",
		"previous": null,
		"results": [
			{"position": 11, "user": "alice", "score": 40},
			{"position": 12, "user": "bob", "score": 38}
		]
	}`

	var page RankingPage
	if err := json.Unmarshal([]byte(body), &page); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !page.HasNext() || page.HasPrevious() {
		t.Errorf("Expected next link only, got next=%v previous=%v", page.Next, page.Previous)
	}

	if page.TotalPages() != 3 {
		t.Errorf("Expected 3 pages, got %d", page.TotalPages())
	}

	entry, ok := page.FindUser("bob")
	if !ok || entry.Position != 12 {
		t.Errorf("Expected bob at position 12, got %+v (found=%v)", entry, ok)
	}

	if _, ok := page.FindUser(""); ok {
		t.Error("Anonymous user should never be found")
	}
}

func TestNilRankingPage(t *testing.T) {
	var page *RankingPage
	if page.HasNext() || page.HasPrevious() || page.TotalPages() != 0 {
		t.Error("nil page should report no links and no pages")
	}
}
