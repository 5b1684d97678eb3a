package domains

import "testing"

func TestInfer_WholeWord(t *testing.T) {
	set := Infer("I love the ETF market")
	if _, ok := set["finance"]; !ok {
		t.Errorf("expected finance domain, got %v", set)
	}
}

func TestInfer_NoPartialWordMatch(t *testing.T) {
	set := Infer("fundamentally")
	if _, ok := set["finance"]; ok {
		t.Error("expected no finance domain for 'fundamentally' (partial match of 'fund')")
	}
}

func TestInfer_PhraseMatch(t *testing.T) {
	set := Infer("the garden gnome has moved again")
	if _, ok := set["gnome"]; !ok {
		t.Errorf("expected gnome domain, got %v", set)
	}
}

func TestInfer_CaseInsensitive(t *testing.T) {
	set := Infer("A SONNET about the LANGUID MOON")
	if _, ok := set["poetry"]; !ok {
		t.Errorf("expected poetry domain, got %v", set)
	}
}

func TestInfer_Punctuation(t *testing.T) {
	set := Infer("stocks, bonds. And a portfolio!")
	if _, ok := set["finance"]; !ok {
		t.Errorf("expected finance domain, got %v", set)
	}
}

func TestInfer_Empty(t *testing.T) {
	if set := Infer(""); len(set) != 0 {
		t.Errorf("expected empty set for empty input, got %v", set)
	}
	if set := Infer("   \n\t"); len(set) != 0 {
		t.Errorf("expected empty set for blank input, got %v", set)
	}
}

func TestInfer_MultipleDomains(t *testing.T) {
	set := Infer("please draft a letter about the tennis tournament schedule")
	for _, want := range []string{"drafting", "sports", "schedule"} {
		if _, ok := set[want]; !ok {
			t.Errorf("expected %s domain, got %v", want, set)
		}
	}
}

func TestTags_SortedAndPrefixed(t *testing.T) {
	tags := Tags("a poem about my investment portfolio")
	want := []string{"domain:finance", "domain:poetry"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestTags_EmptyIsNil(t *testing.T) {
	if tags := Tags("xyzzy qwerty"); tags != nil {
		t.Errorf("expected nil tags, got %v", tags)
	}
}

func TestIntersects(t *testing.T) {
	a := map[string]struct{}{"finance": {}, "poetry": {}}
	b := map[string]struct{}{"poetry": {}}
	c := map[string]struct{}{"gnome": {}}

	if !Intersects(a, b) {
		t.Error("expected a and b to intersect")
	}
	if Intersects(a, c) {
		t.Error("expected a and c not to intersect")
	}
	if Intersects(a, nil) {
		t.Error("expected no intersection with nil set")
	}
}
