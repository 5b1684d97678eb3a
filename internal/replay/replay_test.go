package replay

import "testing"

func TestIs(t *testing.T) {
	for _, task := range []string{"scripted_investigation", "Scripted_Investigation", " SCRIPTED_INVESTIGATION "} {
		if !Is(task) {
			t.Errorf("Is(%q) = false, want true", task)
		}
	}
	if Is("research") {
		t.Error("Is(research) = true")
	}
}

func TestTranscript(t *testing.T) {
	records := Transcript()
	if len(records) == 0 {
		t.Fatal("transcript is empty")
	}

	if records[0].Role != "user" {
		t.Errorf("first record role = %q, want user", records[0].Role)
	}
	for i, r := range records {
		if r.Role == "" || r.Speaker == "" || r.Content == "" {
			t.Errorf("record %d has empty fields: %+v", i, r)
		}
		if r.Role != "user" && r.Role != "assistant" {
			t.Errorf("record %d role = %q", i, r.Role)
		}
	}

	// Callers get copies: mutating one result must not leak into the next.
	records[0].Content = "tampered"
	if Transcript()[0].Content == "tampered" {
		t.Error("Transcript returns shared backing storage")
	}
}
