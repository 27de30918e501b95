package llm

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"isCorrect": true}`, `{"isCorrect": true}`},
		{"prose wrapped", `Sure! Here is the grade: {"isCorrect": false, "message": "no"} Hope that helps.`,
			`{"isCorrect": false, "message": "no"}`},
		{"markdown fence", "```json\n{\"isCorrect\": true}\n```", `{"isCorrect": true}`},
		{"nested object", `{"a": {"b": 1}, "c": 2}`, `{"a": {"b": 1}, "c": 2}`},
		{"braces inside strings", `{"message": "use { and } carefully"}`, `{"message": "use { and } carefully"}`},
		{"escaped quote in string", `{"message": "she said \"hi{\" loudly"}`, `{"message": "she said \"hi{\" loudly"}`},
		{"no object", "I cannot grade this.", ""},
		{"unbalanced", `{"a": 1`, ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.in); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
