package utils

import "testing"

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{
			name:  "bare object",
			input: `{"relevant": true}`,
			want:  `{"relevant": true}`,
			found: true,
		},
		{
			name:  "surrounded by prose",
			input: "Sure! Here is the classification:\n{\"mode\": \"arrivals\"}\nLet me know if you need more.",
			want:  `{"mode": "arrivals"}`,
			found: true,
		},
		{
			name:  "nested objects",
			input: `prefix {"a": {"b": 1}, "c": 2} suffix`,
			want:  `{"a": {"b": 1}, "c": 2}`,
			found: true,
		},
		{
			name:  "braces inside strings",
			input: `{"reasoning": "uses { and } literally"}`,
			want:  `{"reasoning": "uses { and } literally"}`,
			found: true,
		},
		{
			name:  "escaped quote inside string",
			input: `{"reasoning": "say \"hello}\" there"}`,
			want:  `{"reasoning": "say \"hello}\" there"}`,
			found: true,
		},
		{
			name:  "no object",
			input: "just plain prose",
			found: false,
		},
		{
			name:  "unbalanced",
			input: `{"oops": true`,
			found: false,
		},
		{
			name:  "empty input",
			input: "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractJSONObject(tt.input)
			if found != tt.found {
				t.Fatalf("Expected found=%v, got %v", tt.found, found)
			}
			if found && got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
