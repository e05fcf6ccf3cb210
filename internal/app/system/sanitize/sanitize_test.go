package sanitize

import (
	"reflect"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain text stays", "plain text stays"},
		{"<b>bold</b> claims", "bold claims"},
		{"<script>alert('x')</script>ok", "ok"},
		{"  padded  ", "padded"},
		{"<img src=x onerror=alert(1)>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTextSlice(t *testing.T) {
	in := []string{"good pay", "<i>free</i> lunch", "<script></script>", "  "}
	want := []string{"good pay", "free lunch"}
	if got := TextSlice(in); !reflect.DeepEqual(got, want) {
		t.Errorf("TextSlice(%v) = %v, want %v", in, got, want)
	}
}
