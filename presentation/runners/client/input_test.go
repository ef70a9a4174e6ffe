package client

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestScanLines(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		limit     int
		wantLines []string
		wantSkips []int
	}{
		{name: "plain", in: "a\nbb\n", limit: 8, wantLines: []string{"a", "bb"}},
		{name: "crlf and blank lines", in: "a\r\n\r\n\nb\r\n", limit: 8, wantLines: []string{"a", "b"}},
		{name: "last line without newline", in: "a\nb", limit: 8, wantLines: []string{"a", "b"}},
		{name: "exactly at limit", in: "abcd\n", limit: 4, wantLines: []string{"abcd"}},
		{name: "one over limit", in: "abcde\nok\n", limit: 4, wantLines: []string{"ok"}, wantSkips: []int{5}},
		{name: "oversized trailing line", in: "ok\n" + strings.Repeat("x", 10), limit: 4, wantLines: []string{"ok"}, wantSkips: []int{10}},
		{
			name:      "longer than the read buffer",
			in:        strings.Repeat("x", 70000) + "\nok\n",
			limit:     65535,
			wantLines: []string{"ok"},
			wantSkips: []int{70001},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lines []string
			var skips []int
			err := scanLines(strings.NewReader(tt.in), tt.limit,
				func(line []byte) { lines = append(lines, string(line)) },
				func(length int) { skips = append(skips, length) },
			)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(lines, tt.wantLines) {
				t.Fatalf("lines = %q, want %q", lines, tt.wantLines)
			}
			if !reflect.DeepEqual(skips, tt.wantSkips) {
				t.Fatalf("skips = %v, want %v", skips, tt.wantSkips)
			}
		})
	}
}

func TestScanLines_ReturnsReadErrors(t *testing.T) {
	boom := errors.New("tty gone")
	err := scanLines(iotest.ErrReader(boom), 8, func([]byte) {}, func(int) {})
	if !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
}
