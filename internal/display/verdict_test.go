package display

import (
	"strings"
	"testing"

	"github.com/openjudge/arbiter/internal/judge"
)

func TestFormatVerdict(t *testing.T) {
	idx := 2

	tests := []struct {
		name string
		resp judge.Response
		want []string
	}{
		{
			name: "accepted",
			resp: judge.Response{Verdict: judge.VerdictAccepted},
			want: []string{"accepted"},
		},
		{
			name: "wrong answer carries index",
			resp: judge.Response{Verdict: judge.VerdictWrongAnswer, FailedTestCaseIndex: &idx},
			want: []string{"wrong answer", "test case 2"},
		},
		{
			name: "compilation error carries message",
			resp: judge.Response{Verdict: judge.VerdictCompilationError, ErrorMessage: "expected ';'"},
			want: []string{"compilation error", "expected ';'"},
		},
		{
			name: "timeout",
			resp: judge.Response{Verdict: judge.VerdictTimeout, FailedTestCaseIndex: &idx},
			want: []string{"timeout", "test case 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := FormatVerdict(tt.resp)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("FormatVerdict() missing %q in %q", want, out)
				}
			}
		})
	}
}

func TestFormatVerdictTruncatesLongMessages(t *testing.T) {
	resp := judge.Response{
		Verdict:      judge.VerdictCompilationError,
		ErrorMessage: strings.Repeat("e", 5000),
	}
	out := FormatVerdict(resp)
	if len(out) > 2000 {
		t.Errorf("formatted verdict too long: %d bytes", len(out))
	}
	if !strings.Contains(out, "...") {
		t.Error("truncated message should carry an ellipsis")
	}
}
