package transcript_test

import (
	"testing"

	"ytsum/pkg/transcript"

	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "empty", in: "", out: ""},
		{name: "only blank lines", in: "\n \r\n\t\n", out: ""},
		{name: "trims whitespace", in: "  hello  \n\tworld\t", out: "hello\nworld"},
		{name: "drops carriage returns", in: "one\r\ntwo\r\n", out: "one\ntwo"},
		{name: "inner carriage return", in: "a\rb", out: "ab"},
		{
			name: "drops duplicates keeping first",
			in:   "never gonna\ngive you up\nnever gonna\nlet you down\ngive you up",
			out:  "never gonna\ngive you up\nlet you down",
		},
		{name: "duplicates after trimming", in: "hi\n  hi  \nhi\r", out: "hi"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, transcript.Clean(tc.in))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	in := "a\n\nb\na\r\n c \nb"
	once := transcript.Clean(in)
	require.Equal(t, once, transcript.Clean(once))
}
