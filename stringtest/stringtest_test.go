package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nomoreqwerty/hand/stringtest"
)

func TestJoinLF(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  string
		input []string
	}{
		"no fragments": {
			input: nil,
			want:  "",
		},
		"single fragment": {
			input: []string{"hello"},
			want:  "hello",
		},
		"two fragments": {
			input: []string{"a", "b"},
			want:  "a\nb",
		},
		"empty fragment in the middle": {
			input: []string{"a", "", "c"},
			want:  "a\n\nc",
		},
		"fragment already containing a newline": {
			input: []string{"a\nb", "c"},
			want:  "a\nb\nc",
		},
		"no trailing newline is added": {
			input: []string{"a", "b\n"},
			want:  "a\nb\n",
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := stringtest.JoinLF(tc.input...)
			assert.Equal(t, tc.want, got)
		})
	}
}
