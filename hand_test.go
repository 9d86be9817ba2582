package hand_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nomoreqwerty/hand"
)

// TestTopLevelFunctions redirects [hand.Default] to a buffer and checks that
// the package-level functions delegate to it. Not parallel: Default is
// shared package state.
func TestTopLevelFunctions(t *testing.T) {
	old := hand.Default
	t.Cleanup(func() { hand.Default = old })

	var buf bytes.Buffer

	hand.Default = hand.New(&buf)

	tcs := map[string]struct {
		emit func()
		want string
	}{
		"infoln": {
			emit: func() { hand.Infoln("hello {}", "world") },
			want: string(hand.MarkInfo) + " hello world\n",
		},
		"warn unterminated": {
			emit: func() { hand.Warn("careful ... ") },
			want: string(hand.MarkWarn) + " careful ... ",
		},
		"scoped error": {
			emit: func() { hand.ScopeErrorln("io", "read failed") },
			want: "\x1b[2m[io]\x1b[0m " + string(hand.MarkError) + " read failed\n",
		},
		"scoped success unterminated": {
			emit: func() { hand.ScopeSuccess("job", "{} done", 7) },
			want: "\x1b[2m[job]\x1b[0m " + string(hand.MarkSuccess) + " 7 done",
		},
		"waitln": {
			emit: func() { hand.Waitln("hold on") },
			want: string(hand.MarkWait) + " hold on\n",
		},
		"custom": {
			emit: func() { hand.Customln(hand.Mark("#"), "tagged") },
			want: "# tagged\n",
		},
		"scoped custom": {
			emit: func() { hand.ScopeCustom("dl", hand.Mark("💾"), "saving ... ") },
			want: "\x1b[2m[dl]\x1b[0m 💾 saving ... ",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			buf.Reset()
			tc.emit()
			assert.Equal(t, tc.want, buf.String())
		})
	}
}
