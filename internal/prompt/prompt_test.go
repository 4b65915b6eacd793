package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return New(strings.NewReader(input), &out, &errOut), &out, &errOut
}

func TestLine(t *testing.T) {
	p, out, _ := newTestPrompter("first\r\nsecond\nlast")

	got, err := p.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = p.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	got, err = p.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = p.Line("> ")
	assert.ErrorIs(t, err, ErrClosed)

	assert.Equal(t, "> > > > ", out.String())
}

func TestAskRetriesUntilAccepted(t *testing.T) {
	p, out, errOut := newTestPrompter("\ntoo long\nok\n")

	got, err := p.Ask("name: ", func(s string) error {
		if s == "" || len(s) > 2 {
			return errors.New("bad name")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, strings.Repeat("name: ", 3), out.String())
	assert.Equal(t, "bad name\nbad name\n", errOut.String())
}

func TestAskStopsWhenInputCloses(t *testing.T) {
	p, _, _ := newTestPrompter("\n")

	_, err := p.Ask("name: ", func(s string) error {
		return errors.New("never good")
	})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestAskInt(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		check      func(int) error
		want       int
		wantErrOut string
	}{
		{
			name:  "plain integer",
			input: "1995\n",
			want:  1995,
		},
		{
			name:       "non integers are re-asked",
			input:      "abc\n12.5\n 7\n-3\n",
			want:       -3,
			wantErrOut: "For input string: \"abc\"\nFor input string: \"12.5\"\nFor input string: \" 7\"\n",
		},
		{
			name:  "check rejects",
			input: "0\n4\n",
			check: func(n int) error {
				if n <= 0 {
					return errors.New("Number must be greater than zero.")
				}
				return nil
			},
			want:       4,
			wantErrOut: "Number must be greater than zero.\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, errOut := newTestPrompter(tt.input)
			got, err := p.AskInt("n: ", tt.check)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErrOut, errOut.String())
		})
	}
}
