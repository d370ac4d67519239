//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"guestlink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   string
		wantOK bool
	}{
		{
			name:   "nilはメッセージなし",
			err:    nil,
			wantOK: false,
		},
		{
			name:   "ヒントなし",
			err:    errs.New("db down"),
			wantOK: false,
		},
		{
			name:   "ラップ後も取り出せる",
			err:    errs.Wrap(errs.WithUserMessage(errors.New("conflict"), "link has expired"), "create registration"),
			want:   "link has expired",
			wantOK: true,
		},
		{
			name:   "外側のメッセージが優先される",
			err:    errs.WithUserMessage(errs.Wrap(errs.WithUserMessage(errors.New("conflict"), "inner"), "gateway"), "outer"),
			want:   "outer",
			wantOK: true,
		},
		{
			name:   "空白だけの外側ヒントは飛ばす",
			err:    errs.WithUserMessage(errs.WithUserMessage(errors.New("conflict"), "inner"), "  "),
			want:   "inner",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := errs.UserMessage(tt.err)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractStackLines(t *testing.T) {
	t.Run("nilは空", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 5))
	})

	t.Run("行数を制限する", func(t *testing.T) {
		err := errs.New("boom")

		lines := errs.ExtractStackLines(err, 3)

		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "boom")
	})

	t.Run("0なら全行", func(t *testing.T) {
		err := errs.New("boom")

		lines := errs.ExtractStackLines(err, 0)

		assert.Greater(t, len(lines), 3)
	})
}
