package cmd_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputsync/hook"
	"github.com/Alia5/inputsync/internal/cmd"
	inputtest "github.com/Alia5/inputsync/internal/testing"
)

func TestCodesPrint(t *testing.T) {
	tests := []struct {
		name  string
		codes cmd.Codes
		want  []string
	}{
		{
			name: "all",
			want: []string{"# test", "key    0x01e  A", "key    0x02a  LeftShift", "button 0x110  Left", "button 0x111  Right"},
		},
		{
			name:  "mouse only",
			codes: cmd.Codes{Mouse: true},
			want:  []string{"# test", "button 0x110  Left", "button 0x111  Right"},
		},
		{
			name:  "keyboard only",
			codes: cmd.Codes{Keyboard: true},
			want:  []string{"# test", "key    0x01e  A", "key    0x02a  LeftShift"},
		},
		{
			name:  "by key name",
			codes: cmd.Codes{Key: "leftshift"},
			want:  []string{"# test", "key    0x02a  LeftShift"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, tt.codes.Print(&out, inputtest.CreateTestTable(t)))
			assert.Equal(t, tt.want, strings.Split(strings.TrimSpace(out.String()), "\n"))
		})
	}
}

func TestCodesPrintEmptyTable(t *testing.T) {
	var out bytes.Buffer
	err := (&cmd.Codes{}).Print(&out, &hook.CodeTable{Name: "none"})
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestCodesPrintUnknownKey(t *testing.T) {
	var out bytes.Buffer
	err := (&cmd.Codes{Key: "NoSuchKey"}).Print(&out, inputtest.CreateTestTable(t))
	assert.ErrorContains(t, err, "unknown key")
	assert.Empty(t, out.String())
}
