package accounts

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		format string
		file   string
	}{
		{FormatTSV, "users.tsv"},
		{FormatMsgpack, "users.msgpack"},
		{FormatSQLite, "users.db"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := New(tt.format, "data")
			require.NoError(t, err)
			assert.Equal(t, filepath.Join("data", tt.file), r.Path())
		})
	}

	_, err := New("xml", "data")
	assert.EqualError(t, err, `unknown storage format "xml"`)
}
