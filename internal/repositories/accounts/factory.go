package accounts

import "fmt"

// Storage formats accepted by New.
const (
	FormatTSV     = "tsv"
	FormatMsgpack = "msgpack"
	FormatSQLite  = "sqlite"
)

// Formats lists the supported storage formats.
var Formats = []string{FormatTSV, FormatMsgpack, FormatSQLite}

// New returns the repository for format rooted at dir.
func New(format, dir string) (Repository, error) {
	switch format {
	case FormatTSV:
		return NewFileRepository(dir, TSVCodec{}), nil
	case FormatMsgpack:
		return NewFileRepository(dir, MsgpackCodec{}), nil
	case FormatSQLite:
		return NewSQLiteRepository(dir), nil
	default:
		return nil, fmt.Errorf("unknown storage format %q", format)
	}
}
