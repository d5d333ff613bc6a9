package accounts

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/homeowner/internal/models"
	"github.com/google/uuid"
)

const (
	tsvVersion   = 1
	tsvHeaderFmt = "# homeowner-users v%d"
	tsvFields    = 5
)

var (
	errMissingHeader = errors.New("missing header")
	errBadEscape     = errors.New("invalid escape sequence")
)

var tsvEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

// TSVCodec encodes accounts as a tab-separated table.
type TSVCodec struct{}

func (TSVCodec) Ext() string { return "tsv" }

func (TSVCodec) Encode(accounts []models.Account) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, tsvHeaderFmt+"\n", tsvVersion)

	for _, a := range accounts {
		buf.WriteString(a.ID.String())
		buf.WriteByte('\t')
		buf.WriteString(tsvEscaper.Replace(a.Username))
		buf.WriteByte('\t')
		buf.WriteString(tsvEscaper.Replace(a.Password))
		buf.WriteByte('\t')
		buf.WriteString(strconv.FormatBool(a.IsAdmin))
		buf.WriteByte('\t')
		buf.WriteString(a.CreatedAt.UTC().Format(time.RFC3339Nano))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func (TSVCodec) Decode(b []byte) ([]models.Account, error) {
	lines := strings.Split(string(b), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, errMissingHeader
	}

	header := strings.TrimSuffix(lines[0], "\r")
	var version int
	if _, err := fmt.Sscanf(header, tsvHeaderFmt, &version); err != nil {
		return nil, fmt.Errorf("%w: %q", errMissingHeader, lines[0])
	}
	// Sscanf stops at the number, so anything after it must be rejected here.
	if header != fmt.Sprintf(tsvHeaderFmt, version) {
		return nil, fmt.Errorf("%w: %q", errMissingHeader, lines[0])
	}
	if version != tsvVersion {
		return nil, fmt.Errorf("unsupported format version %d", version)
	}

	accounts := make([]models.Account, 0, len(lines)-1)
	for n, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		a, err := decodeTSVRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+2, err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func decodeTSVRecord(line string) (models.Account, error) {
	f := strings.Split(line, "\t")
	if len(f) != tsvFields {
		return models.Account{}, fmt.Errorf("expected %d fields, got %d", tsvFields, len(f))
	}

	id, err := uuid.Parse(f[0])
	if err != nil {
		return models.Account{}, fmt.Errorf("id: %w", err)
	}
	username, err := tsvUnescape(f[1])
	if err != nil {
		return models.Account{}, fmt.Errorf("username: %w", err)
	}
	password, err := tsvUnescape(f[2])
	if err != nil {
		return models.Account{}, fmt.Errorf("password: %w", err)
	}
	admin, err := strconv.ParseBool(f[3])
	if err != nil {
		return models.Account{}, fmt.Errorf("admin flag: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, f[4])
	if err != nil {
		return models.Account{}, fmt.Errorf("created at: %w", err)
	}

	return models.Account{
		ID:        id,
		Username:  username,
		Password:  password,
		IsAdmin:   admin,
		CreatedAt: createdAt.UTC(),
	}, nil
}

func tsvUnescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i == len(s) {
			return "", errBadEscape
		}
		switch s[i] {
		case '\\':
			sb.WriteByte('\\')
		case 't':
			sb.WriteByte('\t')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		default:
			return "", fmt.Errorf("%w: \\%c", errBadEscape, s[i])
		}
	}
	return sb.String(), nil
}
