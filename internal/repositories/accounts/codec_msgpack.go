package accounts

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/homeowner/internal/models"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

const msgpackVersion = 1

type msgpackEnvelope struct {
	V        int              `msgpack:"v"`
	Accounts []msgpackAccount `msgpack:"accounts"`
}

type msgpackAccount struct {
	ID        string    `msgpack:"id"`
	Username  string    `msgpack:"username"`
	Password  string    `msgpack:"password"`
	Admin     bool      `msgpack:"admin"`
	CreatedAt time.Time `msgpack:"created_at"`
}

// MsgpackCodec encodes accounts as a versioned MessagePack document.
type MsgpackCodec struct{}

func (MsgpackCodec) Ext() string { return "msgpack" }

func (MsgpackCodec) Encode(accounts []models.Account) ([]byte, error) {
	env := msgpackEnvelope{V: msgpackVersion, Accounts: make([]msgpackAccount, len(accounts))}
	for i, a := range accounts {
		env.Accounts[i] = msgpackAccount{
			ID:        a.ID.String(),
			Username:  a.Username,
			Password:  a.Password,
			Admin:     a.IsAdmin,
			CreatedAt: a.CreatedAt.UTC(),
		}
	}
	return msgpack.Marshal(&env)
}

func (MsgpackCodec) Decode(b []byte) ([]models.Account, error) {
	var env msgpackEnvelope
	if err := msgpack.Unmarshal(b, &env); err != nil {
		return nil, err
	}
	if env.V != msgpackVersion {
		return nil, fmt.Errorf("unsupported format version %d", env.V)
	}

	accounts := make([]models.Account, 0, len(env.Accounts))
	for n, r := range env.Accounts {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, fmt.Errorf("record %d id: %w", n, err)
		}
		accounts = append(accounts, models.Account{
			ID:        id,
			Username:  r.Username,
			Password:  r.Password,
			IsAdmin:   r.Admin,
			CreatedAt: r.CreatedAt.UTC(),
		})
	}
	return accounts, nil
}
