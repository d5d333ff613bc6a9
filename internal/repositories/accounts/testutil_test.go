package accounts

import (
	"time"

	"github.com/dmitrijs2005/homeowner/internal/models"
	"github.com/google/uuid"
)

func sampleAccounts() []models.Account {
	base := time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.UTC)
	return []models.Account{
		{ID: uuid.MustParse("6f1c0c8e-4b3a-4f0e-9a43-0d7f3f1e9a01"), Username: "alice", Password: "pw1", IsAdmin: true, CreatedAt: base},
		{ID: uuid.MustParse("2d4b6a10-8e55-4c8b-b1f7-5a9d0c2e7b02"), Username: "bob", Password: "pw\t2\\n", IsAdmin: false, CreatedAt: base.Add(time.Minute)},
		{ID: uuid.MustParse("9a7e3c21-1f0b-4d6e-8c5a-3b2f1e0d9c03"), Username: "carol\nsmith", Password: "", IsAdmin: false, CreatedAt: base.Add(2 * time.Minute)},
	}
}
