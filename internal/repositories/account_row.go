package repositories

import (
	"strconv"
	"time"

	"github.com/prudhvinik1/accounts/internal/models"
)

// accountRow is the accounts table record. ID 0 means "not assigned yet".
type accountRow struct {
	ID        int64
	Username  string
	Email     string
	Password  string
	Provider  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// parseAccountRowID reports whether id is a usable identity value.
func parseAccountRowID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func toAccountRow(account models.Account) accountRow {
	row := accountRow{
		Username:  account.Username,
		Email:     account.Email,
		Password:  account.PasswordHash,
		Provider:  string(account.Provider),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
		DeletedAt: account.DeletedAt,
	}
	if id, ok := parseAccountRowID(account.ID); ok {
		row.ID = id
	}
	return row
}

func accountFromRow(row accountRow) *models.Account {
	account := &models.Account{
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.Password,
		Provider:     models.Provider(row.Provider),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		DeletedAt:    row.DeletedAt,
	}
	if row.ID != 0 {
		account.ID = strconv.FormatInt(row.ID, 10)
	}
	return account
}
