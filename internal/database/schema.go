package database

// Names shared by the bootstrap code and the repositories. The email index
// name is how a unique violation is attributed to the email field.
const (
	AccountsTable      = "accounts"
	AccountsCollection = "accounts"
	AccountsEmailIndex = "accounts_email_active_key"
)
