package vault

import "time"

// Entry is one stored credential: a service name (the lookup key), the
// account it belongs to, and the secret itself. Timestamps are unix seconds;
// CreatedAt is set once, UpdatedAt follows every field change.
type Entry struct {
	Service   string `json:"service"`
	Account   string `json:"account"`
	Secret    string `json:"secret"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// NewEntry creates an entry with both timestamps set to now.
func NewEntry(service, account, secret string) Entry {
	now := time.Now().Unix()
	return Entry{
		Service:   service,
		Account:   account,
		Secret:    secret,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateService renames the entry and refreshes UpdatedAt.
func (e *Entry) UpdateService(service string) {
	e.Service = service
	e.UpdatedAt = time.Now().Unix()
}

// UpdateAccount replaces the account name and refreshes UpdatedAt.
func (e *Entry) UpdateAccount(account string) {
	e.Account = account
	e.UpdatedAt = time.Now().Unix()
}

// UpdateSecret replaces the secret and refreshes UpdatedAt.
func (e *Entry) UpdateSecret(secret string) {
	e.Secret = secret
	e.UpdatedAt = time.Now().Unix()
}
