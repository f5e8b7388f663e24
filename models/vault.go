package models

// VaultState is the persisted sync bookkeeping for the locally stored copy of
// the encrypted vault. The fields mirror the key-value entries maintained by
// the local state repository and are always read and written together.
type VaultState struct {
	// ServerRevision is the last revision number confirmed present on the
	// server for this vault.
	ServerRevision int64 `json:"server_revision"`

	// MutationSequence is a monotonic counter incremented exactly once per
	// accepted local mutation. It is the basis for optimistic-concurrency
	// checks during sync.
	MutationSequence int64 `json:"mutation_sequence"`

	// Dirty is true iff the stored encrypted vault contains changes not yet
	// confirmed uploaded to the server.
	Dirty bool `json:"dirty"`

	// OfflineMode is true iff the last sync attempt could not reach the
	// server.
	OfflineMode bool `json:"offline_mode"`
}

// CommitOutcome is the result of an optimistic commit attempt against the
// local vault state. When Accepted is false, CurrentSequence carries the live
// mutation sequence so the caller can restart from fresh state.
type CommitOutcome struct {
	Accepted        bool
	CurrentSequence int64
}

// EmailDomainLists groups the alias-domain lists the server distributes
// alongside the vault blob. They are persisted locally but are not versioned
// by the mutation tracker.
type EmailDomainLists struct {
	Public        []string `json:"public_email_domain_list"`
	Private       []string `json:"private_email_domain_list"`
	HiddenPrivate []string `json:"hidden_private_email_domain_list"`
}

// StoredVault is the server-side representation of one user's vault: the
// opaque encrypted blob plus the metadata the server tracks per upload.
type StoredVault struct {
	// UserID is the owner of the vault.
	UserID int64 `json:"-"`

	// Revision is the server-side version number, advanced by one on each
	// accepted upload.
	Revision int64 `json:"revision"`

	// Blob is the encrypted vault content, base64-encoded. Opaque to the
	// server.
	Blob string `json:"blob"`

	// CredentialsCount is the client-reported number of credentials in the
	// vault, used for account statistics only.
	CredentialsCount int `json:"credentials_count"`

	// EmailAddressList is the client-reported list of alias email addresses
	// contained in the vault, used for server-side alias routing.
	EmailAddressList []string `json:"email_address_list"`

	// ClientVersion is the client application version that produced the
	// latest upload.
	ClientVersion string `json:"client_version"`
}
