package models

// Upload status codes returned by the server in [VaultUploadResponse].
// The outdated code is the single source of truth for write-write conflicts
// between devices: it means another upload landed first and the client must
// re-sync before retrying.
const (
	UploadStatusAccepted = 0
	UploadStatusOutdated = 2
	UploadStatusFailed   = 1
)

// AuthParamsResponse carries the key-derivation parameters a client needs
// before it can authenticate: the salt stored for the account at
// registration time.
type AuthParamsResponse struct {
	// Login echoes the requested account login.
	Login string `json:"login"`

	// SrpSalt is the authentication salt stored for the account.
	SrpSalt string `json:"srp_salt"`
}

// VaultStatusResponse is the lightweight server status answer used to decide
// whether a full vault download or upload is needed.
type VaultStatusResponse struct {
	// ServerVersion is the semantic version of the server application.
	ServerVersion string `json:"server_version"`

	// VaultRevision is the current server-side revision of the user's vault.
	VaultRevision int64 `json:"vault_revision"`

	// SrpSalt is the authentication salt currently stored for the account.
	// A value differing from the client's cached salt indicates a password
	// change performed on another device.
	SrpSalt string `json:"srp_salt"`
}

// VaultGetResponse carries a full vault download.
type VaultGetResponse struct {
	// Blob is the encrypted vault content, base64-encoded.
	Blob string `json:"blob"`

	// CurrentRevisionNumber is the server revision the blob corresponds to.
	CurrentRevisionNumber int64 `json:"current_revision_number"`

	// PublicEmailDomainList, PrivateEmailDomainList and
	// HiddenPrivateEmailDomainList are the alias-domain lists distributed
	// alongside the vault.
	PublicEmailDomainList        []string `json:"public_email_domain_list"`
	PrivateEmailDomainList       []string `json:"private_email_domain_list"`
	HiddenPrivateEmailDomainList []string `json:"hidden_private_email_domain_list"`
}

// VaultUploadRequest is the payload of a vault upload.
type VaultUploadRequest struct {
	// Blob is the encrypted vault content, base64-encoded.
	Blob string `json:"blob"`

	// BaseRevisionNumber is the server revision the client last confirmed.
	// The server rejects the upload with [UploadStatusOutdated] when it no
	// longer matches the stored revision.
	BaseRevisionNumber int64 `json:"base_revision_number"`

	// CredentialsCount is the number of live credentials in the vault.
	CredentialsCount int `json:"credentials_count"`

	// EmailAddressList lists the alias email addresses contained in the
	// vault so the server can route incoming alias mail.
	EmailAddressList []string `json:"email_address_list"`

	// Version is the client application version producing the upload.
	Version string `json:"version"`
}

// VaultUploadResponse is the server's answer to a vault upload.
type VaultUploadResponse struct {
	// Status is one of the UploadStatus* codes.
	Status int `json:"status"`

	// NewRevisionNumber is the revision assigned to the accepted upload.
	// On an outdated rejection it carries the current server revision.
	NewRevisionNumber int64 `json:"new_revision_number"`
}
