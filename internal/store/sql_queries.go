package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-sync/models"
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func createUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("login", "auth_hash", "srp_salt").
		Values(user.Login, user.AuthHash, user.SrpSalt).
		Suffix("RETURNING user_id, created_at").
		ToSql()
}

func findUserByLoginQuery(login string) (string, []any, error) {
	return psql.Select("user_id", "login", "auth_hash", "srp_salt", "created_at").
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
}

func findUserByIDQuery(userID int64) (string, []any, error) {
	return psql.Select("user_id", "login", "auth_hash", "srp_salt", "created_at").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func getVaultQuery(userID int64) (string, []any, error) {
	return psql.Select("user_id", "revision", "blob", "credentials_count", "email_address_list", "client_version").
		From("vaults").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func getVaultRevisionQuery(userID int64) (string, []any, error) {
	return psql.Select("revision").
		From("vaults").
		Where(sq.Eq{"user_id": userID}).
		Suffix("FOR UPDATE").
		ToSql()
}

func upsertVaultQuery(vault models.StoredVault, newRevision int64, emailList string) (string, []any, error) {
	return psql.Insert("vaults").
		Columns("user_id", "revision", "blob", "credentials_count", "email_address_list", "client_version", "uploaded_at").
		Values(vault.UserID, newRevision, vault.Blob, vault.CredentialsCount, emailList, vault.ClientVersion, sq.Expr("NOW()")).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
        revision = excluded.revision,
        blob = excluded.blob,
        credentials_count = excluded.credentials_count,
        email_address_list = excluded.email_address_list,
        client_version = excluded.client_version,
        uploaded_at = excluded.uploaded_at`).
		ToSql()
}
