package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
)

// SQLiteVault implements Repository on the credential_vault table.
type SQLiteVault struct {
	db     dbx.DBTX
	secret []byte
}

// NewSQLiteVault binds a vault to db. deviceSecret is the key material the
// sealing key is derived from; it must stay the same across restarts.
func NewSQLiteVault(db dbx.DBTX, deviceSecret []byte) *SQLiteVault {
	return &SQLiteVault{db: db, secret: deviceSecret}
}

func (v *SQLiteVault) Set(ctx context.Context, username, password string) error {
	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	key := cryptox.DeriveKey(v.secret, salt)
	defer common.WipeByteArray(key)

	ciphertext, nonce, err := cryptox.SealJSON(models.Credentials{Username: username, Password: password}, key)
	if err != nil {
		return fmt.Errorf("failed to seal credentials: %w", err)
	}

	_, err = v.db.ExecContext(ctx, `
		INSERT INTO credential_vault (id, salt, nonce, ciphertext, updated_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET salt = excluded.salt,
			nonce = excluded.nonce,
			ciphertext = excluded.ciphertext,
			updated_at = excluded.updated_at
	`, salt, nonce, ciphertext)
	if err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}
	return nil
}

func (v *SQLiteVault) Get(ctx context.Context) (*models.Credentials, error) {
	var salt, nonce, ciphertext []byte
	err := v.db.QueryRowContext(ctx,
		`SELECT salt, nonce, ciphertext FROM credential_vault WHERE id = 1`,
	).Scan(&salt, &nonce, &ciphertext)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	key := cryptox.DeriveKey(v.secret, salt)
	defer common.WipeByteArray(key)

	var c models.Credentials
	if err := cryptox.OpenJSON(ciphertext, nonce, key, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrVaultCorrupted, err)
	}
	return &c, nil
}

func (v *SQLiteVault) Clear(ctx context.Context) error {
	if _, err := v.db.ExecContext(ctx, `DELETE FROM credential_vault`); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
