// Package credentials is the secure credential store: a single-row vault in
// the local SQLite database whose payload is sealed with AES-GCM.
//
// The sealing key is derived with argon2id from a per-device secret (kept
// in a separate key file, see filex.ReadOrCreateSecret) and a fresh random
// salt stored next to the ciphertext. Every Set re-salts and re-seals, so
// the same pair never produces the same row twice.
//
// Table layout (internal/client/migrations):
//
//	credential_vault(id = 1, salt, nonce, ciphertext, updated_at)
package credentials
