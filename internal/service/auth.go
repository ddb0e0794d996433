// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type authService struct {
	*core
	kdf        crypto.KeyDerivation
	asymmetric crypto.AsymmetricCodec
	keyPairs   store.KeyPairRepository
	sessions   store.SessionRepository
	rsaBits    int
	now        func() time.Time
}

func newAuthService(c *core, kdf crypto.KeyDerivation, asymmetric crypto.AsymmetricCodec, storages *store.ClientStorages, rsaBits int) *authService {
	return &authService{
		core:       c,
		kdf:        kdf,
		asymmetric: asymmetric,
		keyPairs:   storages.KeyPairs,
		sessions:   storages.Sessions,
		rsaBits:    rsaBits,
		now:        time.Now,
	}
}

// Register implements [AuthService].
func (a *authService) Register(ctx context.Context, user models.User) error {
	if err := a.validator.Validate(ctx, user); err != nil {
		return err
	}

	encryptionSalt, err := a.kdf.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate encryption salt: %w", err)
	}
	authSaltBytes, err := a.kdf.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate auth salt: %w", err)
	}
	params := models.AuthParams{
		EncryptionSalt: base64.StdEncoding.EncodeToString(encryptionSalt),
		AuthSalt:       base64.StdEncoding.EncodeToString(authSaltBytes),
	}

	key := a.kdf.DeriveKey(user.MasterPassword, encryptionSalt)
	defer clear(key)

	priv, err := a.asymmetric.GenerateKeyPair(a.rsaBits)
	if err != nil {
		return fmt.Errorf("generate sharing key pair: %w", err)
	}
	pair, err := a.sealKeyPair(user.Login, priv, key)
	if err != nil {
		return err
	}

	result, err := a.adapter.Register(ctx, adapter.RegisterRequest{
		Login:          user.Login,
		AuthHash:       a.authHash(key, params.AuthSalt),
		EncryptionSalt: params.EncryptionSalt,
		AuthSalt:       params.AuthSalt,
		PublicKey:      pair.PublicKeyPEM,
		PrivateKey:     pair.EncryptedPrivateKey.Ciphertext,
		PrivateKeyIV:   pair.EncryptedPrivateKey.IV,
	})
	if err != nil {
		return mapAuthError(err, ErrRegisterOnServer)
	}

	if err = a.openSession(user.Login, result, key, priv); err != nil {
		return err
	}
	if err = a.keyPairs.SaveKeyPair(ctx, pair); err != nil {
		a.session.Clear()
		return fmt.Errorf("save key pair: %w", err)
	}
	a.saveLocalSession(ctx, user.Login, params)

	a.logger.Info().Str("login", user.Login).Msg("registered new account")
	return nil
}

// Login implements [AuthService].
func (a *authService) Login(ctx context.Context, user models.User) error {
	if err := a.validator.Validate(ctx, user); err != nil {
		return err
	}

	params, err := a.adapter.RequestAuthParams(ctx, user.Login)
	if err != nil {
		return mapAuthError(err, ErrLoginOnServer)
	}
	encryptionSalt, err := base64.StdEncoding.DecodeString(params.EncryptionSalt)
	if err != nil || len(encryptionSalt) == 0 {
		return fmt.Errorf("%w: encryption salt is not base64", ErrInvalidAuthParams)
	}

	key := a.kdf.DeriveKey(user.MasterPassword, encryptionSalt)
	defer clear(key)

	result, err := a.adapter.Login(ctx, user.Login, a.authHash(key, params.AuthSalt))
	if err != nil {
		return mapAuthError(err, ErrLoginOnServer)
	}

	priv, pair, publish, err := a.resolveKeyPair(ctx, user.Login, key, result.KeyPair)
	if err != nil {
		return err
	}
	if err = a.openSession(user.Login, result, key, priv); err != nil {
		return err
	}

	if publish {
		// the upload needs the token, so it runs after the session is open
		if err = a.adapter.UploadKeyPair(ctx, pair); err != nil {
			a.session.Clear()
			return fmt.Errorf("upload key pair: %w", mapAdapterError(err))
		}
		a.logger.Info().Str("login", user.Login).Msg("published sharing key pair")
	}
	if err = a.keyPairs.SaveKeyPair(ctx, pair); err != nil {
		a.session.Clear()
		return fmt.Errorf("save key pair: %w", err)
	}
	a.saveLocalSession(ctx, user.Login, params)

	a.logger.Info().Str("login", user.Login).Msg("logged in")
	return nil
}

// Unlock implements [AuthService].
func (a *authService) Unlock(ctx context.Context, masterPassword string) (string, error) {
	saved, err := a.savedSession(ctx)
	if err != nil {
		return "", err
	}

	encryptionSalt, err := base64.StdEncoding.DecodeString(saved.EncryptionSalt)
	if err != nil {
		return "", fmt.Errorf("%w: encryption salt is not base64", ErrInvalidAuthParams)
	}
	key := a.kdf.DeriveKey(masterPassword, encryptionSalt)
	defer clear(key)

	pair, err := a.keyPairs.GetKeyPair(ctx, saved.Login)
	if errors.Is(err, store.ErrKeyPairNotFound) {
		return "", fmt.Errorf("%w: %w", ErrNoLocalSession, err)
	}
	if err != nil {
		return "", err
	}

	priv, err := a.openPrivateKey(pair, key)
	if errors.Is(err, crypto.ErrDecryption) {
		return "", ErrWrongPassword
	}
	if err != nil {
		return "", err
	}

	err = a.openSession(saved.Login, models.AuthResult{Token: saved.Token, ExpiresAt: saved.ExpiresAt}, key, priv)
	if err != nil {
		return "", err
	}

	a.logger.Info().Str("login", saved.Login).Msg("unlocked saved session")
	return saved.Login, nil
}

// SavedLogin implements [AuthService].
func (a *authService) SavedLogin(ctx context.Context) (string, error) {
	saved, err := a.savedSession(ctx)
	if err != nil {
		return "", err
	}
	return saved.Login, nil
}

// Logout implements [AuthService].
func (a *authService) Logout(ctx context.Context) error {
	a.session.Clear()
	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("forget saved session: %w", err)
	}
	a.logger.Info().Msg("logged out")
	return nil
}

// savedSession returns the persisted session if it has not expired yet. An
// expired one is deleted.
func (a *authService) savedSession(ctx context.Context) (models.LocalSession, error) {
	saved, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.LocalSession{}, ErrNoLocalSession
	}
	if err != nil {
		return models.LocalSession{}, err
	}

	expiresAt := saved.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt, _ = session.TokenExpiry(saved.Token)
	}
	if !expiresAt.IsZero() && !a.now().Before(expiresAt) {
		if err = a.sessions.DeleteSession(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("failed to delete expired session")
		}
		return models.LocalSession{}, ErrSessionExpired
	}

	return saved, nil
}

func (a *authService) saveLocalSession(ctx context.Context, login string, params models.AuthParams) {
	token, err := a.session.Token()
	if err != nil {
		return
	}
	expiresAt, _ := a.session.ExpiresAt()

	err = a.sessions.SaveSession(ctx, models.LocalSession{
		Login:          login,
		Token:          token,
		ExpiresAt:      expiresAt,
		EncryptionSalt: params.EncryptionSalt,
		AuthSalt:       params.AuthSalt,
	})
	if err != nil {
		// unlock falls back to a full login
		a.logger.Warn().Err(err).Msg("failed to save session locally")
	}
}

// resolveKeyPair returns the sharing key pair of login. The copy held by
// the server wins over the local one. Only an account the server holds no
// pair for gets the local pair, or a newly generated one, and publish is
// true then. A pair that does not open under key is an error.
func (a *authService) resolveKeyPair(ctx context.Context, login string, key []byte, remote *models.KeyPair) (*rsa.PrivateKey, models.KeyPair, bool, error) {
	if remote != nil {
		pair := *remote
		pair.Login = login
		pair.CreatedAt = a.now()

		priv, err := a.openPrivateKey(pair, key)
		if err != nil {
			return nil, models.KeyPair{}, false, fmt.Errorf("%w: %w", ErrKeyPairUnavailable, err)
		}
		return priv, pair, false, nil
	}

	local, err := a.keyPairs.GetKeyPair(ctx, login)
	switch {
	case err == nil:
		priv, openErr := a.openPrivateKey(local, key)
		if openErr != nil {
			return nil, models.KeyPair{}, false, fmt.Errorf("%w: %w", ErrKeyPairUnavailable, openErr)
		}
		return priv, local, true, nil
	case errors.Is(err, store.ErrKeyPairNotFound):
	default:
		return nil, models.KeyPair{}, false, fmt.Errorf("load key pair: %w", err)
	}

	priv, err := a.asymmetric.GenerateKeyPair(a.rsaBits)
	if err != nil {
		return nil, models.KeyPair{}, false, fmt.Errorf("generate sharing key pair: %w", err)
	}
	pair, err := a.sealKeyPair(login, priv, key)
	if err != nil {
		return nil, models.KeyPair{}, false, err
	}
	return priv, pair, true, nil
}

func (a *authService) sealKeyPair(login string, priv *rsa.PrivateKey, key []byte) (models.KeyPair, error) {
	publicPEM, err := a.asymmetric.EncodePublicKeyPEM(&priv.PublicKey)
	if err != nil {
		return models.KeyPair{}, err
	}
	der, err := a.asymmetric.EncodePrivateKey(priv)
	if err != nil {
		return models.KeyPair{}, err
	}
	defer clear(der)

	sealed, err := a.symmetric.Encrypt(der, key)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("seal private key: %w", err)
	}

	return models.KeyPair{
		Login:               login,
		PublicKeyPEM:        publicPEM,
		EncryptedPrivateKey: sealed,
		CreatedAt:           a.now(),
	}, nil
}

// openPrivateKey unseals the stored private key. A wrong master password
// surfaces as crypto.ErrDecryption.
func (a *authService) openPrivateKey(pair models.KeyPair, key []byte) (*rsa.PrivateKey, error) {
	der, err := a.symmetric.DecryptSecret(pair.EncryptedPrivateKey, key)
	if err != nil {
		return nil, err
	}
	defer clear(der)

	priv, err := a.asymmetric.ParsePrivateKey(der)
	if err != nil {
		return nil, err
	}

	publicPEM, err := a.asymmetric.EncodePublicKeyPEM(&priv.PublicKey)
	if err != nil {
		return nil, err
	}
	if publicPEM != pair.PublicKeyPEM {
		return nil, ErrKeyPairMismatch
	}
	return priv, nil
}

func (a *authService) openSession(login string, result models.AuthResult, key []byte, priv *rsa.PrivateKey) error {
	err := a.session.Open(session.Credentials{
		Login:        login,
		Token:        result.Token,
		ExpiresAt:    result.ExpiresAt,
		SymmetricKey: key,
		PrivateKey:   priv,
	})
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	return nil
}

func (a *authService) authHash(key []byte, authSalt string) string {
	return base64.StdEncoding.EncodeToString(a.kdf.AuthHash(key, authSalt))
}
