// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type httpServerAdapter struct {
	client *resty.Client
	tokens TokenSource
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress ("host:port" gets
// an http:// scheme) and applies the request timeout.
//
// Returns an error if the address is empty or not a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{
		client: client,
		tokens: tokens,
		logger: log.WithComponent("adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// authedRequest returns a request carrying the session bearer token. It
// fails without touching the network when there is no usable session.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.tokens.Token()
	if err != nil {
		return nil, err
	}
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

// do sends req and maps transport and HTTP failures. On success it returns
// the raw response body.
func (h *httpServerAdapter) do(op, method, path string, req *resty.Request) ([]byte, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().Str("op", op).Err(err).Msg("request failed")
		return nil, networkError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("op", op).Int("status", resp.StatusCode()).Msg("request rejected")
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp.Body(), nil
}

func idPath(prefix string, id int64) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}

// ── Auth ────────────────────────────────────────────────────────────────────

// RequestAuthParams implements [ServerAdapter] via POST /auth/params.
func (h *httpServerAdapter) RequestAuthParams(ctx context.Context, login string) (models.AuthParams, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"login": login})

	body, err := h.do("request auth params", resty.MethodPost, "/auth/params", req)
	if err != nil {
		return models.AuthParams{}, err
	}

	var dto authParamsDTO
	if err = decode("request auth params", body, &dto); err != nil {
		return models.AuthParams{}, err
	}

	return models.AuthParams{EncryptionSalt: dto.EncryptionSalt, AuthSalt: dto.AuthSalt}, nil
}

// Register implements [ServerAdapter] via POST /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, reg RegisterRequest) (models.AuthResult, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reg)

	resp, err := req.Post("/auth/register")
	return h.authResult("register", resp, err)
}

// Login implements [ServerAdapter] via POST /auth/login. The token is read
// from the Authorization response header, the expiry from the body.
func (h *httpServerAdapter) Login(ctx context.Context, login, authHash string) (models.AuthResult, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginRequestDTO{Login: login, AuthHash: authHash})

	resp, err := req.Post("/auth/login")
	return h.authResult("login", resp, err)
}

func (h *httpServerAdapter) authResult(op string, resp *resty.Response, err error) (models.AuthResult, error) {
	if err != nil {
		return models.AuthResult{}, networkError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, fmt.Errorf("%s: %w", op, err)
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("%s: %w: %w", op, ErrInvalidResponse, err)
	}

	result := models.AuthResult{Token: token}

	var dto authResponseDTO
	if len(resp.Body()) > 0 {
		if err = decode(op, resp.Body(), &dto); err != nil {
			return models.AuthResult{}, err
		}
	}
	if dto.Expiration != nil {
		result.ExpiresAt = dto.Expiration.UTC()
	}
	result.KeyPair = dto.keyPair()

	return result, nil
}

// UploadKeyPair implements [ServerAdapter] via PUT /users/me/key_pair.
func (h *httpServerAdapter) UploadKeyPair(ctx context.Context, pair models.KeyPair) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	req.SetHeader("Content-Type", "application/json").SetBody(keyPairDTO{
		PublicKey:    pair.PublicKeyPEM,
		PrivateKey:   pair.EncryptedPrivateKey.Ciphertext,
		PrivateKeyIV: pair.EncryptedPrivateKey.IV,
	})

	_, err = h.do("upload key pair", resty.MethodPut, "/users/me/key_pair", req)
	return err
}

func parseBearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("invalid authorization header")
	}
	return parts[1], nil
}
