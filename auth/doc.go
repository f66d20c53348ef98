// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin session service: credential checking plus
session token issuance and validation.

# Construction

The service is built from configuration; the credential pair is injected,
never embedded:

	svc := auth.NewService(cfg)
	token, err := svc.Login(email, password)
	identity, err := svc.Validate(token)

Login compares both halves by exact (constant-time) equality and returns a
single generic ErrInvalidCredentials on any mismatch, so callers cannot
enumerate which half was wrong.

# Token Modes

Two token schemes are supported, selected by TOKEN_MODE at process start.

Legacy mode reproduces the historical scheme: the token is

	base64({email}:{epoch-millis}:{random UUID})

and validation merely decodes and checks the identity prefix. It carries no
signature and no expiry; any decodable value starting with the admin email
passes. The weakness is intentional behavioral parity and is pinned by a
test.

Signed mode issues an HS256 JWT with sub, iat, exp, and jti claims.
Validation verifies the signature and the expiry claim and then checks the
subject. Use this mode anywhere the token can leave a trusted client.

Sessions are not persisted server-side in either mode; validity is
re-derived from the token itself on every call.
*/
package auth
