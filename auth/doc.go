// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides access tokens and password hashing.

# Access Tokens

Tokens are HS256 JWTs carrying the principal's id (subject), role and, for
students, group id:

	token, err := auth.IssueToken(principal, secret, 24*time.Hour, time.Now())
	p, err := auth.ParseToken(token, secret)

ParseToken rejects expired tokens, tokens from another issuer, tokens signed
with another method and tokens with an unknown role. All of them yield
ErrInvalidToken.

# Passwords

Admin passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err := auth.CheckPassword(hash, password)

# IP Hashing

Client addresses are hashed before they are logged:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
