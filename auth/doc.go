// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifiers, passphrase hashing and IP hashing.

# Identifiers

Submissions and admin sessions use random UUIDs:

	id, err := auth.NewSubmissionID()
	sid, err := auth.NewSessionID()

The submission ID is also the value of the device cookie, so a browser that
already submitted can find its own entry again.

# Admin Passphrase

The admin passphrase is never stored in clear text. At startup it is hashed
with bcrypt (or a precomputed hash is taken from the environment):

	hash, err := auth.HashPassphrase(passphrase, bcrypt.DefaultCost)
	err = auth.CheckPassphrase(hash, candidate) // ErrInvalidPassphrase on mismatch

# IP Hashing

Rate limit keys never contain raw addresses:

	key := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
