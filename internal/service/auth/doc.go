// Package auth implements bearer-token authentication: HS256-signed tokens
// whose jti names a persisted personal access token row, bcrypt password
// hashing, and the register, login, logout and authenticate use cases.
//
// A token is accepted only while its row exists, so logout revokes exactly
// the presented token and leaves the user's other tokens usable.
package auth
