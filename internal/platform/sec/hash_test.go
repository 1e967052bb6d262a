// Copyright (c) 2026 Ridelink. All rights reserved.
// Author: dev@ridelink.app

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/ridelink/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies a stored digest validates the original
plaintext and never equals it.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	plaintext := "secret1"

	digest, err := sec.HashPassword(plaintext)
	require.NoError(t, err)

	assert.NotEqual(t, plaintext, digest)
	assert.NotContains(t, digest, plaintext)
	assert.True(t, sec.CheckPasswordHash(plaintext, digest))
}

/*
TestCheckPasswordHash_WrongPassword verifies a mismatch fails cleanly.
*/
func TestCheckPasswordHash_WrongPassword(t *testing.T) {
	digest, err := sec.HashPassword("secret1")
	require.NoError(t, err)

	assert.False(t, sec.CheckPasswordHash("secret2", digest))
	assert.False(t, sec.CheckPasswordHash("", digest))
}

/*
TestHashPassword_SaltedDigests verifies two hashes of one password differ
(random salt) while both still validate.
*/
func TestHashPassword_SaltedDigests(t *testing.T) {
	first, err := sec.HashPassword("secret1")
	require.NoError(t, err)

	second, err := sec.HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, sec.CheckPasswordHash("secret1", first))
	assert.True(t, sec.CheckPasswordHash("secret1", second))
}

/*
TestCheckPasswordHash_GarbageDigest verifies a corrupted digest never validates.
*/
func TestCheckPasswordHash_GarbageDigest(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("secret1", "not-a-bcrypt-digest"))
}
