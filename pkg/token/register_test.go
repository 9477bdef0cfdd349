package token

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIdempotent(t *testing.T) {
	id1 := Register("test_idempotent")
	id2 := Register("test_idempotent")

	assert.Equal(t, id1, id2, "same name should return same ID")
}

func TestRegisterDifferentNames(t *testing.T) {
	id1 := Register("test_name_a")
	id2 := Register("test_name_b")

	assert.NotEqual(t, id1, id2, "different names should return different IDs")
}

func TestRegisterConcurrent(t *testing.T) {
	const numGoroutines = 100
	var wg sync.WaitGroup
	ids := make([]TokenType, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ids[idx] = Register("test_concurrent")
		}(i)
	}
	wg.Wait()

	for i := 1; i < numGoroutines; i++ {
		require.Equal(t, ids[0], ids[i], "concurrent registration should return same ID")
	}
}

func TestLookupDynamicKeyword(t *testing.T) {
	name := "test_lookup"
	expectedID := Register(name)

	gotID, ok := LookupDynamicKeyword(name)
	require.True(t, ok, "registered keyword should be found")
	assert.Equal(t, expectedID, gotID)

	gotID, ok = LookupDynamicKeyword("nonexistent_keyword_12345")
	assert.False(t, ok, "unregistered keyword should not be found")
	assert.Equal(t, IDENT, gotID)
}

func TestIsDynamic(t *testing.T) {
	assert.False(t, IsDynamic(AT))
	assert.False(t, IsDynamic(TURNSTILE))
	assert.False(t, IsDynamic(EOF))

	dynamicToken := Register("test_dynamic_check")
	assert.True(t, IsDynamic(dynamicToken))
	assert.True(t, IsKeyword(dynamicToken))
	assert.Equal(t, "test_dynamic_check", dynamicToken.String())
}

func TestRegisteredTokens(t *testing.T) {
	name := "test_registered_tokens"
	id := Register(name)

	tokens := RegisteredTokens()
	assert.Equal(t, name, tokens[id])

	tokens[id] = "modified"
	tokens2 := RegisteredTokens()
	assert.Equal(t, name, tokens2[id], "RegisteredTokens should return a copy")
}

func TestGetDynamicName(t *testing.T) {
	name := "test_get_dynamic_name"
	id := Register(name)

	gotName, ok := getDynamicName(id)
	require.True(t, ok)
	assert.Equal(t, name, gotName)

	_, ok = getDynamicName(TokenType(99999))
	assert.False(t, ok)
}
