package token

import "sync"

// registry guards the dynamic token tables. Registration normally happens
// at init() or config load time, lookups happen on every identifier lexed.
var registry struct {
	sync.RWMutex
	next     TokenType
	names    map[TokenType]string
	keywords map[string]TokenType
}

func init() {
	registry.next = maxBuiltin
	registry.names = make(map[TokenType]string)
	registry.keywords = make(map[string]TokenType)
}

// Register registers a reserved keyword of the surrounding tactic grammar
// (for example "with" or "using") and returns its token type. A registered
// keyword is never lexed as an identifier, so "at with" fails with
// "identifier expected" instead of naming a hypothesis called with.
//
// Registering the same name twice returns the same token type.
func Register(name string) TokenType {
	registry.Lock()
	defer registry.Unlock()

	if t, ok := registry.keywords[name]; ok {
		return t
	}
	registry.next++
	t := registry.next
	registry.names[t] = name
	registry.keywords[name] = t
	return t
}

func getDynamicName(t TokenType) (string, bool) {
	if !IsDynamic(t) {
		return "", false
	}
	registry.RLock()
	defer registry.RUnlock()
	name, ok := registry.names[t]
	return name, ok
}

// LookupDynamicKeyword returns the token type for a registered keyword.
// Returns IDENT and false if the keyword is not registered.
func LookupDynamicKeyword(name string) (TokenType, bool) {
	registry.RLock()
	defer registry.RUnlock()
	if t, ok := registry.keywords[name]; ok {
		return t, true
	}
	return IDENT, false
}

// IsDynamic returns true if the token type is a dynamically registered token.
func IsDynamic(t TokenType) bool {
	return t > maxBuiltin
}

// RegisteredTokens returns a copy of all registered dynamic tokens.
func RegisteredTokens() map[TokenType]string {
	registry.RLock()
	defer registry.RUnlock()
	result := make(map[TokenType]string, len(registry.names))
	for k, v := range registry.names {
		result[k] = v
	}
	return result
}
