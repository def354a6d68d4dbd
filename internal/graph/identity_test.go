package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/txflowgraph/internal/esplora"
)

func TestIdentityString(t *testing.T) {
	tests := map[string]struct {
		id       Identity
		expected string
	}{
		"real":                  {id: Real("0014abcdef"), expected: "0014abcdef"},
		"empty real is unknown": {id: Real(""), expected: UnknownID},
		"coinbase":              {id: Coinbase(), expected: CoinbaseID},
		"unknown":               {id: Unknown(), expected: UnknownID},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.id.String())
		})
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "0014abcd", Label("0014abcdef0123"))
	assert.Equal(t, "Coinbase", Label(CoinbaseID))
	assert.Equal(t, "Unknown ", Label(UnknownID))
	assert.Equal(t, "short", Label("short"))
	assert.Equal(t, "", Label(""))
}

func TestKeyField(t *testing.T) {
	out := &esplora.Output{ScriptPubKey: "0014abcdef", ScriptPubKeyAddress: "bc1qxyz"}

	field, err := ParseKeyField("script")
	require.NoError(t, err)
	assert.Equal(t, Real("0014abcdef"), field.identityOf(out))

	field, err = ParseKeyField("address")
	require.NoError(t, err)
	assert.Equal(t, Real("bc1qxyz"), field.identityOf(out))
	assert.Equal(t, Unknown(), field.identityOf(&esplora.Output{ScriptPubKey: "0014abcdef"}))
	assert.Equal(t, Unknown(), field.identityOf(nil))

	_, err = ParseKeyField("txid")
	assert.Error(t, err)
}
