package graph

import (
	"fmt"

	"github.com/hedisam/txflowgraph/internal/esplora"
)

const (
	// CoinbaseID is the node id of the newly issued coins sender.
	CoinbaseID = "Coinbase Transaction"
	// UnknownID is the node id used when an output carries no script or address.
	UnknownID = "Unknown address"

	// LabelLen is the number of leading characters of a node id shown as its label.
	LabelLen = 8
)

type IdentityKind int

const (
	KindReal IdentityKind = iota
	KindCoinbase
	KindUnknown
)

// Identity is a graph participant. Key is only set for KindReal.
type Identity struct {
	Kind IdentityKind
	Key  string
}

func Real(key string) Identity {
	if key == "" {
		return Unknown()
	}
	return Identity{Kind: KindReal, Key: key}
}

func Coinbase() Identity {
	return Identity{Kind: KindCoinbase}
}

func Unknown() Identity {
	return Identity{Kind: KindUnknown}
}

// String renders the identity as the node id stored in the graph.
func (id Identity) String() string {
	switch id.Kind {
	case KindReal:
		return id.Key
	case KindCoinbase:
		return CoinbaseID
	default:
		return UnknownID
	}
}

// Label returns the short display label of a node id.
func Label(nodeID string) string {
	runes := []rune(nodeID)
	if len(runes) <= LabelLen {
		return nodeID
	}
	return string(runes[:LabelLen])
}

// KeyField selects which output field identifies a real participant.
type KeyField string

const (
	KeyScript  KeyField = "script"
	KeyAddress KeyField = "address"
)

// ParseKeyField validates a KeyField name.
func ParseKeyField(s string) (KeyField, error) {
	switch KeyField(s) {
	case KeyScript, KeyAddress:
		return KeyField(s), nil
	default:
		return "", fmt.Errorf("unknown key field %q, expected %q or %q", s, KeyScript, KeyAddress)
	}
}

func (f KeyField) identityOf(out *esplora.Output) Identity {
	if out == nil {
		return Unknown()
	}
	if f == KeyAddress {
		return Real(out.ScriptPubKeyAddress)
	}
	return Real(out.ScriptPubKey)
}
