package esplora

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TxsPageSize is the number of transactions the API returns per block txs page.
const TxsPageSize = 25

// BlockInfo holds the block metadata fields we care about.
type BlockInfo struct {
	Hash              string
	Height            int64
	TxCount           int
	Timestamp         int64
	PreviousBlockHash string
}

type Tx struct {
	TxID string    `json:"txid"`
	Vin  []*Input  `json:"vin"`
	Vout []*Output `json:"vout"`
}

// Input is a transaction input. Prevout is nil when the API sent no usable previous output.
type Input struct {
	TxID       string  `json:"txid"`
	Vout       uint32  `json:"vout"`
	IsCoinbase bool    `json:"is_coinbase"`
	Prevout    *Output `json:"prevout"`
}

// UnmarshalJSON treats a null or empty prevout object as absent.
func (in *Input) UnmarshalJSON(data []byte) error {
	// alias to avoid infinite recursion
	type inputAlias Input
	aux := &struct {
		*inputAlias
		Prevout json.RawMessage `json:"prevout"`
	}{
		inputAlias: (*inputAlias)(in),
	}

	err := json.Unmarshal(data, &aux)
	if err != nil {
		return fmt.Errorf("error unmarshalling Input: %w", err)
	}

	in.Prevout = nil
	raw := bytes.TrimSpace(aux.Prevout)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var fields map[string]json.RawMessage
	err = json.Unmarshal(raw, &fields)
	if err != nil {
		return fmt.Errorf("invalid prevout: %w", err)
	}
	if len(fields) == 0 {
		return nil
	}

	var prevout Output
	err = json.Unmarshal(raw, &prevout)
	if err != nil {
		return fmt.Errorf("invalid prevout: %w", err)
	}
	in.Prevout = &prevout

	return nil
}

type Output struct {
	ScriptPubKey        string `json:"scriptpubkey"`
	ScriptPubKeyType    string `json:"scriptpubkey_type,omitempty"`
	ScriptPubKeyAddress string `json:"scriptpubkey_address"`
}
