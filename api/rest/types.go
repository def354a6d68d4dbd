package rest

// request and response types of the graph snapshot api

type GetGraphRequest struct{}

type GetGraphResponse struct {
	Nodes []*Node `json:"nodes"`
	Edges []*Edge `json:"edges"`
}

type GetNodeRequest struct {
	ID string `json:"id"`
}

type GetNodeResponse struct {
	Node *Node `json:"node"`
}

type GetStatsRequest struct{}

type GetStatsResponse struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

type ListBlocksRequest struct{}

type ListBlocksResponse struct {
	Blocks []*Block `json:"blocks"`
}

type Node struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	In    []string `json:"in,omitempty"`
	Out   []string `json:"out,omitempty"`
}

type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Block struct {
	Height   int64  `json:"height"`
	Txs      int    `json:"txs"`
	Ingested int    `json:"ingested"`
	Failed   int    `json:"failed"`
	NewEdges int    `json:"newEdges"`
	Error    string `json:"error,omitempty"`
}
