package block

// Tx represents a transaction record carried by a block. The engine does
// not validate or settle transactions, it only commits the ordered set to
// the header through the merkle root.
type Tx struct {
	ID    string `json:"id"`
	From  string `json:"from"`
	To    string `json:"to"`
	Value uint64 `json:"value"`
	Data  string `json:"data,omitempty"`
}
