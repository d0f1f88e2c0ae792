package minegrp

// mineRequest asks for one block to be mined for the given identity.
type mineRequest struct {
	Miner string `json:"miner" validate:"required,minerid"`
}

// txRequest submits a transaction to the pending pool.
type txRequest struct {
	ID    string `json:"id" validate:"required"`
	From  string `json:"from" validate:"required"`
	To    string `json:"to" validate:"required"`
	Value uint64 `json:"value" validate:"required"`
	Data  string `json:"data"`
}

type statusResponse struct {
	Status string `json:"status"`
}
