// Package relay reports mined blocks to the external ledger service that
// credits balances. A relay failure is the collaborator's problem: it is
// surfaced as an error for the caller to log and swallow, never a reason
// to stop mining.
package relay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/hashforge/miner/foundation/mining/miner"
)

// Relay knows how to deliver block records to the ledger service.
type Relay struct {
	url    string
	client http.Client
}

// New constructs a Relay for the specified ledger host.
func New(ledgerHost string) *Relay {
	return &Relay{
		url: fmt.Sprintf("http://%s/v1/block", ledgerHost),
		client: http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// SendBlock delivers the record of a mined block to the ledger.
func (r *Relay) SendBlock(ctx context.Context, record miner.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal block record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(io.LimitReader(resp.Body, 512))
		if err != nil {
			return fmt.Errorf("ledger status %d", resp.StatusCode)
		}
		return fmt.Errorf("ledger status %d: %s", resp.StatusCode, string(msg))
	}

	return nil
}
