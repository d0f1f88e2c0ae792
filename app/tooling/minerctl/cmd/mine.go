package cmd

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var minerID string

type mineResult struct {
	Found    bool    `json:"found"`
	Hash     string  `json:"hash"`
	Elapsed  int64   `json:"elapsed"`
	Hashes   uint64  `json:"hashes"`
	HashRate float64 `json:"hash_rate"`
	Reward   struct {
		Total      uint64 `json:"total"`
		MinerShare uint64 `json:"miner_share"`
		PoolShare  uint64 `json:"pool_share"`
	} `json:"reward"`
}

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine a single block.",
	Run:   mineRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
	mineCmd.Flags().StringVarP(&minerID, "miner", "m", "miner1", "Miner identity to mine for.")
}

func mineRun(cmd *cobra.Command, args []string) {
	body, err := json.Marshal(map[string]string{"miner": minerID})
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/mine", url), "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var result mineResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatal(err)
	}

	if !result.Found {
		fmt.Printf("no block found after %d hashes\n", result.Hashes)
		return
	}

	fmt.Println("block mined")
	fmt.Println("  hash:     ", result.Hash)
	fmt.Println("  hashes:   ", result.Hashes)
	fmt.Println("  elapsed:  ", time.Duration(result.Elapsed))
	fmt.Printf("  hash rate: %.0f h/s\n", result.HashRate)
	fmt.Printf("  reward:    %d (miner %d, pool %d)\n", result.Reward.Total, result.Reward.MinerShare, result.Reward.PoolShare)
}
