package cmd

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type stats struct {
	TotalHashes  uint64    `json:"total_hashes"`
	BlocksMined  uint64    `json:"blocks_mined"`
	StartTime    time.Time `json:"start_time"`
	LastHashRate float64   `json:"last_hash_rate"`
	Difficulty   uint      `json:"difficulty"`
	BlockReward  uint64    `json:"block_reward"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the mining statistics.",
	Run:   statsRun,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func statsRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/stats", url))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var s stats
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		log.Fatal(err)
	}

	fmt.Println("mining stats")
	fmt.Println("  blocks mined: ", s.BlocksMined)
	fmt.Println("  total hashes: ", s.TotalHashes)
	fmt.Printf("  last rate:     %.0f h/s\n", s.LastHashRate)
	fmt.Println("  difficulty:   ", s.Difficulty)
	fmt.Println("  block reward: ", s.BlockReward)
	fmt.Println("  running since:", s.StartTime.Format(time.RFC3339))
}
