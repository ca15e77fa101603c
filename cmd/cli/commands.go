package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	matchID    string
	matchDate  string
	winnerTeam string
	score      string
	gender     string
)

func init() {
	startCmd.Flags().StringVar(&matchID, "id", "", "The match id")
	startCmd.MarkFlagRequired("id")
	cancelCmd.Flags().StringVar(&matchID, "id", "", "The match id")
	cancelCmd.MarkFlagRequired("id")
	finishCmd.Flags().StringVar(&matchID, "id", "", "The match id")
	finishCmd.MarkFlagRequired("id")
	finishCmd.Flags().StringVar(&winnerTeam, "winner", "Team 1", "The winning team ('Team 1' or 'Team 2')")
	finishCmd.Flags().StringVar(&score, "score", "", "The raw score, e.g. '21-19'")
	availableCmd.Flags().StringVar(&matchDate, "date", "", "The date to resolve (YYYY-MM-DD, default today)")
	availableCmd.Flags().StringVar(&gender, "gender", "", "Restrict the pool to one gender")
	matchesCmd.Flags().StringVar(&matchDate, "date", "", "Filter matches by date")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(availableCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health", nil)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players", nil)
	},
}

var availableCmd = &cobra.Command{
	Use:   "available",
	Short: "List the players available for a new match",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if matchDate != "" {
			params.Set("date", matchDate)
		}
		if gender != "" {
			params.Set("gender", gender)
		}
		return performGetRequest("/available-players", params)
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Show the club leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/rankings", nil)
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if matchDate != "" {
			params.Set("date", matchDate)
		}
		return performGetRequest("/matches", params)
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a scheduled match",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		params.Set("matchID", matchID)
		return performPostRequest("/matches/start", params, nil)
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel a scheduled match",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		params.Set("matchID", matchID)
		return performPostRequest("/matches/cancel", params, nil)
	},
}

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Record the result of a match",
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]string{
			"match_id":    matchID,
			"winner_team": winnerTeam,
			"score":       score,
		}
		return performPostRequest("/matches/finish", nil, body)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics", nil)
	},
}

func buildURL(endpoint string, params url.Values) string {
	u := host + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func performGetRequest(endpoint string, params url.Values) error {
	u := buildURL(endpoint, params)
	fmt.Printf("Making request to %s\n", u)

	resp, err := http.Get(u)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, params url.Values, body any) error {
	u := buildURL(endpoint, params)
	fmt.Printf("Making request to %s\n", u)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	resp, err := http.Post(u, "application/json", reader)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
