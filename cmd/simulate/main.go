// Simulation client: drives a scripted pre-order conversation against a
// running server so the whole flow (extraction, step inference, receipt,
// confirmation event) can be eyeballed end to end.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

var baseURL = "http://localhost:3000/api"

// Simplified DTOs for the script
type createSessionResponse struct {
	Data struct {
		ID       string `json:"id"`
		Messages []struct {
			Text string `json:"text"`
		} `json:"messages"`
	} `json:"data"`
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type sendMessageResponse struct {
	Data struct {
		Reply struct {
			Text      string `json:"text"`
			IsReceipt bool   `json:"is_receipt"`
		} `json:"reply"`
		OrderStep string `json:"order_step"`
	} `json:"data"`
}

func main() {
	if v := os.Getenv("SIMULATE_BASE_URL"); v != "" {
		baseURL = v
	}

	fmt.Println("=== EchoSee Pre-Order Simulation ===")

	sessionID, greeting, err := createSession()
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	fmt.Printf("Session Created: %s\n", sessionID)
	color.Yellow("AI: %s\n", greeting)

	script := []string{
		"Tell me about EchoSee",
		"I want to order",
		"Premium please",
		"monthly installments",
		"Ali Hassan",
		"ali.hassan@example.com",
		"+923001234567",
		"House 12, Street 4, Gulberg III, Lahore",
		"confirm",
	}

	for _, text := range script {
		color.Cyan("\nUSER: %s", text)

		start := time.Now()
		reply, step, err := sendMessage(sessionID, text)
		elapsed := time.Since(start)

		if err != nil {
			color.Red("Error: %v", err)
			continue
		}

		color.Yellow("AI (%v) [step=%s]:\n%s", elapsed, step, reply)
	}
}

func createSession() (string, string, error) {
	req, _ := http.NewRequest("POST", baseURL+"/chat/sessions", nil)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 && resp.StatusCode != 201 {
		body, _ := io.ReadAll(resp.Body)
		return "", "", fmt.Errorf("API Error %d: %s", resp.StatusCode, string(body))
	}

	var res createSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", "", err
	}

	greeting := ""
	if len(res.Data.Messages) > 0 {
		greeting = res.Data.Messages[0].Text
	}
	return res.Data.ID, greeting, nil
}

func sendMessage(sessionID, text string) (string, string, error) {
	payload := sendMessageRequest{Text: text}
	jsonBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", baseURL+"/chat/sessions/"+sessionID+"/messages", bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return "", "", fmt.Errorf("API Error %d: %s", resp.StatusCode, string(body))
	}

	var res sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", "", err
	}
	return res.Data.Reply.Text, res.Data.OrderStep, nil
}
