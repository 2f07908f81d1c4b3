package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"slices"
	"sync"
	"time"
)

// Credentials is the register/login payload
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TransactionPayload is the add-transaction payload
type TransactionPayload struct {
	Amount          float64 `json:"amount"`
	TransactionType string  `json:"transactionType"`
	Description     string  `json:"description"`
	TransactionDate string  `json:"transactionDate"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one kind of ledger request
type Scenario struct {
	Name  string
	Build func(baseURL string) (*http.Request, error)
}

type session struct {
	username string
	token    string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of ledger requests to make")
	users := flag.Int("u", 3, "Number of users to register and distribute load across")
	baseURL := flag.String("url", "http://localhost:3200", "Base URL for the API")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Printf("Registering %d users against %s\n", *users, *baseURL)
	sessions := make([]session, 0, *users)
	runID := time.Now().UnixNano()
	for i := 0; i < *users; i++ {
		creds := Credentials{
			Username: fmt.Sprintf("load-%d-%d", runID, i),
			Password: "load-test-password",
		}
		token, err := registerAndLogin(client, *baseURL, creds)
		if err != nil {
			fmt.Printf("Failed to prepare user %s: %v\n", creds.Username, err)
			return
		}
		sessions = append(sessions, session{username: creds.Username, token: token})
	}

	scenarios := []Scenario{
		{"Add Income", addTransaction("income")},
		{"Add Expense", addTransaction("expense")},
		{"List Month", rangeRequest("/api/user/transaction")},
		{"Summary Month", rangeRequest("/api/user/transaction/summary")},
	}

	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, sessions, scenarios, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			stats.ScenarioStats[result.Scenario]++
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			stats.Lock.Unlock()
			fmt.Printf("Progress: %d/%d requests completed\n", completed, *totalRequests)
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func registerAndLogin(client *http.Client, baseURL string, creds Credentials) (string, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return "", err
	}

	resp, err := client.Post(baseURL+"/api/user/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("register returned HTTP %d", resp.StatusCode)
	}

	resp, err = client.Post(baseURL+"/api/user/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login returned HTTP %d", resp.StatusCode)
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Value != "" {
			return cookie.Value, nil
		}
	}
	return "", fmt.Errorf("login response carried no session cookie")
}

func addTransaction(kind string) func(baseURL string) (*http.Request, error) {
	return func(baseURL string) (*http.Request, error) {
		payload := TransactionPayload{
			Amount:          float64(rand.Intn(50000)) / 100,
			TransactionType: kind,
			Description:     "load test " + kind,
			TransactionDate: time.Now().UTC().AddDate(0, 0, -rand.Intn(28)).Format(time.DateOnly),
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		req, err := http.NewRequest(http.MethodPost, baseURL+"/api/user/transaction", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}
}

func rangeRequest(path string) func(baseURL string) (*http.Request, error) {
	return func(baseURL string) (*http.Request, error) {
		end := time.Now().UTC()
		start := end.AddDate(0, -1, 0)
		url := fmt.Sprintf("%s%s?startDate=%s&endDate=%s", baseURL, path, start.Format(time.DateOnly), end.Format(time.DateOnly))
		return http.NewRequest(http.MethodGet, url, nil)
	}
}

func worker(client *http.Client, baseURL string, delayMs int, sessions []session,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {
	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		s := sessions[rand.Intn(len(sessions))]
		scenario := scenarios[rand.Intn(len(scenarios))]
		result := TestResult{Scenario: scenario.Name}

		req, err := scenario.Build(baseURL)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}
		req.Header.Set("Authorization", "Bearer "+s.token)

		startTime := time.Now()
		resp, err := client.Do(req)
		result.ResponseTime = time.Since(startTime)

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Successful RPS:      %.2f\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
