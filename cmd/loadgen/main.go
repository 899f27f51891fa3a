// Command loadgen smoke-tests a running deployment: it drives the mesh API
// with random in-territory coordinates and produces observation events onto
// the tally topic.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"github.com/geofront-jp/jismesh-grid/internal/tally"
	"github.com/geofront-jp/jismesh-grid/pkg/jpmesh"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func randomCoordinate(rng *rand.Rand) (lat, lon float64) {
	lat = jpmesh.Southernmost + rng.Float64()*(jpmesh.Northernmost-jpmesh.Southernmost)
	lon = jpmesh.Westernmost + rng.Float64()*(jpmesh.Easternmost-jpmesh.Westernmost)
	return lat, lon
}

func hitAPI(baseURL string, requests int, rng *rand.Rand) error {
	fmt.Println("API test")
	client := &http.Client{Timeout: 10 * time.Second}

	var encoded []string
	for i := 0; i < requests; i++ {
		lat, lon := randomCoordinate(rng)
		level := 1 + rng.Intn(6)
		u := fmt.Sprintf("%s/v1/encode?lat=%f&lon=%f&level=%d",
			strings.TrimRight(baseURL, "/"), lat, lon, level)
		resp, err := client.Get(u)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			// Random points land in the sea box outside individual cells
			// too, so tolerate 400s and keep going.
			continue
		}
		var out struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(body, &out); err == nil && out.Code != "" {
			encoded = append(encoded, out.Code)
		}
	}
	fmt.Printf("encoded %d/%d coordinates\n", len(encoded), requests)

	for _, code := range encoded {
		u := fmt.Sprintf("%s/v1/mesh/%s/neighbors",
			strings.TrimRight(baseURL, "/"), url.PathEscape(code))
		resp, err := client.Get(u)
		if err != nil {
			return fmt.Errorf("neighbors request: %w", err)
		}
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("neighbors %s: status %d", code, resp.StatusCode)
		}
	}
	fmt.Printf("fetched neighbors for %d codes\n", len(encoded))
	return nil
}

func hitGrid(baseURL string) error {
	fmt.Println("Grid test")
	client := &http.Client{Timeout: 10 * time.Second}
	// Central Tokyo at level 3, small enough to stay under the cell cap.
	u := fmt.Sprintf("%s/v1/grid?bbox=139.6,35.5,139.9,35.8&level=3",
		strings.TrimRight(baseURL, "/"))
	for i := 0; i < 2; i++ {
		resp, err := client.Get(u)
		if err != nil {
			return fmt.Errorf("grid request: %w", err)
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("grid: status %d", resp.StatusCode)
		}
		fmt.Printf("grid response %d: X-Cache=%s\n", i+1, resp.Header.Get("X-Cache"))
	}
	return nil
}

func produceObservations(brokers []string, topic string, count int, rng *rand.Rand) error {
	fmt.Println("Kafka observation test")
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Version = sarama.V2_1_0_0
	prod, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return fmt.Errorf("producer create: %w", err)
	}
	defer func() { _ = prod.Close() }()

	for i := 0; i < count; i++ {
		lat, lon := randomCoordinate(rng)
		ev := tally.Event{
			Lat:        lat,
			Lon:        lon,
			RecordedAt: time.Now().UTC(),
			Source:     "loadgen",
		}
		payload, _ := json.Marshal(ev)
		if _, _, err := prod.SendMessage(&sarama.ProducerMessage{
			Topic: topic, Value: sarama.ByteEncoder(payload),
		}); err != nil {
			return fmt.Errorf("send observation: %w", err)
		}
	}
	fmt.Printf("produced %d observations\n", count)
	return nil
}

func main() {
	apiURL := getenv("API_URL", "http://localhost:8090")
	brokers := strings.Split(getenv("KAFKA_BROKERS", "localhost:9092"), ",")
	topic := getenv("KAFKA_TOPIC", "mesh-observations")
	requests := getint("REQUESTS", 50)
	produce := getenv("PRODUCE", "true") == "true"

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := hitAPI(apiURL, requests, rng); err != nil {
		fmt.Println("API error:", err)
		return
	}
	if err := hitGrid(apiURL); err != nil {
		fmt.Println("Grid error:", err)
		return
	}
	if produce {
		if err := produceObservations(brokers, topic, requests, rng); err != nil {
			fmt.Println("Kafka error:", err)
			return
		}
	}
	fmt.Println("All tests completed")
}
