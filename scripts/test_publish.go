//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	importStream   = "stream:places:import"
	importedStream = "stream:places:imported"
)

type PlaceImportEvent struct {
	RequestID       uuid.UUID `json:"request_id"`
	ExternalPlaceID string    `json:"external_place_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Address         string    `json:"address,omitempty"`
	City            string    `json:"city,omitempty"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Category        string    `json:"category"`
	Rating          *float64  `json:"rating,omitempty"`
	PriceLevel      *int      `json:"price_level,omitempty"`
	Amenities       []string  `json:"amenities,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	category := flag.String("category", "Attractions", "Category name of the imported place")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := PlaceImportEvent{
		RequestID:       uuid.New(),
		ExternalPlaceID: "osm:node/2470355816",
		Name:            "Nairobi National Museum",
		Description:     "Kenya's history, nature, culture and contemporary art",
		Address:         "Museum Hill Road",
		City:            "Nairobi",
		Latitude:        -1.2745,
		Longitude:       36.8143,
		Category:        *category,
		Rating:          ptr(4.5),
		PriceLevel:      ptr(2),
		Amenities:       []string{"parking", "restrooms"},
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: importStream,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published to %s\n", importStream)
	fmt.Printf("   Message ID: %s\n", id)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Place: %s (%s)\n", event.Name, event.ExternalPlaceID)

	fmt.Printf("\nWaiting for result in %s...\n", importedStream)

	deadline := time.After(30 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			fmt.Println("Timeout waiting for result")
			return
		case <-ticker.C:
			streams, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{importedStream, "0"},
				Count:   100,
				Block:   -1,
			}).Result()
			if err != nil && !errors.Is(err, redis.Nil) {
				continue
			}

			for _, s := range streams {
				for _, msg := range s.Messages {
					raw, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}
					var result map[string]interface{}
					if err := json.Unmarshal([]byte(raw), &result); err != nil {
						continue
					}
					if result["request_id"] == event.RequestID.String() {
						pretty, _ := json.MarshalIndent(result, "", "  ")
						fmt.Printf("\nResult received:\n%s\n", pretty)
						return
					}
				}
			}
		}
	}
}
