// Seeds a running dairycoop-data instance with demo records through the
// public API, exercising the same envelope contract the portal uses.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"dairycoop-data/pkg/client"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "API base URL")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	api := client.New(*baseURL)

	farmers := []client.Record{
		{"id": "FARM0001", "name": "Ramesh Patel", "phone": "+91-9876500001", "village": "Anandpur",
			"cattle_count": 12, "daily_capacity": 85.0, "join_date": "2022-04-01", "status": "Active"},
		{"id": "FARM0002", "name": "Savita Devi", "phone": "+91-9876500002", "village": "Gokulpur",
			"cattle_count": 6, "daily_capacity": 40.0, "join_date": "2023-01-15", "status": "Active"},
		{"id": "FARM0003", "name": "Mohan Singh", "phone": "+91-9876500003", "village": "Anandpur",
			"cattle_count": 20, "daily_capacity": 150.0, "join_date": "2021-08-20", "status": "Active"},
	}
	for _, f := range farmers {
		seed("farmer", func() error {
			_, err := api.CreateFarmer(ctx, f)
			return err
		})
	}

	suppliers := []client.Record{
		{"id": "SUP0001", "name": "GreenFeed Agro", "contact_person": "Anil Kumar",
			"phone": "+91-9876600001", "address": "Plot 4, Industrial Area", "supply_type": "Feed", "status": "Active"},
		{"id": "SUP0002", "name": "VetCare Supplies", "contact_person": "Dr. Meena Rao",
			"phone": "+91-9876600002", "address": "12 Market Road", "supply_type": "Veterinary", "status": "Active"},
	}
	for _, s := range suppliers {
		seed("supplier", func() error {
			_, err := api.CreateSupplier(ctx, s)
			return err
		})
	}

	today := time.Now().Format("2006-01-02")
	entries := []client.Record{
		{"farmer_id": "FARM0001", "collection_date": today, "shift": "Morning",
			"quantity_liters": 42.5, "fat_percent": 4.2, "snf_percent": 8.6, "rate_per_liter": 38.0},
		{"farmer_id": "FARM0002", "collection_date": today, "shift": "Morning",
			"quantity_liters": 18.0, "fat_percent": 3.8, "snf_percent": 8.2, "rate_per_liter": 35.0},
		{"farmer_id": "FARM0003", "collection_date": today, "shift": "Evening",
			"quantity_liters": 70.0, "fat_percent": 4.5, "snf_percent": 8.9, "rate_per_liter": 40.0},
	}
	for _, e := range entries {
		seed("milk entry", func() error {
			_, err := api.CreateMilkEntry(ctx, e)
			return err
		})
	}

	seed("certification", func() error {
		_, err := api.CreateCertification(ctx, client.Record{
			"id": "CERT0001", "name": "FSSAI License", "issuing_body": "FSSAI",
			"issue_date": "2025-01-01", "expiry_date": "2026-01-01", "status": "Valid",
		})
		return err
	})

	seed("announcement", func() error {
		_, err := api.CreateAnnouncement(ctx, client.Record{
			"title": "Revised procurement rates", "content": "New fat-based rates apply from next week.",
			"category": "Price", "publish_date": today, "priority": "High", "status": "Published",
		})
		return err
	})

	log.Println("Demo data seeded")
}

func seed(what string, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("seed %s: %v", what, err)
	}
}
