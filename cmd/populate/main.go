// Populate loads synthetic student profiles from a JSON file into the
// database and optionally registers each one with the matching backend so it
// can generate summaries and embeddings.
//
// Usage:
//
//	go run ./cmd/populate -file synthetic_students.json -register
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"go-genie-backend/config"
	"go-genie-backend/internal/domain"
	"go-genie-backend/internal/repository/postgres"
	"go-genie-backend/pkg/database"
	"go-genie-backend/pkg/matching"
)

type syntheticStudent struct {
	UserID                   string   `json:"user_id"`
	FirstName                *string  `json:"first_name"`
	LastName                 *string  `json:"last_name"`
	Age                      *int     `json:"age"`
	Country                  *string  `json:"country"`
	Languages                []string `json:"languages"`
	CurrentStatus            *string  `json:"current_status"`
	FieldOfStudy             *string  `json:"field_of_study"`
	JobRole                  *string  `json:"job_role"`
	FinancialSupportPerYear  *int     `json:"financial_support_per_year"`
	FinancialSupportDuration *int     `json:"financial_support_duration"`
	FinancialSupportReturn   *string  `json:"financial_support_return"`
	Description              *string  `json:"description"`
}

// The synthetic dataset predates the country enum and uses short aliases.
var countryAliases = map[string]string{
	"USA": "United States",
	"UK":  "United Kingdom",
	"UAE": "United Arab Emirates",
}

func main() {
	file := flag.String("file", "synthetic_students.json", "path to the synthetic students JSON file")
	register := flag.Bool("register", false, "also push each student to the matching backend")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	var students []syntheticStudent
	if err := json.Unmarshal(raw, &students); err != nil {
		log.Fatalf("Expected a JSON array of students: %v", err)
	}
	log.Printf("Loaded %d synthetic students from %s", len(students), *file)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	repo := postgres.NewStudentRepository(dbPool)
	client := matching.NewClient(cfg.BackendURL)
	ctx := context.Background()

	var upserted, registered, skipped int
	for _, s := range students {
		if s.UserID == "" {
			log.Printf("Skipping student without user_id")
			skipped++
			continue
		}

		profile := toProfile(s)
		if err := repo.Upsert(ctx, profile); err != nil {
			log.Printf("Failed to upsert %s: %v", s.UserID, err)
			skipped++
			continue
		}
		upserted++

		if *register {
			if err := client.RegisterStudent(ctx, profile); err != nil {
				log.Printf("Failed to register %s with backend: %v", s.UserID, err)
				continue
			}
			registered++
		}
	}

	log.Printf("Done: %d upserted, %d registered, %d skipped", upserted, registered, skipped)
}

func toProfile(s syntheticStudent) *domain.StudentProfile {
	country := s.Country
	if country != nil {
		if full, ok := countryAliases[*country]; ok {
			country = &full
		}
	}

	languages := s.Languages
	if languages == nil {
		languages = []string{}
	}

	return &domain.StudentProfile{
		UserID:                   s.UserID,
		Name:                     s.FirstName,
		Surname:                  s.LastName,
		Age:                      s.Age,
		Country:                  country,
		Languages:                languages,
		CurrentStatus:            s.CurrentStatus,
		CurrentFieldOfStudy:      s.FieldOfStudy,
		JobRole:                  s.JobRole,
		FinancialSupportPerYear:  s.FinancialSupportPerYear,
		FinancialSupportDuration: s.FinancialSupportDuration,
		FinancialSupportReturn:   s.FinancialSupportReturn,
		Description:              s.Description,
	}
}
