package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/kineticdrop/portfolio-api/domain/entity"
	"github.com/kineticdrop/portfolio-api/infrastructure/persistence/postgres"
)

// Seeds the content tables with demo portfolio data. Safe to run more
// than once against an empty database but makes no attempt to dedupe,
// so run it once.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	ctx := context.Background()

	if err := seedSkills(ctx, db); err != nil {
		log.Fatalf("failed to seed skills: %v", err)
	}
	if err := seedProjects(ctx, db); err != nil {
		log.Fatalf("failed to seed projects: %v", err)
	}
	if err := seedExperience(ctx, db); err != nil {
		log.Fatalf("failed to seed experience: %v", err)
	}
	if err := seedCertificates(ctx, db); err != nil {
		log.Fatalf("failed to seed certificates: %v", err)
	}

	fmt.Println("Seed completed")
}

func seedSkills(ctx context.Context, db *sql.DB) error {
	repo := postgres.NewSkillRepository(db)

	skills := []entity.Skill{
		{Name: "Go", Category: "Backend", Icon: "🐹", Color: "#00ADD8", Level: "Advanced", Order: 1},
		{Name: "TypeScript", Category: "Frontend", Icon: "🟦", Color: "#3178C6", Level: "Advanced", Order: 2},
		{Name: "React", Category: "Frontend", Icon: "⚛️", Color: "#61DAFB", Level: "Advanced", Order: 3},
		{Name: "PostgreSQL", Category: "Database", Icon: "🐘", Color: "#336791", Level: "Advanced", Order: 4},
		{Name: "Redis", Category: "Database", Icon: "🔴", Color: "#DC382D", Level: "Intermediate", Order: 5},
		{Name: "Docker", Category: "DevOps", Icon: "🐳", Color: "#2496ED", Level: "Intermediate", Order: 6},
		{Name: "Kubernetes", Category: "DevOps", Icon: "☸️", Color: "#326CE5", Level: "Intermediate", Order: 7},
	}

	now := time.Now()
	for i := range skills {
		skills[i].ID = uuid.New().String()
		skills[i].CreatedAt = now
		skills[i].UpdatedAt = now
		if err := repo.Create(ctx, &skills[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedProjects(ctx context.Context, db *sql.DB) error {
	repo := postgres.NewProjectRepository(db)

	projects := []entity.Project{
		{
			Title:           "Realtime Chat Platform",
			Slug:            "realtime-chat-platform",
			Description:     "Scalable chat service with presence and message history.",
			FullDescription: "A horizontally scalable chat backend with WebSocket fan-out, presence tracking, and persistent message history. Deployed behind a load balancer with Redis pub/sub bridging nodes.",
			TechStack:       []string{"Go", "Redis", "PostgreSQL", "WebSocket"},
			Features:        []string{"Presence tracking", "Message history", "Typing indicators"},
			Gradient:        "from-blue-500 to-purple-600",
			Links:           entity.ProjectLinks{Live: "https://chat.example.dev", Repo: "https://github.com/example/chat"},
			Featured:        true,
			Order:           1,
		},
		{
			Title:           "Inventory Dashboard",
			Slug:            "inventory-dashboard",
			Description:     "Analytics dashboard for warehouse inventory.",
			FullDescription: "A dashboard aggregating stock levels across warehouses with forecasting and low-stock alerts. The API layer caches heavy aggregations and invalidates on writes.",
			TechStack:       []string{"TypeScript", "React", "Node.js", "PostgreSQL"},
			Features:        []string{"Stock forecasting", "Low-stock alerts", "CSV export"},
			Gradient:        "from-emerald-500 to-teal-600",
			Links:           entity.ProjectLinks{Repo: "https://github.com/example/inventory"},
			Order:           2,
		},
	}

	now := time.Now()
	for i := range projects {
		projects[i].ID = uuid.New().String()
		projects[i].CreatedAt = now
		projects[i].UpdatedAt = now
		if err := repo.Create(ctx, &projects[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedExperience(ctx context.Context, db *sql.DB) error {
	repo := postgres.NewExperienceRepository(db)

	prevEnd := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	entries := []entity.Experience{
		{
			Title:            "Senior Backend Engineer",
			Company:          "Nimbus Labs",
			Location:         "Remote",
			StartDate:        time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
			Description:      "Own the platform's API and data layer.",
			Responsibilities: []string{"Designed service APIs", "Led migration to Postgres", "Mentored two engineers"},
			Order:            1,
		},
		{
			Title:            "Full-Stack Developer",
			Company:          "Brightpath Studio",
			Location:         "Berlin, Germany",
			StartDate:        time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
			EndDate:          &prevEnd,
			Description:      "Built client products end to end.",
			Responsibilities: []string{"Shipped customer dashboards", "Introduced CI pipelines"},
			Order:            2,
		},
	}

	now := time.Now()
	for i := range entries {
		entries[i].ID = uuid.New().String()
		entries[i].CreatedAt = now
		entries[i].UpdatedAt = now
		if err := repo.Create(ctx, &entries[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedCertificates(ctx context.Context, db *sql.DB) error {
	repo := postgres.NewCertificateRepository(db)

	certs := []entity.Certificate{
		{
			Title:           "Certified Kubernetes Application Developer",
			Issuer:          "Cloud Native Computing Foundation",
			IssueDate:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			CredentialID:    "CKAD-2024-001234",
			VerificationURL: "https://training.linuxfoundation.org/certification/verify",
			Description:     "Hands-on certification covering application deployment and observability on Kubernetes.",
			Skills:          []string{"Kubernetes", "Docker", "Helm"},
			Highlights:      []string{"Scored 92%", "Completed in under two hours"},
			Gradient:        "from-sky-500 to-indigo-600",
			Order:           1,
		},
		{
			Title:       "AWS Certified Solutions Architect - Associate",
			Issuer:      "Amazon Web Services",
			IssueDate:   time.Date(2023, 9, 10, 0, 0, 0, 0, time.UTC),
			Description: "Designing distributed systems on AWS.",
			Skills:      []string{"AWS", "Architecture", "Networking"},
			Highlights:  []string{"First attempt pass"},
			Gradient:    "from-orange-500 to-amber-600",
			Order:       2,
		},
	}

	now := time.Now()
	for i := range certs {
		certs[i].ID = uuid.New().String()
		certs[i].CreatedAt = now
		certs[i].UpdatedAt = now
		if err := repo.Create(ctx, &certs[i]); err != nil {
			return err
		}
	}
	return nil
}
