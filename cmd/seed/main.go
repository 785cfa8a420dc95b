package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/xavierca1/crm-backend/internal/entity"
	"github.com/xavierca1/crm-backend/internal/infra/database"
	"github.com/xavierca1/crm-backend/internal/infra/queue"
)

const schema = `
CREATE TABLE IF NOT EXISTS leads (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	phone      TEXT NOT NULL,
	source     TEXT NOT NULL DEFAULT 'Website',
	status     TEXT NOT NULL DEFAULT 'New',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_leads_status_created_at ON leads (status, created_at DESC);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);
`

var (
	firstNames = []string{
		"Ana", "Bruno", "Carla", "Diego", "Elena", "Felipe", "Grace", "Hugo",
		"Iris", "Jonas", "Karen", "Lucas", "Marta", "Nora", "Oscar", "Paula",
		"Quinn", "Rafael", "Sofia", "Tomas",
	}
	lastNames = []string{
		"Almeida", "Barnes", "Costa", "Dias", "Evans", "Ferreira", "Gomes",
		"Hayes", "Ito", "Jensen", "Klein", "Lima", "Moreau", "Nunes", "Ortega",
		"Pereira", "Reed", "Silva", "Tanaka", "Vargas",
	}
	sources  = []string{entity.SourceWebsite, entity.SourceReferral, entity.SourceAds, entity.SourceSocial, entity.SourceOther}
	statuses = []string{entity.StatusNew, entity.StatusContacted, entity.StatusConverted, entity.StatusLost}
)

func sampleLead(i int) queue.LeadImportPayload {
	first := firstNames[rand.Intn(len(firstNames))]
	last := lastNames[rand.Intn(len(lastNames))]
	return queue.LeadImportPayload{
		Name:   first + " " + last,
		Email:  strings.ToLower(fmt.Sprintf("%s.%s.%d@example.com", first, last, i)),
		Phone:  fmt.Sprintf("+1-%03d-%03d-%04d", rand.Intn(900)+100, rand.Intn(900)+100, rand.Intn(10000)),
		Source: sources[rand.Intn(len(sources))],
		Status: statuses[rand.Intn(len(statuses))],
	}
}

func main() {
	count := flag.Int("count", 500, "number of sample leads to generate")
	useQueue := flag.Bool("queue", false, "publish leads through the import queue instead of inserting directly")
	wipe := flag.Bool("wipe", true, "delete existing leads before seeding")
	flag.Parse()

	godotenv.Load()
	ctx := context.Background()

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatalf("creating schema: %v", err)
	}

	if *wipe {
		if _, err := db.ExecContext(ctx, "DELETE FROM leads"); err != nil {
			log.Fatalf("wiping leads: %v", err)
		}
	}

	if *useQueue {
		rabbitMQ, err := queue.NewRabbitMQ(os.Getenv("RABBITMQ_URL"))
		if err != nil {
			log.Fatalf("connecting to RabbitMQ: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		for i := 0; i < *count; i++ {
			if err := producer.PublishLeadImport(ctx, sampleLead(i)); err != nil {
				log.Fatalf("publishing lead %d: %v", i, err)
			}
		}
		log.Printf("Published %d leads to %s", *count, queue.QueueName)
		return
	}

	repo := database.NewLeadRepository(db)
	for i := 0; i < *count; i++ {
		p := sampleLead(i)
		lead := &entity.Lead{Name: p.Name, Email: p.Email, Phone: p.Phone, Source: p.Source, Status: p.Status}
		if err := repo.Create(ctx, lead); err != nil {
			log.Fatalf("inserting lead %d: %v", i, err)
		}
	}
	log.Printf("Inserted %d leads", *count)
}
