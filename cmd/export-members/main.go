package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/copdrey/resilience-backend/internal/config"
	"github.com/copdrey/resilience-backend/internal/export"
	"github.com/copdrey/resilience-backend/internal/repository"
	_ "github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
)

// Offline counterpart of the /api/members/export.csv endpoint, for pulling a
// member dump from the studio database without going through the HTTP server.
func main() {
	outfile := flag.String("outfile", "", "write CSV here instead of stdout")
	limit := flag.Int("limit", 0, "cap the number of exported members (0 = all)")
	flag.Parse()

	cfg := config.MustLoad()

	db, err := dbpg.New(cfg.Postgres.DSN(), nil, &dbpg.Options{
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
		MaxIdleConns: cfg.Postgres.MaxIdleConns,
	})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer db.Master.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	exporter := export.NewMemberExporter(repository.NewMemberRepo(db))

	data, err := exporter.MembersCSV(ctx, *limit)
	if err != nil {
		log.Fatalf("export members: %v", err)
	}

	dest := *outfile
	if dest == "" {
		if _, err = os.Stdout.Write(data); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		return
	}

	if err = os.WriteFile(dest, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", dest, err)
	}
	log.Printf("wrote %s (%d bytes)", dest, len(data))
}
