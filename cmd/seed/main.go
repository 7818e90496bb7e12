// Command seed loads the sample event catalog. Re-running it is safe.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tierevents/config"
	"tierevents/db"
	"tierevents/models"
)

// seedNamespace keeps sample event ids stable across runs.
var seedNamespace = uuid.MustParse("6f1c2f0e-4d8b-4b7e-9a51-3f0f2b8e9c11")

type sample struct {
	title       string
	description string
	inDays      int
	tier        models.Tier
	image       string
}

var samples = []sample{
	{"Community Open House", "Meet the community and tour the venue.", 7, models.TierFree, "https://images.unsplash.com/photo-1511578314322-379afb476865"},
	{"Intro Workshop", "A hands-on introduction for new members.", 10, models.TierFree, "https://images.unsplash.com/photo-1540575467063-178a50c2df87"},
	{"Silver Networking Night", "Drinks and conversation with fellow members.", 14, models.TierSilver, "https://images.unsplash.com/photo-1515187029135-18ee286d815b"},
	{"Silver Speaker Series", "Monthly talk from an industry guest.", 21, models.TierSilver, "https://images.unsplash.com/photo-1475721027785-f74eccf877e2"},
	{"Gold Chef's Table", "A private dinner prepared by a guest chef.", 28, models.TierGold, "https://images.unsplash.com/photo-1414235077428-338989a2e8c0"},
	{"Gold Early Access Preview", "See next season's lineup before anyone else.", 35, models.TierGold, "https://images.unsplash.com/photo-1505373877841-8d25f7d46678"},
	{"Platinum Weekend Retreat", "Two days away with a curated program.", 45, models.TierPlatinum, "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800"},
	{"Platinum Founders Dinner", "An evening with the founders.", 60, models.TierPlatinum, "https://images.unsplash.com/photo-1519671482749-fd09be7ccebf"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	cfg.ConfigureLogging()

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.DatabaseURL, cfg.DBConnectAttempts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer conn.Close()

	if err := db.Migrate(conn); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	store := db.NewEventStore(conn)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	added := 0
	for _, s := range samples {
		e := models.Event{
			ID:          uuid.NewSHA1(seedNamespace, []byte(s.title)).String(),
			Title:       s.title,
			Description: s.description,
			EventDate:   today.AddDate(0, 0, s.inDays).Add(18 * time.Hour),
			ImageURL:    s.image,
			Tier:        s.tier,
			CreatedAt:   time.Now().UTC(),
		}
		ok, err := store.InsertIfAbsent(ctx, e)
		if err != nil {
			log.Fatal().Err(err).Str("title", s.title).Msg("failed to insert event")
		}
		if ok {
			added++
		}
	}
	log.Info().Int("added", added).Int("total", len(samples)).Msg("seed complete")
}
