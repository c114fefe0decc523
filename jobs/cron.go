package jobs

import (
	"log"

	"github.com/robfig/cron/v3"
)

// SuggestionRebuilder refreshes the fuzzy-suggestion indexes from the
// ledger tables.
type SuggestionRebuilder interface {
	Rebuild() error
}

var suggestionRebuilder SuggestionRebuilder

func SetSuggestionRebuilder(r SuggestionRebuilder) {
	suggestionRebuilder = r
}

// InitCronJobs registers the nightly maintenance jobs and starts the
// scheduler.
func InitCronJobs(c *cron.Cron) error {
	// midnight, every day
	_, err := c.AddFunc("0 0 * * *", func() {
		if suggestionRebuilder == nil {
			return
		}
		if err := suggestionRebuilder.Rebuild(); err != nil {
			log.Printf("Error rebuilding suggestion indexes: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
