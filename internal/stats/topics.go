package stats

import (
	"context"

	"github.com/leetsync/leetsync-api/internal/leetcode"
)

// CatalogEntry is the canonical problem metadata the pipeline needs from
// the catalog collaborator.
type CatalogEntry struct {
	ID     uint
	Topics []string
}

// CatalogLookup resolves problem slugs to catalog entries. Implementations
// should batch the distinct slugs into a single round trip; slugs with no
// catalog entry are simply absent from the result.
type CatalogLookup interface {
	BySlugs(ctx context.Context, slugs []string) (map[string]CatalogEntry, error)
}

// StaticCatalog adapts an already-resolved entry map into a CatalogLookup,
// letting one batched round trip serve both topic aggregation and
// reconciliation.
type StaticCatalog map[string]CatalogEntry

// BySlugs returns the resolved entries regardless of the requested slugs.
func (c StaticCatalog) BySlugs(context.Context, []string) (map[string]CatalogEntry, error) {
	return c, nil
}

// TopicStat is the per-topic attempt/success rollup.
type TopicStat struct {
	Attempts  int
	Successes int
}

// Accuracy derives the success percentage, 0 when no attempts were made.
func (t TopicStat) Accuracy() float64 {
	return percentage(t.Successes, t.Attempts)
}

// TopicAggregate is the output of the topic aggregation pass.
type TopicAggregate struct {
	// Mastery counts accepted submissions per topic.
	Mastery map[string]int
	// Accuracy is the success percentage per topic with at least one attempt.
	Accuracy map[string]float64
	// Stats keeps the raw attempt/success counters.
	Stats map[string]TopicStat
}

// AggregateTopics runs every submission through the catalog and rolls up
// per-topic attempts, successes, mastery and accuracy. The full submission
// list participates, deduplicated or not: accuracy reflects attempt
// history, not storage state. A submission whose slug resolves to no
// catalog entry or to an empty topic list contributes to no bucket.
func AggregateTopics(ctx context.Context, submissions []leetcode.RecentSubmission, catalog CatalogLookup) (TopicAggregate, error) {
	aggregate := TopicAggregate{
		Mastery:  map[string]int{},
		Accuracy: map[string]float64{},
		Stats:    map[string]TopicStat{},
	}

	if len(submissions) == 0 {
		return aggregate, nil
	}

	entries, err := catalog.BySlugs(ctx, distinctSlugs(submissions))
	if err != nil {
		return TopicAggregate{}, err
	}

	for _, submission := range submissions {
		entry, ok := entries[submission.TitleSlug]
		if !ok {
			continue
		}

		for _, topic := range entry.Topics {
			stat := aggregate.Stats[topic]
			stat.Attempts++
			if submission.Accepted() {
				stat.Successes++
				aggregate.Mastery[topic]++
			}
			aggregate.Stats[topic] = stat
		}
	}

	for topic, stat := range aggregate.Stats {
		aggregate.Accuracy[topic] = stat.Accuracy()
	}

	return aggregate, nil
}

func distinctSlugs(submissions []leetcode.RecentSubmission) []string {
	seen := make(map[string]struct{}, len(submissions))
	slugs := make([]string, 0, len(submissions))
	for _, submission := range submissions {
		if submission.TitleSlug == "" {
			continue
		}
		if _, ok := seen[submission.TitleSlug]; ok {
			continue
		}
		seen[submission.TitleSlug] = struct{}{}
		slugs = append(slugs, submission.TitleSlug)
	}
	return slugs
}

func percentage(successes, attempts int) float64 {
	if attempts <= 0 {
		return 0
	}
	return float64(successes) / float64(attempts) * 100
}
