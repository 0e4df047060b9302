// README: Bounded-concurrency image enrichment with per-item failure isolation.
package enrich

import (
	"context"
	"log"
	"net/url"

	"golang.org/x/sync/errgroup"

	"voyago/internal/itinerary"
)

// ImageProvider resolves one illustrative image URL for a free-text query.
type ImageProvider interface {
	SearchImage(ctx context.Context, query string) (string, error)
}

// Pipeline decorates a validated itinerary with image URLs. It never fails
// the request: a lookup error or empty result degrades that single item to a
// placeholder and leaves every other item untouched.
type Pipeline struct {
	images      ImageProvider
	cache       *Cache
	concurrency int
}

func NewPipeline(images ImageProvider, cache *Cache, concurrency int) *Pipeline {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pipeline{images: images, cache: cache, concurrency: concurrency}
}

// target is one image slot in the document. Writing through the pointer keeps
// the fan-out results in original document order regardless of completion order.
type target struct {
	name string
	slot *string
}

// Enrich fills image_url on every activity and hotel in doc, in place.
// Lookups run with bounded parallelism; each item is independent.
func (p *Pipeline) Enrich(ctx context.Context, doc *itinerary.Document) {
	var targets []target
	for i := range doc.Days {
		for j := range doc.Days[i].Activities {
			a := &doc.Days[i].Activities[j]
			targets = append(targets, target{name: a.Name, slot: &a.ImageURL})
		}
	}
	for i := range doc.SuggestedHotels {
		h := &doc.SuggestedHotels[i]
		targets = append(targets, target{name: h.Name, slot: &h.ImageURL})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for _, t := range targets {
		g.Go(func() error {
			*t.slot = p.resolve(gctx, t.name, doc.Details.Destination)
			return nil
		})
	}
	// Workers only return nil; Wait is just the join point.
	_ = g.Wait()
}

// resolve returns a usable image URL for the item, falling back to a
// deterministic placeholder when the provider fails or has nothing.
func (p *Pipeline) resolve(ctx context.Context, name, destination string) string {
	if cached := p.cache.Get(ctx, name); cached != "" {
		return cached
	}

	imageURL, err := p.images.SearchImage(ctx, name+" "+destination)
	if err != nil {
		log.Printf("image lookup failed for %q: %v", name, err)
	}
	if imageURL == "" {
		return Placeholder(name)
	}
	p.cache.Set(ctx, name, imageURL)
	return imageURL
}

// Placeholder builds the fallback image reference, encoding the item name as
// display text so the UI always has something meaningful to render.
func Placeholder(name string) string {
	return "https://placehold.co/600x400?text=" + url.QueryEscape(name)
}
