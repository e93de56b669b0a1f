package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rishadfb/email-creation/pkg/assets"
	"github.com/rishadfb/email-creation/pkg/campaign"
	"github.com/rishadfb/email-creation/pkg/catalog"
)

// DefaultFallbackURL is substituted for image slots that could not be
// generated, so templates always render with a resolvable src.
const DefaultFallbackURL = "https://via.placeholder.com/500x300"

const defaultConcurrency = 2

// Provider is the model backend that turns a prompt into image bytes
// and their content type. Implemented by gemini.Client in production.
type Provider interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
}

// Resolver assigns a URL to every image slot of a template. It is
// total: generation and upload failures degrade the affected slot and
// are reported as SlotFailures, never as errors. A Resolver without a
// provider resolves everything to the fallback URL.
type Resolver struct {
	provider    Provider
	storage     assets.Storage
	fallbackURL string
	concurrency int
	logger      *slog.Logger
}

// New creates a Resolver. All dependencies are optional; the zero
// configuration degrades every slot to the fallback URL.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		fallbackURL: DefaultFallbackURL,
		concurrency: defaultConcurrency,
		logger:      slog.New(noopHandler{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve produces a URL for each image slot the descriptor declares.
// Slots with a prompt are generated concurrently; slots without one,
// and all slots when no provider is configured, get the fallback URL
// without any outbound call. Prompts for undeclared slots are ignored.
func (r *Resolver) Resolve(ctx context.Context, content campaign.Content, descriptor catalog.Descriptor) campaign.ResolvedContent {
	resolved := campaign.ResolvedContent{
		Content: content,
		Images:  make(map[string]string),
	}

	imageSlots := descriptor.ImageSlots()
	if len(imageSlots) == 0 {
		return resolved
	}

	type job struct {
		slot   string
		prompt string
	}
	var jobs []job
	for _, slot := range imageSlots {
		prompt := strings.TrimSpace(content.ImagePrompts[slot])
		if prompt == "" || r.provider == nil {
			resolved.Images[slot] = r.fallbackURL
			continue
		}
		jobs = append(jobs, job{slot: slot, prompt: prompt})
	}
	if len(jobs) == 0 {
		return resolved
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)

	for _, j := range jobs {
		g.Go(func() error {
			url, failure := r.resolveSlot(ctx, j.slot, j.prompt)

			mu.Lock()
			defer mu.Unlock()
			resolved.Images[j.slot] = url
			if failure != nil {
				resolved.Failures = append(resolved.Failures, *failure)
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(resolved.Failures, func(i, k int) bool {
		return resolved.Failures[i].Slot < resolved.Failures[k].Slot
	})

	return resolved
}

// resolveSlot generates one image and turns it into a URL: a public
// one when storage is configured, an inline data URI otherwise.
func (r *Resolver) resolveSlot(ctx context.Context, slot, prompt string) (string, *campaign.SlotFailure) {
	data, contentType, err := r.provider.GenerateImage(ctx, prompt)
	if err != nil {
		r.logger.Warn("image generation failed",
			slog.String("slot", slot),
			slog.Any("error", err))
		return r.fallbackURL, &campaign.SlotFailure{
			Slot:   slot,
			Reason: fmt.Sprintf("image generation failed: %v", err),
		}
	}

	if contentType == "" {
		contentType = "image/png"
	}

	if r.storage != nil {
		key := "images/" + uuid.NewString() + assets.Ext(contentType)
		url, err := r.storage.Put(ctx, key, data, contentType)
		if err == nil {
			return url, nil
		}
		r.logger.Warn("asset upload failed, embedding image inline",
			slog.String("slot", slot),
			slog.Any("error", err))
		return dataURI(contentType, data), &campaign.SlotFailure{
			Slot:   slot,
			Reason: fmt.Sprintf("storing image failed: %v; embedded inline", err),
		}
	}

	return dataURI(contentType, data), nil
}

func dataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
