package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rishadfb/email-creation/pkg/binder"
	"github.com/rishadfb/email-creation/pkg/campaign"
	"github.com/rishadfb/email-creation/pkg/catalog"
)

// EmailCreator runs the generation pipeline for one contact or a batch.
// *emailcreation.Pipeline satisfies it.
type EmailCreator interface {
	CreateEmail(ctx context.Context, brief string, contact campaign.Contact) (*campaign.Email, error)
	CreateBatch(ctx context.Context, brief string, contacts []campaign.Contact) []campaign.Result
}

// TemplateCatalog exposes the loaded template set. *catalog.Catalog
// satisfies it.
type TemplateCatalog interface {
	List() []catalog.Descriptor
	Get(id string) (catalog.Descriptor, error)
	RawMarkup(id string) (string, error)
}

type handlers struct {
	creator EmailCreator
	catalog TemplateCatalog
	log     *slog.Logger
}

// BatchItem is the per-contact outcome in a batch response.
type BatchItem struct {
	Contact campaign.Contact `json:"contact"`
	Status  string           `json:"status"`
	Email   *campaign.Email  `json:"email,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// TemplateDetail is one template with its raw markup.
type TemplateDetail struct {
	catalog.Descriptor
	Markup string `json:"markup"`
}

func (h *handlers) previewEmail(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := binder.BindJSON()(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if errs := req.Validate(); !errs.IsEmpty() {
		h.writeError(w, r, errs)
		return
	}

	email, err := h.creator.CreateEmail(r.Context(), req.Brief, req.Contact)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Data: email})
}

func (h *handlers) createBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := binder.BindJSON()(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if errs := req.Validate(); !errs.IsEmpty() {
		h.writeError(w, r, errs)
		return
	}

	results := h.creator.CreateBatch(r.Context(), req.Brief, req.Contacts)

	items := make([]BatchItem, len(results))
	succeeded := 0
	for i, res := range results {
		item := BatchItem{Contact: res.Contact, Status: "created", Email: res.Email}
		if res.Err != nil {
			item.Status = "failed"
			item.Error = res.Err.Error()
			item.Email = nil
		} else {
			succeeded++
		}
		items[i] = item
	}

	writeJSON(w, http.StatusOK, Response{
		Data: items,
		Meta: map[string]any{
			"total":     len(results),
			"succeeded": succeeded,
			"failed":    len(results) - succeeded,
		},
	})
}

func (h *handlers) listTemplates(w http.ResponseWriter, r *http.Request) {
	descriptors := h.catalog.List()

	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		filtered := make([]catalog.Descriptor, 0, len(descriptors))
		for _, d := range descriptors {
			if string(d.Category) == category {
				filtered = append(filtered, d)
			}
		}
		descriptors = filtered
	}

	writeJSON(w, http.StatusOK, Response{
		Data: descriptors,
		Meta: map[string]any{"total": len(descriptors)},
	})
}

func (h *handlers) getTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "templateID")

	descriptor, err := h.catalog.Get(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	markup, err := h.catalog.RawMarkup(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Data: TemplateDetail{Descriptor: descriptor, Markup: markup}})
}
