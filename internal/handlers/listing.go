package handlers

import (
	"IcePlant/internal/flash"
	"IcePlant/internal/service"
	"IcePlant/internal/view"
	"errors"
	"fmt"
	"net/http"
)

// ListingHandler объявления ("ice cans") и закладки на них.
type ListingHandler struct {
	*base
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	listings, err := h.svc.Listings.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	pg, err := h.page(w, r, "Ice cans")
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.render(w, r, view.PageListings, view.ListingsPage{
		Page:     pg,
		Listings: listings,
	})
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.Listings.Create(r.Context(), viewerID(r), service.ListingInput{
		Title:       r.FormValue("title"),
		Location:    r.FormValue("location"),
		Capacity:    r.FormValue("capacity"),
		Description: r.FormValue("description"),
		Quote:       r.FormValue("quote"),
		ImageURL:    r.FormValue("image_url"),
	})
	if errors.Is(err, service.ErrValidation) {
		redirectWith(w, r, flash.Error, "Title and location are required.", "/icecans")
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	redirectWith(w, r, flash.Info, "Ice can created.", fmt.Sprintf("/icecans/%d", l.ID))
}

func (h *ListingHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		redirectWith(w, r, flash.Error, "Ice can not found.", "/icecans")
		return
	}
	ctx := r.Context()
	l, err := h.svc.Listings.Get(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		redirectWith(w, r, flash.Error, "Ice can not found.", "/icecans")
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	interested, err := h.svc.Listings.InterestedUsers(ctx, id)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	data := view.ListingPage{Listing: l, Interested: interested}
	if uid := viewerID(r); uid != 0 {
		if data.IsInterested, err = h.svc.Listings.IsInterested(ctx, uid, id); err != nil {
			h.internalError(w, r, err)
			return
		}
	}
	if l.Owner != nil {
		st, err := h.svc.Settings.Get(ctx, l.OwnerID)
		if err != nil {
			h.internalError(w, r, err)
			return
		}
		if st.ShowContact || viewerID(r) == l.OwnerID {
			data.OwnerContact = l.Owner.Contact
		}
	}
	if data.Page, err = h.page(w, r, l.Title); err != nil {
		h.internalError(w, r, err)
		return
	}
	h.render(w, r, view.PageListing, data)
}

func (h *ListingHandler) ToggleInterested(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		redirectWith(w, r, flash.Error, "Ice can not found.", "/icecans")
		return
	}
	interested, err := h.svc.Listings.ToggleInterested(r.Context(), viewerID(r), id)
	if errors.Is(err, service.ErrNotFound) {
		redirectWith(w, r, flash.Error, "Ice can not found.", "/icecans")
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	to := fmt.Sprintf("/icecans/%d", id)
	if interested {
		redirectWith(w, r, flash.Info, "Marked as interested.", to)
		return
	}
	redirectWith(w, r, flash.Info, "Removed from interested.", to)
}
