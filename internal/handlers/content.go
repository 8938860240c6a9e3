package handlers

import (
	"IcePlant/internal/flash"
	"IcePlant/internal/service"
	"IcePlant/internal/view"
	"errors"
	"net/http"
)

// latestOnHome сколько объявлений и постов показывать на главной.
const latestOnHome = 5

// ContentHandler главная, поиск, посты, сайты и материалы.
type ContentHandler struct {
	*base
}

func (h *ContentHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listings, err := h.svc.Listings.Latest(ctx, latestOnHome)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	posts, err := h.svc.Posts.Latest(ctx, latestOnHome)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	pg, err := h.page(w, r, "")
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.render(w, r, view.PageHome, view.HomePage{
		Page:     pg,
		Listings: listings,
		Posts:    posts,
	})
}

func (h *ContentHandler) Search(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Search.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	pg, err := h.page(w, r, "Search")
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.render(w, r, view.PageSearch, view.SearchPage{
		Page:     pg,
		Query:    res.Query,
		Owners:   res.Owners,
		Listings: res.Listings,
		Posts:    res.Posts,
	})
}

func (h *ContentHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	_, err := h.svc.Posts.Create(r.Context(), viewerID(r), service.PostInput{
		Content:  r.FormValue("content"),
		ImageURL: r.FormValue("image_url"),
	})
	if errors.Is(err, service.ErrValidation) {
		redirectWith(w, r, flash.Error, "Post content cannot be empty.", "/")
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	redirectWith(w, r, flash.Info, "Post created.", "/")
}

func (h *ContentHandler) Websites(w http.ResponseWriter, r *http.Request) {
	websites, err := h.svc.Portfolio.Websites(r.Context(), viewerID(r))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	pg, err := h.page(w, r, "Websites")
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.render(w, r, view.PageWebsites, view.WebsitesPage{Page: pg, Websites: websites})
}

func (h *ContentHandler) AddWebsite(w http.ResponseWriter, r *http.Request) {
	_, err := h.svc.Portfolio.AddWebsite(r.Context(), viewerID(r), service.WebsiteInput{
		URL:         r.FormValue("url"),
		Description: r.FormValue("description"),
	})
	if errors.Is(err, service.ErrValidation) {
		redirectWith(w, r, flash.Error, "URL is required.", "/websites")
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	redirectWith(w, r, flash.Info, "Website added.", "/websites")
}

func (h *ContentHandler) Materials(w http.ResponseWriter, r *http.Request) {
	materials, err := h.svc.Portfolio.Materials(r.Context(), viewerID(r))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	pg, err := h.page(w, r, "Materials")
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.render(w, r, view.PageMaterials, view.MaterialsPage{Page: pg, Materials: materials})
}

func (h *ContentHandler) AddMaterial(w http.ResponseWriter, r *http.Request) {
	_, err := h.svc.Portfolio.AddMaterial(r.Context(), viewerID(r), service.MaterialInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	})
	if errors.Is(err, service.ErrValidation) {
		redirectWith(w, r, flash.Error, "Name is required.", "/materials")
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	redirectWith(w, r, flash.Info, "Material added.", "/materials")
}
