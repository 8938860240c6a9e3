package handlers

import (
	"IcePlant/internal/flash"
	"IcePlant/internal/service"
	"IcePlant/internal/view"
	"errors"
	"fmt"
	"net/http"
)

// SocialHandler каталог владельцев, профили и подписки.
type SocialHandler struct {
	*base
}

func (h *SocialHandler) Owners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.svc.Users.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	pg, err := h.page(w, r, "Owners")
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.render(w, r, view.PageOwners, view.OwnersPage{Page: pg, Owners: owners})
}

func (h *SocialHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		redirectWith(w, r, flash.Error, "User not found.", "/owners")
		return
	}
	p, err := h.svc.Profiles.Profile(r.Context(), viewerID(r), id)
	if errors.Is(err, service.ErrNotFound) {
		redirectWith(w, r, flash.Error, "User not found.", "/owners")
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	pg, err := h.page(w, r, p.User.Username)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	data := view.ProfilePage{
		Page:        pg,
		User:        p.User,
		Listings:    p.Listings,
		Websites:    p.Websites,
		Materials:   p.Materials,
		Posts:       p.Posts,
		Followers:   p.Followers,
		Following:   p.Following,
		IsOwner:     p.IsOwner,
		IsFollowing: p.IsFollowing,
	}
	if p.ContactVisible() {
		data.Contact = p.User.Contact
	}
	h.render(w, r, view.PageProfile, data)
}

func (h *SocialHandler) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		redirectWith(w, r, flash.Error, "User not found.", "/owners")
		return
	}
	to := fmt.Sprintf("/profile/%d", id)
	following, err := h.svc.Follows.Toggle(r.Context(), viewerID(r), id)
	switch {
	case errors.Is(err, service.ErrSelfFollow):
		redirectWith(w, r, flash.Error, "You cannot follow yourself.", to)
	case errors.Is(err, service.ErrNotFound):
		redirectWith(w, r, flash.Error, "User not found.", "/owners")
	case err != nil:
		h.internalError(w, r, err)
	case following:
		redirectWith(w, r, flash.Info, "You are now following this user.", to)
	default:
		redirectWith(w, r, flash.Info, "You unfollowed this user.", to)
	}
}
