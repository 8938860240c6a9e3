package handlers

import (
	"IcePlant/internal/flash"
	"IcePlant/internal/service"
	"IcePlant/internal/view"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// MessageHandler личные сообщения.
type MessageHandler struct {
	*base
}

// Messages список собеседников и, если задан with_user, переписка с ним.
func (h *MessageHandler) Messages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid := viewerID(r)

	data := view.MessagesPage{}
	if raw := r.URL.Query().Get("with_user"); raw != "" {
		otherID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			redirectWith(w, r, flash.Error, "User not found.", "/messages")
			return
		}
		other, err := h.svc.Users.Get(ctx, otherID)
		if errors.Is(err, service.ErrNotFound) {
			redirectWith(w, r, flash.Error, "User not found.", "/messages")
			return
		}
		if err != nil {
			h.internalError(w, r, err)
			return
		}
		if data.Thread, err = h.svc.Messages.Thread(ctx, uid, otherID); err != nil {
			h.internalError(w, r, err)
			return
		}
		data.With = other
	}

	conversations, err := h.svc.Messages.Conversations(ctx, uid)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	data.Conversations = conversations
	if data.Page, err = h.page(w, r, "Messages"); err != nil {
		h.internalError(w, r, err)
		return
	}
	h.render(w, r, view.PageMessages, data)
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		redirectWith(w, r, flash.Error, "User not found.", "/messages")
		return
	}
	to := fmt.Sprintf("/messages?with_user=%d", id)
	_, err := h.svc.Messages.Send(r.Context(), viewerID(r), id, r.FormValue("content"))
	switch {
	case errors.Is(err, service.ErrEmptyContent):
		redirectWith(w, r, flash.Error, "Message cannot be empty.", to)
	case errors.Is(err, service.ErrNotFound):
		redirectWith(w, r, flash.Error, "User not found.", "/messages")
	case errors.Is(err, service.ErrMessagesDisabled):
		redirectWith(w, r, flash.Error, "This user does not accept messages.", to)
	case err != nil:
		h.internalError(w, r, err)
	default:
		redirectWith(w, r, flash.Info, "Message sent.", to)
	}
}
