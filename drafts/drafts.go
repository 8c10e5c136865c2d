package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"creamery/localstore"
	"creamery/session"
	"creamery/utils"

	"github.com/julienschmidt/httprouter"
)

// Form drafts mirror the browser's draft_<form> localStorage blobs:
// free-form field/value maps saved on every input and cleared once the
// form is submitted successfully.

// SaveDraft stores the draft blob for a named form.
func SaveDraft(store localstore.Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}

		sessionID := session.FromContext(r.Context())
		key := localstore.DraftKey(sessionID, ps.ByName("form"))
		if err := store.Put(ctx, key, fields); err != nil {
			log.Println("SaveDraft put error:", err)
			http.Error(w, "Failed to save draft", http.StatusInternalServerError)
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
	}
}

// GetDraft restores the draft blob for a named form; an empty object
// when none was saved.
func GetDraft(store localstore.Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		sessionID := session.FromContext(r.Context())
		key := localstore.DraftKey(sessionID, ps.ByName("form"))

		var fields map[string]any
		err := store.Get(ctx, key, &fields)
		if errors.Is(err, localstore.ErrNotFound) {
			fields = map[string]any{}
		} else if err != nil {
			log.Println("GetDraft get error:", err)
			http.Error(w, "Failed to load draft", http.StatusInternalServerError)
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, fields)
	}
}

// ClearDraft drops the draft blob for a named form.
func ClearDraft(store localstore.Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		sessionID := session.FromContext(r.Context())
		key := localstore.DraftKey(sessionID, ps.ByName("form"))
		if err := store.Delete(ctx, key); err != nil {
			log.Println("ClearDraft delete error:", err)
			http.Error(w, "Failed to clear draft", http.StatusInternalServerError)
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
	}
}
