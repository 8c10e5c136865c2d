package contact

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"creamery/db"
	"creamery/models"
	"creamery/utils"
	"creamery/validate"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

const minMessageLen = 10

// CreateMessage records a contact-form submission and replies with a
// ticket id.
func CreateMessage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		log.Println("CreateMessage decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please fill in all required fields (*).")
		return
	}
	if !validate.Email(msg.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Please enter a valid email address.")
		return
	}
	if len(msg.Message) < minMessageLen {
		utils.RespondWithError(w, http.StatusBadRequest, "Message is too short (min 10 characters).")
		return
	}

	msg.TicketID = uuid.NewString()
	msg.CreatedAt = time.Now()

	if _, err := db.MessagesCollection.InsertOne(ctx, msg); err != nil {
		log.Println("CreateMessage InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record message")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success":  true,
		"ticketId": msg.TicketID,
	})
}
