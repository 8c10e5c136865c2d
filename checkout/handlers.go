package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"creamery/session"
	"creamery/utils"
	"creamery/validate"

	"github.com/julienschmidt/httprouter"
)

// Submit runs the checkout flow for the caller's session: validate the
// form, build the payload from the stored cart, hand it to the
// transport and clear local state on success.
func Submit(sub *Submitter) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		var form Form
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			log.Println("Submit decode error:", err)
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid checkout payload")
			return
		}

		orderID, err := sub.Submit(ctx, session.FromContext(r.Context()), form)
		if err != nil {
			respondSubmitError(w, err)
			return
		}

		utils.RespondWithJSON(w, http.StatusCreated, utils.M{
			"success": true,
			"orderId": orderID,
			"message": "Order received",
		})
	}
}

func respondSubmitError(w http.ResponseWriter, err error) {
	var ferr *validate.FieldError
	var rej *Rejected
	var terr *TransportError
	switch {
	case errors.Is(err, ErrSubmitInFlight):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrTermsNotAccepted):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &ferr):
		utils.RespondWithError(w, http.StatusBadRequest, ferr.Reason)
	case errors.As(err, &rej):
		utils.RespondWithError(w, http.StatusBadRequest, rej.Error())
	case errors.As(err, &terr):
		log.Println("Submit transport error:", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Something went wrong. Please try again.")
	default:
		log.Println("Submit error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
