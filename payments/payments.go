package payments

import (
	"encoding/json"
	"log"
	"math"
	"net/http"

	"styledecor/db"
	"styledecor/stripe"
	"styledecor/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// minorUnits converts a major-unit price into the integer minor-unit
// amount the gateway expects (50 -> 5000).
func minorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreatePaymentIntent asks the gateway for an intent covering the posted
// price and hands the client secret back for the frontend to complete
// the charge.
func CreatePaymentIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	clientSecret, err := stripe.CreatePaymentIntent(minorUnits(body.Price))
	if err != nil {
		log.Printf("payment intent failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment intent")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// RecordPayment stores the client-reported transaction. There is no
// reconciliation against the gateway; the frontend posts this after its
// charge succeeds.
func RecordPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payment bson.M
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	delete(payment, "_id")

	result, err := db.PaymentsCollection.InsertOne(r.Context(), payment)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save payment")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

func GetPaymentsByUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cursor, err := db.PaymentsCollection.Find(r.Context(), bson.M{"email": ps.ByName("email")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(r.Context())

	payments := []bson.M{}
	if err := cursor.All(r.Context(), &payments); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}
