package bookings

import (
	"encoding/json"
	"net/http"

	"styledecor/db"
	"styledecor/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const initialStatus = "Assigned"

// forceInitialStatus stamps a fresh booking; whatever status the client
// sent is discarded.
func forceInitialStatus(booking bson.M) bson.M {
	delete(booking, "_id")
	booking["status"] = initialStatus
	return booking
}

func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking bson.M
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	result, err := db.BookingsCollection.InsertOne(r.Context(), forceInitialStatus(booking))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save booking")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GetBookingsByUser lists bookings for the email path parameter in
// storage order; callers must not rely on ordering.
func GetBookingsByUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cursor, err := db.BookingsCollection.Find(r.Context(), bson.M{"userEmail": ps.ByName("email")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(r.Context())

	bookings := []bson.M{}
	if err := cursor.All(r.Context(), &bookings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

// UpdateStatus overwrites only the status field of one booking. The new
// value is taken as-is; decorators drive the workflow from the frontend.
func UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	result, err := db.BookingsCollection.UpdateOne(
		r.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": body.Status}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
