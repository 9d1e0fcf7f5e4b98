package services

import (
	"encoding/json"
	"errors"
	"net/http"

	"styledecor/db"
	"styledecor/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetServices returns the whole catalog. Public.
func GetServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cursor, err := db.ServicesCollection.Find(r.Context(), bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(r.Context())

	services := []bson.M{}
	if err := cursor.All(r.Context(), &services); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, services)
}

// GetService returns one catalog entry, or a null body when the id does
// not match anything. A malformed id is a client error, not a 500.
func GetService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	var service bson.M
	err = db.ServicesCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, service)
}

func CreateService(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var service bson.M
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	delete(service, "_id")

	result, err := db.ServicesCollection.InsertOne(r.Context(), service)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save service")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// UpdateService merges the supplied fields into the document; fields the
// client leaves out are untouched. The id itself is immutable.
func UpdateService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	delete(fields, "_id")
	if len(fields) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	result, err := db.ServicesCollection.UpdateOne(r.Context(), bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update service")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

func DeleteService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	result, err := db.ServicesCollection.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
