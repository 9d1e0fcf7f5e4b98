package users

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// User carries the fields the API reads back; everything else the client
// sends is stored as-is via the raw document path in Register.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// Register inserts the user document unless one with the same email
// already exists, in which case it replies with the neutral exists
// message. The find-then-insert pair is not atomic; concurrent
// registrations of the same email can both pass the check.
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var user bson.M
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	email, _ := user["email"].(string)
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	err := db.UserCollection.FindOne(r.Context(), bson.M{"email": email}).Err()
	if err == nil {
		utils.RespondWithMessage(w, http.StatusOK, "User exists")
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	delete(user, "_id")
	result, err := db.UserCollection.InsertOne(r.Context(), user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GetRole returns the role for the email path parameter, defaulting to
// "user" when the record or its role field is missing. Any authenticated
// caller may look up any email.
func GetRole(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var user User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"email": ps.ByName("email")}).Decode(&user)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	role := user.Role
	if role == "" {
		role = "user"
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"role": role})
}

// TopDecorators lists up to 6 users with the decorator role, in whatever
// order the collection yields them.
func TopDecorators(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := options.Find().SetLimit(6)
	cursor, err := db.UserCollection.Find(r.Context(), bson.M{"role": "decorator"}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(r.Context())

	decorators := []bson.M{}
	if err := cursor.All(r.Context(), &decorators); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, decorators)
}
