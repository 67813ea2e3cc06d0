package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tripwise/db"
	"tripwise/models"
	"tripwise/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// GetProfile returns the authenticated user's account.
// GET /api/auth/me
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var user models.User
	err := db.UsersCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	utils.SendResponse(w, http.StatusOK, user, "Profile fetched", nil)
}

// UpdateProfile changes the display name and avatar of the
// authenticated user. PUT /api/auth/me
func UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	updates, err := buildProfileUpdates(input.Name, input.Avatar)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	var user models.User
	err = db.UsersCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"userid": userID},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.SendResponse(w, http.StatusOK, user, "Profile updated", nil)
}

// ChangePassword verifies the current password before storing a new
// bcrypt hash. POST /api/auth/password
func ChangePassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := validatePasswordChange(input.CurrentPassword, input.NewPassword); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	var user models.User
	if err := db.UsersCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process password")
		return
	}

	_, err = db.UsersCollection.UpdateOne(
		r.Context(),
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"password": string(hashed)}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to change password")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Password changed", nil)
}

// buildProfileUpdates keeps only the provided fields; an empty payload
// is a caller mistake, not a no-op.
func buildProfileUpdates(name, avatar string) (bson.M, error) {
	updates := bson.M{}
	if n := strings.TrimSpace(name); n != "" {
		updates["name"] = n
	}
	if a := strings.TrimSpace(avatar); a != "" {
		updates["avatar"] = a
	}
	if len(updates) == 0 {
		return nil, errors.New("nothing to update, provide name or avatar")
	}
	return updates, nil
}

func validatePasswordChange(currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return errors.New("currentPassword and newPassword are required")
	}
	if len(newPassword) < 6 {
		return errors.New("new password must be at least 6 characters")
	}
	return nil
}
