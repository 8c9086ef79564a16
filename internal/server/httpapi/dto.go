package httpapi

import "locshare/internal/server/models"

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
}

type locationResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	OwnerID int64  `json:"owner_id"`
}

type accessResponse struct {
	ID         int64  `json:"id"`
	LocationID int64  `json:"location_id"`
	UserID     int64  `json:"user_id"`
	Level      string `json:"level"`
}

type visibleLocationsResponse struct {
	Owned []locationResponse `json:"owned"`
	Admin []locationResponse `json:"admin"`
	Read  []locationResponse `json:"read"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Login: u.Login}
}

func toUserResponses(users []*models.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toLocationResponse(l *models.Location) locationResponse {
	return locationResponse{ID: l.ID, Name: l.Name, Address: l.Address, OwnerID: l.OwnerID}
}

func toLocationResponses(locations []*models.Location) []locationResponse {
	out := make([]locationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, toLocationResponse(l))
	}
	return out
}

func toAccessResponse(a *models.Access) accessResponse {
	return accessResponse{ID: a.ID, LocationID: a.LocationID, UserID: a.UserID, Level: string(a.Level)}
}
